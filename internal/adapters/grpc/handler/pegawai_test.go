package handler

import (
	"context"
	"testing"
	"time"

	pegawaipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/pegawai/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubPegawaiUseCase struct {
	createInput pegawai.CreatePegawaiInput
	createOut   *pegawai.Pegawai
	createErr   error

	getInput pegawai.GetPegawaiInput
	getOut   *pegawai.Pegawai
	getErr   error

	listInput pegawai.ListPegawaiInput
	listOut   *pegawai.ListPegawaiResult
	listErr   error

	updateInput pegawai.UpdatePegawaiInput
	updateOut   *pegawai.Pegawai
	updateErr   error

	deleteInput pegawai.DeletePegawaiInput
	deleteErr   error

	pensiunOut []*pegawai.Pegawai
	pensiunErr error
}

func (s *stubPegawaiUseCase) CreatePegawai(_ context.Context, in pegawai.CreatePegawaiInput) (*pegawai.Pegawai, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubPegawaiUseCase) GetPegawai(_ context.Context, in pegawai.GetPegawaiInput) (*pegawai.Pegawai, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubPegawaiUseCase) ListPegawai(_ context.Context, in pegawai.ListPegawaiInput) (*pegawai.ListPegawaiResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubPegawaiUseCase) UpdatePegawai(_ context.Context, in pegawai.UpdatePegawaiInput) (*pegawai.Pegawai, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubPegawaiUseCase) DeletePegawai(_ context.Context, in pegawai.DeletePegawaiInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func (s *stubPegawaiUseCase) ListMendekatiPensiun(_ context.Context) ([]*pegawai.Pegawai, error) {
	return s.pensiunOut, s.pensiunErr
}

func samplePegawai(now time.Time) *pegawai.Pegawai {
	return &pegawai.Pegawai{
		ID:           "pegawai-1",
		NIP:          "199001012015011001",
		Nama:         "Budi Santoso",
		Email:        "budi@example.go.id",
		TanggalLahir: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		JenisKelamin: pegawai.JenisKelaminLakiLaki,
		Pendidikan:   pegawai.PendidikanS1,
		Alamat: pegawai.Alamat{
			Provinsi: pegawai.WilayahRef{ID: "32", Nama: "Jawa Barat"},
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPegawaiGrpcHandler_CreatePegawai_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubPegawaiUseCase{createOut: samplePegawai(now)}

	handler := NewPegawaiGrpcHandler(stub)
	resp, err := handler.CreatePegawai(context.Background(), &pegawaipb.CreatePegawaiRequest{
		Nip:          "199001012015011001",
		Nama:         "Budi Santoso",
		Email:        "budi@example.go.id",
		TanggalLahir: "1990-01-01",
		JenisKelamin: pegawaipb.JenisKelamin_JENIS_KELAMIN_LAKI_LAKI,
		Pendidikan:   pegawaipb.Pendidikan_PENDIDIKAN_S1,
		Alamat: &pegawaipb.Alamat{
			Provinsi: &pegawaipb.WilayahRef{Id: "32", Nama: "Jawa Barat"},
			Detail:   "Jl. Melati No. 1",
		},
	})
	if err != nil {
		t.Fatalf("CreatePegawai returned error: %v", err)
	}

	if stub.createInput.NIP != "199001012015011001" {
		t.Errorf("expected nip to pass through, got %s", stub.createInput.NIP)
	}
	if stub.createInput.TanggalLahir.Format(dateLayout) != "1990-01-01" {
		t.Errorf("expected birth date parsed, got %v", stub.createInput.TanggalLahir)
	}
	if stub.createInput.Alamat.Provinsi.ID != "32" {
		t.Errorf("expected address to pass through, got %+v", stub.createInput.Alamat)
	}

	if resp.GetPegawai().GetId() != "pegawai-1" {
		t.Fatalf("expected response id 'pegawai-1', got %s", resp.GetPegawai().GetId())
	}
	if resp.GetPegawai().GetTanggalLahir() != "1990-01-01" {
		t.Fatalf("unexpected tanggal lahir: %s", resp.GetPegawai().GetTanggalLahir())
	}
}

func TestPegawaiGrpcHandler_CreatePegawai_InvalidDateFormat(t *testing.T) {
	t.Parallel()

	handler := NewPegawaiGrpcHandler(&stubPegawaiUseCase{})

	_, err := handler.CreatePegawai(context.Background(), &pegawaipb.CreatePegawaiRequest{
		Nip:          "199001012015011001",
		TanggalLahir: "01-01-1990",
		JenisKelamin: pegawaipb.JenisKelamin_JENIS_KELAMIN_LAKI_LAKI,
		Pendidikan:   pegawaipb.Pendidikan_PENDIDIKAN_S1,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestPegawaiGrpcHandler_UpdatePegawai_ClearsTelepon(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubPegawaiUseCase{updateOut: samplePegawai(now)}

	handler := NewPegawaiGrpcHandler(stub)
	_, err := handler.UpdatePegawai(context.Background(), &pegawaipb.UpdatePegawaiRequest{
		Id:      "pegawai-1",
		Telepon: wrapperspb.String(""),
	})
	if err != nil {
		t.Fatalf("UpdatePegawai returned error: %v", err)
	}

	if !stub.updateInput.TeleponSet {
		t.Fatal("expected TeleponSet to be true")
	}
	if stub.updateInput.Telepon != nil {
		t.Fatalf("expected nil telepon for a clear, got %+v", stub.updateInput.Telepon)
	}
}

func TestPegawaiGrpcHandler_GetPegawai_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubPegawaiUseCase{getErr: pegawai.ErrPegawaiNotFound}

	handler := NewPegawaiGrpcHandler(stub)
	_, err := handler.GetPegawai(context.Background(), &pegawaipb.GetPegawaiRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestPegawaiGrpcHandler_ListMendekatiPensiun(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubPegawaiUseCase{pensiunOut: []*pegawai.Pegawai{samplePegawai(now)}}

	handler := NewPegawaiGrpcHandler(stub)
	resp, err := handler.ListMendekatiPensiun(context.Background(), &pegawaipb.ListMendekatiPensiunRequest{})
	if err != nil {
		t.Fatalf("ListMendekatiPensiun returned error: %v", err)
	}

	if len(resp.GetPegawai()) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.GetPegawai()))
	}
}
