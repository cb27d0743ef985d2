package handler

import (
	"context"
	"testing"
	"time"

	mutasipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/mutasi/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubMutasiUseCase struct {
	createInput mutasi.CreateMutasiInput
	createOut   *mutasi.Mutasi
	createErr   error

	getInput mutasi.GetMutasiInput
	getOut   *mutasi.Mutasi
	getErr   error

	listInput mutasi.ListMutasiInput
	listOut   *mutasi.ListMutasiResult
	listErr   error

	updateInput mutasi.UpdateMutasiStatusInput
	updateOut   *mutasi.Mutasi
	updateErr   error

	deleteInput mutasi.DeleteMutasiInput
	deleteErr   error
}

func (s *stubMutasiUseCase) CreateMutasi(_ context.Context, in mutasi.CreateMutasiInput) (*mutasi.Mutasi, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubMutasiUseCase) GetMutasi(_ context.Context, in mutasi.GetMutasiInput) (*mutasi.Mutasi, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubMutasiUseCase) ListMutasi(_ context.Context, in mutasi.ListMutasiInput) (*mutasi.ListMutasiResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubMutasiUseCase) UpdateMutasiStatus(_ context.Context, in mutasi.UpdateMutasiStatusInput) (*mutasi.Mutasi, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubMutasiUseCase) DeleteMutasi(_ context.Context, in mutasi.DeleteMutasiInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func sampleMutasi(now time.Time) *mutasi.Mutasi {
	return &mutasi.Mutasi{
		ID:             "mutasi-1",
		PegawaiID:      "pegawai-1",
		UnitKerjaLama:  "Dinas Pendidikan",
		JabatanLama:    "Staf",
		UnitKerjaBaru:  "Dinas Kesehatan",
		JabatanBaru:    "Kepala Seksi",
		TanggalEfektif: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		AlasanMutasi:   "promosi",
		Status:         mutasi.StatusPending,
		DiajukanOleh:   "admin-1",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestMutasiGrpcHandler_CreateMutasi_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubMutasiUseCase{createOut: sampleMutasi(now)}

	handler := NewMutasiGrpcHandler(stub)
	resp, err := handler.CreateMutasi(context.Background(), &mutasipb.CreateMutasiRequest{
		PegawaiId:      "pegawai-1",
		UnitKerjaLama:  "Dinas Pendidikan",
		JabatanLama:    "Staf",
		UnitKerjaBaru:  "Dinas Kesehatan",
		JabatanBaru:    "Kepala Seksi",
		TanggalEfektif: "2024-07-01",
		AlasanMutasi:   "promosi",
		DiajukanOleh:   "admin-1",
	})
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	if stub.createInput.TanggalEfektif.Format(dateLayout) != "2024-07-01" {
		t.Errorf("expected effective date parsed, got %v", stub.createInput.TanggalEfektif)
	}
	if resp.GetMutasi().GetStatus() != mutasipb.MutasiStatus_MUTASI_STATUS_PENDING {
		t.Errorf("unexpected status: %v", resp.GetMutasi().GetStatus())
	}
	if resp.GetMutasi().GetTanggalDisetujui() != nil {
		t.Error("expected no decision timestamp on a fresh request")
	}
}

func TestMutasiGrpcHandler_CreateMutasi_InvalidDateFormat(t *testing.T) {
	t.Parallel()

	handler := NewMutasiGrpcHandler(&stubMutasiUseCase{})

	_, err := handler.CreateMutasi(context.Background(), &mutasipb.CreateMutasiRequest{
		PegawaiId:      "pegawai-1",
		TanggalEfektif: "07/01/2024",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestMutasiGrpcHandler_UpdateMutasiStatus_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	approved := sampleMutasi(now)
	approved.Status = mutasi.StatusApproved
	approver := "admin-2"
	approved.DisetujuiOleh = &approver
	approved.TanggalDisetujui = &now

	stub := &stubMutasiUseCase{updateOut: approved}

	handler := NewMutasiGrpcHandler(stub)
	resp, err := handler.UpdateMutasiStatus(context.Background(), &mutasipb.UpdateMutasiStatusRequest{
		Id:                 "mutasi-1",
		Status:             mutasipb.MutasiStatus_MUTASI_STATUS_APPROVED,
		DisetujuiOleh:      "admin-2",
		CatatanPersetujuan: wrapperspb.String("layak dipromosikan"),
	})
	if err != nil {
		t.Fatalf("UpdateMutasiStatus returned error: %v", err)
	}

	if stub.updateInput.Status != mutasi.StatusApproved {
		t.Errorf("unexpected status input: %v", stub.updateInput.Status)
	}
	if stub.updateInput.CatatanPersetujuan == nil || *stub.updateInput.CatatanPersetujuan != "layak dipromosikan" {
		t.Errorf("unexpected note input: %v", stub.updateInput.CatatanPersetujuan)
	}
	if resp.GetMutasi().GetTanggalDisetujui() == nil {
		t.Fatal("expected decision timestamp on the response")
	}
}

func TestMutasiGrpcHandler_UpdateMutasiStatus_AlreadyProcessed(t *testing.T) {
	t.Parallel()

	stub := &stubMutasiUseCase{updateErr: mutasi.ErrAlreadyProcessed}

	handler := NewMutasiGrpcHandler(stub)
	_, err := handler.UpdateMutasiStatus(context.Background(), &mutasipb.UpdateMutasiStatusRequest{
		Id:            "mutasi-1",
		Status:        mutasipb.MutasiStatus_MUTASI_STATUS_REJECTED,
		DisetujuiOleh: "admin-2",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestMutasiGrpcHandler_UpdateMutasiStatus_KuotaHabis(t *testing.T) {
	t.Parallel()

	stub := &stubMutasiUseCase{updateErr: mutasi.ErrKuotaHabis}

	handler := NewMutasiGrpcHandler(stub)
	_, err := handler.UpdateMutasiStatus(context.Background(), &mutasipb.UpdateMutasiStatusRequest{
		Id:            "mutasi-1",
		Status:        mutasipb.MutasiStatus_MUTASI_STATUS_APPROVED,
		DisetujuiOleh: "admin-2",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestMutasiGrpcHandler_ListMutasi_PassesFiltersAndTotal(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubMutasiUseCase{listOut: &mutasi.ListMutasiResult{
		Mutasi:        []*mutasi.Mutasi{sampleMutasi(now)},
		Total:         4,
		NextPageToken: "1",
	}}

	handler := NewMutasiGrpcHandler(stub)
	resp, err := handler.ListMutasi(context.Background(), &mutasipb.ListMutasiRequest{
		PegawaiId: wrapperspb.String("pegawai-1"),
		Status:    mutasipb.MutasiStatus_MUTASI_STATUS_PENDING,
		PageSize:  1,
	})
	if err != nil {
		t.Fatalf("ListMutasi returned error: %v", err)
	}

	if stub.listInput.PegawaiID == nil || *stub.listInput.PegawaiID != "pegawai-1" {
		t.Errorf("unexpected pegawai filter: %v", stub.listInput.PegawaiID)
	}
	if stub.listInput.Status == nil || *stub.listInput.Status != mutasi.StatusPending {
		t.Errorf("unexpected status filter: %v", stub.listInput.Status)
	}
	if resp.GetTotal() != 4 {
		t.Errorf("unexpected total: %d", resp.GetTotal())
	}
	if resp.GetNextPageToken() != "1" {
		t.Errorf("unexpected next page token: %s", resp.GetNextPageToken())
	}
}
