package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	pegawaipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/pegawai/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const dateLayout = "2006-01-02"

// PegawaiGrpcHandler is the gRPC surface of the employee directory.
type PegawaiGrpcHandler struct {
	svc pegawai.UseCase
	pegawaipb.UnimplementedPegawaiServiceServer
}

// NewPegawaiGrpcHandler creates a PegawaiGrpcHandler.
func NewPegawaiGrpcHandler(svc pegawai.UseCase) *PegawaiGrpcHandler {
	return &PegawaiGrpcHandler{svc: svc}
}

// CreatePegawai registers an employee record.
func (h *PegawaiGrpcHandler) CreatePegawai(ctx context.Context, req *pegawaipb.CreatePegawaiRequest) (*pegawaipb.CreatePegawaiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tanggalLahir, err := parseDate(req.GetTanggalLahir())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tanggal_lahir: %v", err))
	}

	jenisKelamin, err := toDomainJenisKelamin(req.GetJenisKelamin())
	if err != nil {
		return nil, toStatusError(err)
	}

	pendidikan, err := toDomainPendidikan(req.GetPendidikan())
	if err != nil {
		return nil, toStatusError(err)
	}

	var golonganPtr *pegawai.GolonganDarah
	if req.GetGolonganDarah() != pegawaipb.GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED {
		golongan, err := toDomainGolonganDarah(req.GetGolonganDarah())
		if err != nil {
			return nil, toStatusError(err)
		}
		golonganPtr = &golongan
	}

	created, err := h.svc.CreatePegawai(ctx, pegawai.CreatePegawaiInput{
		NIP:           req.GetNip(),
		Nama:          req.GetNama(),
		Email:         req.GetEmail(),
		Telepon:       stringValueToPointer(req.Telepon),
		TanggalLahir:  tanggalLahir,
		JenisKelamin:  jenisKelamin,
		Pendidikan:    pendidikan,
		GolonganDarah: golonganPtr,
		Alamat:        toDomainAlamat(req.GetAlamat()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pegawaipb.CreatePegawaiResponse{Pegawai: toProtoPegawai(created)}, nil
}

// GetPegawai fetches an employee record.
func (h *PegawaiGrpcHandler) GetPegawai(ctx context.Context, req *pegawaipb.GetPegawaiRequest) (*pegawaipb.GetPegawaiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetPegawai(ctx, pegawai.GetPegawaiInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pegawaipb.GetPegawaiResponse{Pegawai: toProtoPegawai(found)}, nil
}

// ListPegawai fetches a page of employee records.
func (h *PegawaiGrpcHandler) ListPegawai(ctx context.Context, req *pegawaipb.ListPegawaiRequest) (*pegawaipb.ListPegawaiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var isActivePtr *bool
	if req.IsActive != nil {
		value := req.IsActive.GetValue()
		isActivePtr = &value
	}

	result, err := h.svc.ListPegawai(ctx, pegawai.ListPegawaiInput{
		Nama:      req.GetNama(),
		NIP:       req.GetNip(),
		IsActive:  isActivePtr,
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoPegawai := make([]*pegawaipb.Pegawai, 0, len(result.Pegawai))
	for _, p := range result.Pegawai {
		protoPegawai = append(protoPegawai, toProtoPegawai(p))
	}

	return &pegawaipb.ListPegawaiResponse{
		Pegawai:       protoPegawai,
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdatePegawai applies a partial update to an employee record.
func (h *PegawaiGrpcHandler) UpdatePegawai(ctx context.Context, req *pegawaipb.UpdatePegawaiRequest) (*pegawaipb.UpdatePegawaiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := pegawai.UpdatePegawaiInput{
		ID:    req.GetId(),
		Nama:  stringValueToPointer(req.Nama),
		Email: stringValueToPointer(req.Email),
	}

	if req.Telepon != nil {
		in.TeleponSet = true
		if trimmed := strings.TrimSpace(req.Telepon.GetValue()); trimmed != "" {
			in.Telepon = &trimmed
		}
	}

	if req.TanggalLahir != nil {
		t, err := parseDate(req.TanggalLahir.GetValue())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tanggal_lahir: %v", err))
		}
		in.TanggalLahir = &t
	}

	if req.GetJenisKelamin() != pegawaipb.JenisKelamin_JENIS_KELAMIN_UNSPECIFIED {
		jenisKelamin, err := toDomainJenisKelamin(req.GetJenisKelamin())
		if err != nil {
			return nil, toStatusError(err)
		}
		in.JenisKelamin = &jenisKelamin
	}

	if req.GetPendidikan() != pegawaipb.Pendidikan_PENDIDIKAN_UNSPECIFIED {
		pendidikan, err := toDomainPendidikan(req.GetPendidikan())
		if err != nil {
			return nil, toStatusError(err)
		}
		in.Pendidikan = &pendidikan
	}

	if req.GetClearGolonganDarah() {
		in.GolonganDarahSet = true
	} else if req.GetGolonganDarah() != pegawaipb.GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED {
		golongan, err := toDomainGolonganDarah(req.GetGolonganDarah())
		if err != nil {
			return nil, toStatusError(err)
		}
		in.GolonganDarah = &golongan
		in.GolonganDarahSet = true
	}

	if req.Alamat != nil {
		alamat := toDomainAlamat(req.Alamat)
		in.Alamat = &alamat
	}

	if req.IsActive != nil {
		value := req.IsActive.GetValue()
		in.IsActive = &value
	}

	updated, err := h.svc.UpdatePegawai(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pegawaipb.UpdatePegawaiResponse{Pegawai: toProtoPegawai(updated)}, nil
}

// DeletePegawai removes an employee record.
func (h *PegawaiGrpcHandler) DeletePegawai(ctx context.Context, req *pegawaipb.DeletePegawaiRequest) (*pegawaipb.DeletePegawaiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeletePegawai(ctx, pegawai.DeletePegawaiInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &pegawaipb.DeletePegawaiResponse{}, nil
}

// ListMendekatiPensiun fetches active employees inside the retirement
// window.
func (h *PegawaiGrpcHandler) ListMendekatiPensiun(ctx context.Context, req *pegawaipb.ListMendekatiPensiunRequest) (*pegawaipb.ListMendekatiPensiunResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	records, err := h.svc.ListMendekatiPensiun(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	protoPegawai := make([]*pegawaipb.Pegawai, 0, len(records))
	for _, p := range records {
		protoPegawai = append(protoPegawai, toProtoPegawai(p))
	}

	return &pegawaipb.ListMendekatiPensiunResponse{Pegawai: protoPegawai}, nil
}

func toProtoPegawai(p *pegawai.Pegawai) *pegawaipb.Pegawai {
	if p == nil {
		return nil
	}

	return &pegawaipb.Pegawai{
		Id:            p.ID,
		Nip:           p.NIP,
		Nama:          p.Nama,
		Email:         p.Email,
		Telepon:       pointerToStringValue(p.Telepon),
		TanggalLahir:  p.TanggalLahir.Format(dateLayout),
		JenisKelamin:  toProtoJenisKelamin(p.JenisKelamin),
		Pendidikan:    toProtoPendidikan(p.Pendidikan),
		GolonganDarah: toProtoGolonganDarah(p.GolonganDarah),
		Alamat:        toProtoAlamat(p.Alamat),
		IsActive:      p.IsActive,
		CreatedAt:     timestamppb.New(p.CreatedAt),
		UpdatedAt:     timestamppb.New(p.UpdatedAt),
	}
}

func toDomainAlamat(a *pegawaipb.Alamat) pegawai.Alamat {
	if a == nil {
		return pegawai.Alamat{}
	}

	return pegawai.Alamat{
		Provinsi:  toDomainWilayahRef(a.GetProvinsi()),
		Kota:      toDomainWilayahRef(a.GetKota()),
		Kecamatan: toDomainWilayahRef(a.GetKecamatan()),
		Desa:      toDomainWilayahRef(a.GetDesa()),
		Detail:    a.GetDetail(),
	}
}

func toDomainWilayahRef(ref *pegawaipb.WilayahRef) pegawai.WilayahRef {
	if ref == nil {
		return pegawai.WilayahRef{}
	}
	return pegawai.WilayahRef{ID: ref.GetId(), Nama: ref.GetNama()}
}

func toProtoAlamat(a pegawai.Alamat) *pegawaipb.Alamat {
	return &pegawaipb.Alamat{
		Provinsi:  &pegawaipb.WilayahRef{Id: a.Provinsi.ID, Nama: a.Provinsi.Nama},
		Kota:      &pegawaipb.WilayahRef{Id: a.Kota.ID, Nama: a.Kota.Nama},
		Kecamatan: &pegawaipb.WilayahRef{Id: a.Kecamatan.ID, Nama: a.Kecamatan.Nama},
		Desa:      &pegawaipb.WilayahRef{Id: a.Desa.ID, Nama: a.Desa.Nama},
		Detail:    a.Detail,
	}
}

func toDomainJenisKelamin(v pegawaipb.JenisKelamin) (pegawai.JenisKelamin, error) {
	switch v {
	case pegawaipb.JenisKelamin_JENIS_KELAMIN_LAKI_LAKI:
		return pegawai.JenisKelaminLakiLaki, nil
	case pegawaipb.JenisKelamin_JENIS_KELAMIN_PEREMPUAN:
		return pegawai.JenisKelaminPerempuan, nil
	default:
		return "", pegawai.ErrInvalidJenisKelamin
	}
}

func toProtoJenisKelamin(v pegawai.JenisKelamin) pegawaipb.JenisKelamin {
	switch v {
	case pegawai.JenisKelaminLakiLaki:
		return pegawaipb.JenisKelamin_JENIS_KELAMIN_LAKI_LAKI
	case pegawai.JenisKelaminPerempuan:
		return pegawaipb.JenisKelamin_JENIS_KELAMIN_PEREMPUAN
	default:
		return pegawaipb.JenisKelamin_JENIS_KELAMIN_UNSPECIFIED
	}
}

func toDomainPendidikan(v pegawaipb.Pendidikan) (pegawai.Pendidikan, error) {
	switch v {
	case pegawaipb.Pendidikan_PENDIDIKAN_SD:
		return pegawai.PendidikanSD, nil
	case pegawaipb.Pendidikan_PENDIDIKAN_SMP:
		return pegawai.PendidikanSMP, nil
	case pegawaipb.Pendidikan_PENDIDIKAN_SMA:
		return pegawai.PendidikanSMA, nil
	case pegawaipb.Pendidikan_PENDIDIKAN_D3:
		return pegawai.PendidikanD3, nil
	case pegawaipb.Pendidikan_PENDIDIKAN_S1:
		return pegawai.PendidikanS1, nil
	case pegawaipb.Pendidikan_PENDIDIKAN_S2:
		return pegawai.PendidikanS2, nil
	case pegawaipb.Pendidikan_PENDIDIKAN_S3:
		return pegawai.PendidikanS3, nil
	default:
		return "", pegawai.ErrInvalidPendidikan
	}
}

func toProtoPendidikan(v pegawai.Pendidikan) pegawaipb.Pendidikan {
	switch v {
	case pegawai.PendidikanSD:
		return pegawaipb.Pendidikan_PENDIDIKAN_SD
	case pegawai.PendidikanSMP:
		return pegawaipb.Pendidikan_PENDIDIKAN_SMP
	case pegawai.PendidikanSMA:
		return pegawaipb.Pendidikan_PENDIDIKAN_SMA
	case pegawai.PendidikanD3:
		return pegawaipb.Pendidikan_PENDIDIKAN_D3
	case pegawai.PendidikanS1:
		return pegawaipb.Pendidikan_PENDIDIKAN_S1
	case pegawai.PendidikanS2:
		return pegawaipb.Pendidikan_PENDIDIKAN_S2
	case pegawai.PendidikanS3:
		return pegawaipb.Pendidikan_PENDIDIKAN_S3
	default:
		return pegawaipb.Pendidikan_PENDIDIKAN_UNSPECIFIED
	}
}

func toDomainGolonganDarah(v pegawaipb.GolonganDarah) (pegawai.GolonganDarah, error) {
	switch v {
	case pegawaipb.GolonganDarah_GOLONGAN_DARAH_A:
		return pegawai.GolonganDarahA, nil
	case pegawaipb.GolonganDarah_GOLONGAN_DARAH_B:
		return pegawai.GolonganDarahB, nil
	case pegawaipb.GolonganDarah_GOLONGAN_DARAH_AB:
		return pegawai.GolonganDarahAB, nil
	case pegawaipb.GolonganDarah_GOLONGAN_DARAH_O:
		return pegawai.GolonganDarahO, nil
	default:
		return "", pegawai.ErrInvalidGolonganDarah
	}
}

func toProtoGolonganDarah(v *pegawai.GolonganDarah) pegawaipb.GolonganDarah {
	if v == nil {
		return pegawaipb.GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED
	}
	switch *v {
	case pegawai.GolonganDarahA:
		return pegawaipb.GolonganDarah_GOLONGAN_DARAH_A
	case pegawai.GolonganDarahB:
		return pegawaipb.GolonganDarah_GOLONGAN_DARAH_B
	case pegawai.GolonganDarahAB:
		return pegawaipb.GolonganDarah_GOLONGAN_DARAH_AB
	case pegawai.GolonganDarahO:
		return pegawaipb.GolonganDarah_GOLONGAN_DARAH_O
	default:
		return pegawaipb.GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED
	}
}

func stringValueToPointer(value *wrapperspb.StringValue) *string {
	if value == nil {
		return nil
	}
	v := value.GetValue()
	return &v
}

func pointerToStringValue(value *string) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(*value)
}

func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid format, expected YYYY-MM-DD")
	}
	return t, nil
}
