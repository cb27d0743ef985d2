package handler

import (
	"context"
	"fmt"
	"time"

	mutasipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/mutasi/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// MutasiGrpcHandler is the gRPC surface of the transfer workflow.
type MutasiGrpcHandler struct {
	svc mutasi.UseCase
	mutasipb.UnimplementedMutasiServiceServer
}

// NewMutasiGrpcHandler creates a MutasiGrpcHandler.
func NewMutasiGrpcHandler(svc mutasi.UseCase) *MutasiGrpcHandler {
	return &MutasiGrpcHandler{svc: svc}
}

// CreateMutasi submits a transfer request.
func (h *MutasiGrpcHandler) CreateMutasi(ctx context.Context, req *mutasipb.CreateMutasiRequest) (*mutasipb.CreateMutasiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tanggalEfektif, err := parseDate(req.GetTanggalEfektif())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tanggal_efektif: %v", err))
	}

	created, err := h.svc.CreateMutasi(ctx, mutasi.CreateMutasiInput{
		PegawaiID:      req.GetPegawaiId(),
		UnitKerjaLama:  req.GetUnitKerjaLama(),
		JabatanLama:    req.GetJabatanLama(),
		UnitKerjaBaru:  req.GetUnitKerjaBaru(),
		JabatanBaru:    req.GetJabatanBaru(),
		TanggalEfektif: tanggalEfektif,
		AlasanMutasi:   req.GetAlasanMutasi(),
		DiajukanOleh:   req.GetDiajukanOleh(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &mutasipb.CreateMutasiResponse{Mutasi: toProtoMutasi(created)}, nil
}

// GetMutasi fetches a transfer request.
func (h *MutasiGrpcHandler) GetMutasi(ctx context.Context, req *mutasipb.GetMutasiRequest) (*mutasipb.GetMutasiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetMutasi(ctx, mutasi.GetMutasiInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &mutasipb.GetMutasiResponse{Mutasi: toProtoMutasi(found)}, nil
}

// ListMutasi fetches a page of transfer requests.
func (h *MutasiGrpcHandler) ListMutasi(ctx context.Context, req *mutasipb.ListMutasiRequest) (*mutasipb.ListMutasiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *mutasi.Status
	if req.GetStatus() != mutasipb.MutasiStatus_MUTASI_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainMutasiStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	result, err := h.svc.ListMutasi(ctx, mutasi.ListMutasiInput{
		PegawaiID: stringValueToPointer(req.PegawaiId),
		Status:    statusPtr,
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoMutasi := make([]*mutasipb.Mutasi, 0, len(result.Mutasi))
	for _, m := range result.Mutasi {
		protoMutasi = append(protoMutasi, toProtoMutasi(m))
	}

	return &mutasipb.ListMutasiResponse{
		Mutasi:        protoMutasi,
		Total:         int32(result.Total),
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdateMutasiStatus applies the admin decision on a pending request.
func (h *MutasiGrpcHandler) UpdateMutasiStatus(ctx context.Context, req *mutasipb.UpdateMutasiStatusRequest) (*mutasipb.UpdateMutasiStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	domainStatus, err := toDomainMutasiStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	updated, err := h.svc.UpdateMutasiStatus(ctx, mutasi.UpdateMutasiStatusInput{
		ID:                 req.GetId(),
		Status:             domainStatus,
		DisetujuiOleh:      req.GetDisetujuiOleh(),
		CatatanPersetujuan: stringValueToPointer(req.CatatanPersetujuan),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &mutasipb.UpdateMutasiStatusResponse{Mutasi: toProtoMutasi(updated)}, nil
}

// DeleteMutasi withdraws a pending transfer request.
func (h *MutasiGrpcHandler) DeleteMutasi(ctx context.Context, req *mutasipb.DeleteMutasiRequest) (*mutasipb.DeleteMutasiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteMutasi(ctx, mutasi.DeleteMutasiInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &mutasipb.DeleteMutasiResponse{}, nil
}

func toProtoMutasi(m *mutasi.Mutasi) *mutasipb.Mutasi {
	if m == nil {
		return nil
	}

	return &mutasipb.Mutasi{
		Id:                 m.ID,
		PegawaiId:          m.PegawaiID,
		UnitKerjaLama:      m.UnitKerjaLama,
		JabatanLama:        m.JabatanLama,
		UnitKerjaBaru:      m.UnitKerjaBaru,
		JabatanBaru:        m.JabatanBaru,
		TanggalEfektif:     m.TanggalEfektif.Format(dateLayout),
		AlasanMutasi:       m.AlasanMutasi,
		Status:             toProtoMutasiStatus(m.Status),
		DiajukanOleh:       m.DiajukanOleh,
		DisetujuiOleh:      pointerToStringValue(m.DisetujuiOleh),
		TanggalDisetujui:   timePointerToTimestamp(m.TanggalDisetujui),
		CatatanPersetujuan: pointerToStringValue(m.CatatanPersetujuan),
		CreatedAt:          timestamppb.New(m.CreatedAt),
		UpdatedAt:          timestamppb.New(m.UpdatedAt),
	}
}

func toDomainMutasiStatus(v mutasipb.MutasiStatus) (mutasi.Status, error) {
	switch v {
	case mutasipb.MutasiStatus_MUTASI_STATUS_PENDING:
		return mutasi.StatusPending, nil
	case mutasipb.MutasiStatus_MUTASI_STATUS_APPROVED:
		return mutasi.StatusApproved, nil
	case mutasipb.MutasiStatus_MUTASI_STATUS_REJECTED:
		return mutasi.StatusRejected, nil
	default:
		return "", mutasi.ErrInvalidStatus
	}
}

func toProtoMutasiStatus(v mutasi.Status) mutasipb.MutasiStatus {
	switch v {
	case mutasi.StatusPending:
		return mutasipb.MutasiStatus_MUTASI_STATUS_PENDING
	case mutasi.StatusApproved:
		return mutasipb.MutasiStatus_MUTASI_STATUS_APPROVED
	case mutasi.StatusRejected:
		return mutasipb.MutasiStatus_MUTASI_STATUS_REJECTED
	default:
		return mutasipb.MutasiStatus_MUTASI_STATUS_UNSPECIFIED
	}
}

func timePointerToTimestamp(value *time.Time) *timestamppb.Timestamp {
	if value == nil {
		return nil
	}
	return timestamppb.New(*value)
}
