package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	riwayatpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/riwayat/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// RiwayatGrpcHandler is the gRPC surface of the position ledger.
type RiwayatGrpcHandler struct {
	svc riwayat.UseCase
	riwayatpb.UnimplementedRiwayatJabatanServiceServer
}

// NewRiwayatGrpcHandler creates a RiwayatGrpcHandler.
func NewRiwayatGrpcHandler(svc riwayat.UseCase) *RiwayatGrpcHandler {
	return &RiwayatGrpcHandler{svc: svc}
}

// CreateRiwayat appends a ledger entry.
func (h *RiwayatGrpcHandler) CreateRiwayat(ctx context.Context, req *riwayatpb.CreateRiwayatRequest) (*riwayatpb.CreateRiwayatResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tmtJabatan, err := parseDate(req.GetTmtJabatan())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tmt_jabatan: %v", err))
	}

	tmtBerakhir, err := parseDatePointer(req.TmtBerakhir)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tmt_berakhir: %v", err))
	}

	created, err := h.svc.CreateRiwayat(ctx, riwayat.CreateRiwayatInput{
		PegawaiID:       req.GetPegawaiId(),
		Jabatan:         req.GetJabatan(),
		JabatanTambahan: stringValueToPointer(req.JabatanTambahan),
		UnitKerja:       req.GetUnitKerja(),
		TMTJabatan:      tmtJabatan,
		TMTBerakhir:     tmtBerakhir,
		Keterangan:      stringValueToPointer(req.Keterangan),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &riwayatpb.CreateRiwayatResponse{Riwayat: toProtoRiwayat(created)}, nil
}

// UpdateRiwayat applies an admin correction to a ledger entry.
func (h *RiwayatGrpcHandler) UpdateRiwayat(ctx context.Context, req *riwayatpb.UpdateRiwayatRequest) (*riwayatpb.UpdateRiwayatResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := riwayat.UpdateRiwayatInput{
		ID:        req.GetId(),
		Jabatan:   stringValueToPointer(req.Jabatan),
		UnitKerja: stringValueToPointer(req.UnitKerja),
	}

	if req.JabatanTambahan != nil {
		in.JabatanTambahanSet = true
		if trimmed := strings.TrimSpace(req.JabatanTambahan.GetValue()); trimmed != "" {
			in.JabatanTambahan = &trimmed
		}
	}

	if req.TmtJabatan != nil {
		t, err := parseDate(req.TmtJabatan.GetValue())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tmt_jabatan: %v", err))
		}
		in.TMTJabatan = &t
	}

	if req.TmtBerakhir != nil {
		in.TMTBerakhirSet = true
		if trimmed := strings.TrimSpace(req.TmtBerakhir.GetValue()); trimmed != "" {
			t, err := parseDate(trimmed)
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tmt_berakhir: %v", err))
			}
			in.TMTBerakhir = &t
		}
	}

	if req.Keterangan != nil {
		in.KeteranganSet = true
		if trimmed := strings.TrimSpace(req.Keterangan.GetValue()); trimmed != "" {
			in.Keterangan = &trimmed
		}
	}

	updated, err := h.svc.UpdateRiwayat(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &riwayatpb.UpdateRiwayatResponse{Riwayat: toProtoRiwayat(updated)}, nil
}

// DeleteRiwayat removes a ledger entry.
func (h *RiwayatGrpcHandler) DeleteRiwayat(ctx context.Context, req *riwayatpb.DeleteRiwayatRequest) (*riwayatpb.DeleteRiwayatResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteRiwayat(ctx, riwayat.DeleteRiwayatInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &riwayatpb.DeleteRiwayatResponse{}, nil
}

// ListRiwayatByPegawai fetches the ledger of one employee, newest TMT
// first.
func (h *RiwayatGrpcHandler) ListRiwayatByPegawai(ctx context.Context, req *riwayatpb.ListRiwayatByPegawaiRequest) (*riwayatpb.ListRiwayatByPegawaiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListRiwayatByPegawai(ctx, riwayat.ListRiwayatInput{
		PegawaiID: req.GetPegawaiId(),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoRiwayat := make([]*riwayatpb.RiwayatJabatan, 0, len(result.Riwayat))
	for _, entry := range result.Riwayat {
		protoRiwayat = append(protoRiwayat, toProtoRiwayat(entry))
	}

	return &riwayatpb.ListRiwayatByPegawaiResponse{
		Riwayat:       protoRiwayat,
		NextPageToken: result.NextPageToken,
	}, nil
}

// GetCurrentJabatan fetches the current position of an employee.
func (h *RiwayatGrpcHandler) GetCurrentJabatan(ctx context.Context, req *riwayatpb.GetCurrentJabatanRequest) (*riwayatpb.GetCurrentJabatanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	current, err := h.svc.GetCurrentJabatan(ctx, req.GetPegawaiId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &riwayatpb.GetCurrentJabatanResponse{Riwayat: toProtoRiwayat(current)}, nil
}

func toProtoRiwayat(entry *riwayat.RiwayatJabatan) *riwayatpb.RiwayatJabatan {
	if entry == nil {
		return nil
	}

	return &riwayatpb.RiwayatJabatan{
		Id:              entry.ID,
		PegawaiId:       entry.PegawaiID,
		Jabatan:         entry.Jabatan,
		JabatanTambahan: pointerToStringValue(entry.JabatanTambahan),
		UnitKerja:       entry.UnitKerja,
		TmtJabatan:      entry.TMTJabatan.Format(dateLayout),
		TmtBerakhir:     datePointerToValue(entry.TMTBerakhir),
		Keterangan:      pointerToStringValue(entry.Keterangan),
		CreatedAt:       timestamppb.New(entry.CreatedAt),
		UpdatedAt:       timestamppb.New(entry.UpdatedAt),
	}
}

func datePointerToValue(value *time.Time) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(value.Format(dateLayout))
}

func parseDatePointer(value *wrapperspb.StringValue) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(value.GetValue())
	if trimmed == "" {
		return nil, nil
	}
	t, err := parseDate(trimmed)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
