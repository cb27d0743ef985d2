package handler

import (
	"context"
	"strings"

	posisipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/posisi/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// PosisiGrpcHandler is the gRPC surface of open-position management.
type PosisiGrpcHandler struct {
	svc posisi.UseCase
	posisipb.UnimplementedPosisiTersediaServiceServer
}

// NewPosisiGrpcHandler creates a PosisiGrpcHandler.
func NewPosisiGrpcHandler(svc posisi.UseCase) *PosisiGrpcHandler {
	return &PosisiGrpcHandler{svc: svc}
}

// CreatePosisi advertises an open position.
func (h *PosisiGrpcHandler) CreatePosisi(ctx context.Context, req *posisipb.CreatePosisiRequest) (*posisipb.CreatePosisiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreatePosisi(ctx, posisi.CreatePosisiInput{
		NamaPosisi:  req.GetNamaPosisi(),
		UnitKerja:   req.GetUnitKerja(),
		Deskripsi:   stringValueToPointer(req.Deskripsi),
		Persyaratan: stringValueToPointer(req.Persyaratan),
		Kuota:       int(req.GetKuota()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &posisipb.CreatePosisiResponse{Posisi: toProtoPosisi(created)}, nil
}

// GetPosisi fetches an open position.
func (h *PosisiGrpcHandler) GetPosisi(ctx context.Context, req *posisipb.GetPosisiRequest) (*posisipb.GetPosisiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetPosisi(ctx, posisi.GetPosisiInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &posisipb.GetPosisiResponse{Posisi: toProtoPosisi(found)}, nil
}

// ListPosisi fetches a page of open positions.
func (h *PosisiGrpcHandler) ListPosisi(ctx context.Context, req *posisipb.ListPosisiRequest) (*posisipb.ListPosisiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListPosisi(ctx, posisi.ListPosisiInput{
		UnitKerja:     req.GetUnitKerja(),
		AvailableOnly: req.GetAvailableOnly(),
		PageSize:      int(req.GetPageSize()),
		PageToken:     req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoPosisi := make([]*posisipb.PosisiTersedia, 0, len(result.Posisi))
	for _, p := range result.Posisi {
		protoPosisi = append(protoPosisi, toProtoPosisi(p))
	}

	return &posisipb.ListPosisiResponse{
		Posisi:        protoPosisi,
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdatePosisi applies a partial update to an open position.
func (h *PosisiGrpcHandler) UpdatePosisi(ctx context.Context, req *posisipb.UpdatePosisiRequest) (*posisipb.UpdatePosisiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := posisi.UpdatePosisiInput{
		ID:         req.GetId(),
		NamaPosisi: stringValueToPointer(req.NamaPosisi),
		UnitKerja:  stringValueToPointer(req.UnitKerja),
	}

	if req.Deskripsi != nil {
		in.DeskripsiSet = true
		if trimmed := strings.TrimSpace(req.Deskripsi.GetValue()); trimmed != "" {
			in.Deskripsi = &trimmed
		}
	}

	if req.Persyaratan != nil {
		in.PersyaratanSet = true
		if trimmed := strings.TrimSpace(req.Persyaratan.GetValue()); trimmed != "" {
			in.Persyaratan = &trimmed
		}
	}

	if req.Kuota != nil {
		value := int(req.Kuota.GetValue())
		in.Kuota = &value
	}

	if req.IsAvailable != nil {
		value := req.IsAvailable.GetValue()
		in.IsAvailable = &value
	}

	updated, err := h.svc.UpdatePosisi(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &posisipb.UpdatePosisiResponse{Posisi: toProtoPosisi(updated)}, nil
}

// DeactivatePosisi takes a position offline without deleting it.
func (h *PosisiGrpcHandler) DeactivatePosisi(ctx context.Context, req *posisipb.DeactivatePosisiRequest) (*posisipb.DeactivatePosisiResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deactivated, err := h.svc.DeactivatePosisi(ctx, posisi.DeactivatePosisiInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &posisipb.DeactivatePosisiResponse{Posisi: toProtoPosisi(deactivated)}, nil
}

func toProtoPosisi(p *posisi.PosisiTersedia) *posisipb.PosisiTersedia {
	if p == nil {
		return nil
	}

	return &posisipb.PosisiTersedia{
		Id:          p.ID,
		NamaPosisi:  p.NamaPosisi,
		UnitKerja:   p.UnitKerja,
		Deskripsi:   pointerToStringValue(p.Deskripsi),
		Persyaratan: pointerToStringValue(p.Persyaratan),
		Kuota:       int32(p.Kuota),
		IsAvailable: p.IsAvailable,
		CreatedAt:   timestamppb.New(p.CreatedAt),
		UpdatedAt:   timestamppb.New(p.UpdatedAt),
	}
}
