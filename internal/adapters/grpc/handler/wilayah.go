package handler

import (
	"context"

	wilayahpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/wilayah/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/wilayah"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WilayahGrpcHandler proxies geography lookups to the upstream API.
type WilayahGrpcHandler struct {
	provider wilayah.Provider
	wilayahpb.UnimplementedWilayahServiceServer
}

// NewWilayahGrpcHandler creates a WilayahGrpcHandler.
func NewWilayahGrpcHandler(provider wilayah.Provider) *WilayahGrpcHandler {
	return &WilayahGrpcHandler{provider: provider}
}

// ListProvinces lists every province.
func (h *WilayahGrpcHandler) ListProvinces(ctx context.Context, req *wilayahpb.ListProvincesRequest) (*wilayahpb.ListProvincesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	entries, err := h.provider.Provinces(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &wilayahpb.ListProvincesResponse{Wilayah: toProtoWilayah(entries)}, nil
}

// ListRegencies lists the regencies and cities of a province.
func (h *WilayahGrpcHandler) ListRegencies(ctx context.Context, req *wilayahpb.ListRegenciesRequest) (*wilayahpb.ListRegenciesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.GetProvinceId() == "" {
		return nil, status.Error(codes.InvalidArgument, "province_id is required")
	}

	entries, err := h.provider.Regencies(ctx, req.GetProvinceId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &wilayahpb.ListRegenciesResponse{Wilayah: toProtoWilayah(entries)}, nil
}

// ListDistricts lists the districts of a regency.
func (h *WilayahGrpcHandler) ListDistricts(ctx context.Context, req *wilayahpb.ListDistrictsRequest) (*wilayahpb.ListDistrictsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.GetRegencyId() == "" {
		return nil, status.Error(codes.InvalidArgument, "regency_id is required")
	}

	entries, err := h.provider.Districts(ctx, req.GetRegencyId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &wilayahpb.ListDistrictsResponse{Wilayah: toProtoWilayah(entries)}, nil
}

// ListVillages lists the villages of a district.
func (h *WilayahGrpcHandler) ListVillages(ctx context.Context, req *wilayahpb.ListVillagesRequest) (*wilayahpb.ListVillagesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.GetDistrictId() == "" {
		return nil, status.Error(codes.InvalidArgument, "district_id is required")
	}

	entries, err := h.provider.Villages(ctx, req.GetDistrictId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &wilayahpb.ListVillagesResponse{Wilayah: toProtoWilayah(entries)}, nil
}

func toProtoWilayah(entries []wilayah.Wilayah) []*wilayahpb.Wilayah {
	proto := make([]*wilayahpb.Wilayah, 0, len(entries))
	for _, entry := range entries {
		proto = append(proto, &wilayahpb.Wilayah{Id: entry.ID, Nama: entry.Nama})
	}
	return proto
}
