package handler

import (
	"context"
	"fmt"
	"testing"

	wilayahpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/wilayah/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/wilayah"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubWilayahProvider struct {
	provincesOut []wilayah.Wilayah
	provincesErr error

	regenciesProvinceID string
	regenciesOut        []wilayah.Wilayah
	regenciesErr        error
}

func (s *stubWilayahProvider) Provinces(_ context.Context) ([]wilayah.Wilayah, error) {
	return s.provincesOut, s.provincesErr
}

func (s *stubWilayahProvider) Regencies(_ context.Context, provinceID string) ([]wilayah.Wilayah, error) {
	s.regenciesProvinceID = provinceID
	return s.regenciesOut, s.regenciesErr
}

func (s *stubWilayahProvider) Districts(_ context.Context, _ string) ([]wilayah.Wilayah, error) {
	return nil, nil
}

func (s *stubWilayahProvider) Villages(_ context.Context, _ string) ([]wilayah.Wilayah, error) {
	return nil, nil
}

func TestWilayahGrpcHandler_ListProvinces_Success(t *testing.T) {
	t.Parallel()

	stub := &stubWilayahProvider{provincesOut: []wilayah.Wilayah{
		{ID: "32", Nama: "Jawa Barat"},
		{ID: "33", Nama: "Jawa Tengah"},
	}}

	handler := NewWilayahGrpcHandler(stub)
	resp, err := handler.ListProvinces(context.Background(), &wilayahpb.ListProvincesRequest{})
	if err != nil {
		t.Fatalf("ListProvinces returned error: %v", err)
	}

	if len(resp.GetWilayah()) != 2 {
		t.Fatalf("expected 2 provinces, got %d", len(resp.GetWilayah()))
	}
	if resp.GetWilayah()[0].GetNama() != "Jawa Barat" {
		t.Errorf("unexpected first province: %s", resp.GetWilayah()[0].GetNama())
	}
}

func TestWilayahGrpcHandler_ListRegencies_RequiresProvinceID(t *testing.T) {
	t.Parallel()

	handler := NewWilayahGrpcHandler(&stubWilayahProvider{})

	_, err := handler.ListRegencies(context.Background(), &wilayahpb.ListRegenciesRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestWilayahGrpcHandler_ListRegencies_UpstreamFailure(t *testing.T) {
	t.Parallel()

	stub := &stubWilayahProvider{
		regenciesErr: fmt.Errorf("fetch regencies: %w", wilayah.ErrUpstream),
	}

	handler := NewWilayahGrpcHandler(stub)
	_, err := handler.ListRegencies(context.Background(), &wilayahpb.ListRegenciesRequest{ProvinceId: "32"})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
	if stub.regenciesProvinceID != "32" {
		t.Errorf("expected province id to pass through, got %s", stub.regenciesProvinceID)
	}
}
