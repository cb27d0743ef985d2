package wilayah

import (
	"context"
	"errors"
)

// ErrUpstream marks failures of the external geography API.
var ErrUpstream = errors.New("wilayah: upstream error")

// Wilayah is one entry of the administrative hierarchy
// (province, regency/city, district, or village).
type Wilayah struct {
	ID   string
	Nama string
}

// Provider looks up the Indonesian administrative hierarchy.
// Implementations must not cache: the reference data is owned upstream.
type Provider interface {
	Provinces(ctx context.Context) ([]Wilayah, error)
	Regencies(ctx context.Context, provinceID string) ([]Wilayah, error)
	Districts(ctx context.Context, regencyID string) ([]Wilayah, error)
	Villages(ctx context.Context, districtID string) ([]Wilayah, error)
}
