package pegawai

import (
	"context"
	"time"
)

// Repository abstracts employee persistence.
type Repository interface {
	Create(ctx context.Context, p *Pegawai) (*Pegawai, error)
	Update(ctx context.Context, p *Pegawai) (*Pegawai, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Pegawai, error)
	FindByNIP(ctx context.Context, nip string) (*Pegawai, error)
	List(ctx context.Context, filter ListPegawaiFilter) ([]*Pegawai, string, error)
	FindActiveByTanggalLahirRange(ctx context.Context, oldest, youngest time.Time) ([]*Pegawai, error)
}

// ListPegawaiFilter narrows employee listings.
type ListPegawaiFilter struct {
	Nama     string
	NIP      string
	IsActive *bool
	Limit    int
	Offset   int
}
