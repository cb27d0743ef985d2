package riwayat

import "context"

// Repository abstracts position-ledger persistence.
type Repository interface {
	Create(ctx context.Context, r *RiwayatJabatan) (*RiwayatJabatan, error)
	Update(ctx context.Context, r *RiwayatJabatan) (*RiwayatJabatan, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*RiwayatJabatan, error)
	// FindCurrentByPegawai returns the entry with the latest TMTJabatan.
	FindCurrentByPegawai(ctx context.Context, pegawaiID string) (*RiwayatJabatan, error)
	ListByPegawai(ctx context.Context, filter ListRiwayatFilter) ([]*RiwayatJabatan, string, error)
}

// ListRiwayatFilter narrows ledger listings.
type ListRiwayatFilter struct {
	PegawaiID string
	Limit     int
	Offset    int
}
