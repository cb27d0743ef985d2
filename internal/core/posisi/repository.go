package posisi

import "context"

// Repository abstracts open-position persistence.
type Repository interface {
	Create(ctx context.Context, p *PosisiTersedia) (*PosisiTersedia, error)
	Update(ctx context.Context, p *PosisiTersedia) (*PosisiTersedia, error)
	FindByID(ctx context.Context, id string) (*PosisiTersedia, error)
	List(ctx context.Context, filter ListPosisiFilter) ([]*PosisiTersedia, string, error)
}

// ListPosisiFilter narrows open-position listings. AvailableOnly keeps
// positions that are still advertised and have remaining kuota.
type ListPosisiFilter struct {
	UnitKerja     string
	AvailableOnly bool
	Limit         int
	Offset        int
}
