package mutasi

import (
	"context"
	"time"
)

// Repository abstracts transfer-request persistence.
type Repository interface {
	Create(ctx context.Context, m *Mutasi) (*Mutasi, error)
	UpdateStatus(ctx context.Context, m *Mutasi) (*Mutasi, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Mutasi, error)
	List(ctx context.Context, filter ListMutasiFilter) ([]*Mutasi, int, error)
}

// ListMutasiFilter narrows transfer-request listings. Results are
// ordered by submission time descending.
type ListMutasiFilter struct {
	PegawaiID *string
	Status    *Status
	Limit     int
	Offset    int
}

// PegawaiDirectory is the slice of the employee directory the workflow
// needs: existence checks for the requesting employee.
type PegawaiDirectory interface {
	EnsureExists(ctx context.Context, pegawaiID string) error
}

// LedgerEntry is the record appended to the position ledger when a
// transfer is approved.
type LedgerEntry struct {
	PegawaiID  string
	Jabatan    string
	UnitKerja  string
	TMTJabatan time.Time
	Keterangan *string
}

// RiwayatLedger is the slice of the position ledger the workflow needs.
type RiwayatLedger interface {
	// CloseCurrent sets the end date on the employee's open ledger
	// entry. A missing open entry is not an error.
	CloseCurrent(ctx context.Context, pegawaiID string, endDate time.Time) error
	Append(ctx context.Context, entry LedgerEntry) error
}

// PosisiRegistry is the slice of the open-position registry the
// workflow needs: atomic kuota bookkeeping for approvals.
type PosisiRegistry interface {
	// DecrementKuota takes one slot from the active position matching
	// (unitKerja, namaPosisi). It reports found=false when no active
	// position matches, and ErrKuotaHabis when one matches but has no
	// remaining kuota. The decrement must be atomic so concurrent
	// approvals against the same position serialize.
	DecrementKuota(ctx context.Context, unitKerja, namaPosisi string) (found bool, err error)
}
