package posisi

import "time"

// PosisiTersedia is an advertised open position. It is never hard
// deleted so transfer requests that referenced it by name stay
// meaningful; Kuota counts the remaining open slots.
type PosisiTersedia struct {
	ID          string
	NamaPosisi  string
	UnitKerja   string
	Deskripsi   *string
	Persyaratan *string
	Kuota       int
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
