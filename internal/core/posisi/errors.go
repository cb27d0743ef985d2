package posisi

import "errors"

var (
	ErrPosisiNotFound    = errors.New("posisi: not found")
	ErrInvalidID         = errors.New("posisi: invalid id")
	ErrInvalidNamaPosisi = errors.New("posisi: invalid nama posisi")
	ErrInvalidUnitKerja  = errors.New("posisi: invalid unit kerja")
	ErrInvalidKuota      = errors.New("posisi: invalid kuota")
	ErrKuotaHabis        = errors.New("posisi: kuota habis")
	ErrInvalidPageSize   = errors.New("posisi: invalid page size")
	ErrInvalidPageToken  = errors.New("posisi: invalid page token")
)
