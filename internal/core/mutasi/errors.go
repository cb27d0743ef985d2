package mutasi

import "errors"

var (
	// ErrMutasiNotFound is returned when no request matches the id.
	ErrMutasiNotFound = errors.New("mutasi: not found")
	// ErrPegawaiNotFound is returned when the employee does not exist.
	ErrPegawaiNotFound = errors.New("mutasi: pegawai not found")
	// ErrAlreadyProcessed is returned when a terminal request is
	// re-transitioned or deleted. Terminal states are final.
	ErrAlreadyProcessed = errors.New("mutasi: request already processed")
	// ErrKuotaHabis blocks an approval whose destination position has
	// no remaining kuota.
	ErrKuotaHabis = errors.New("mutasi: kuota for destination position exhausted")

	ErrInvalidID             = errors.New("mutasi: invalid id")
	ErrInvalidPegawaiID      = errors.New("mutasi: invalid pegawai id")
	ErrInvalidUnitKerja      = errors.New("mutasi: invalid unit kerja")
	ErrInvalidJabatan        = errors.New("mutasi: invalid jabatan")
	ErrInvalidAlasan         = errors.New("mutasi: invalid alasan")
	ErrInvalidTanggalEfektif = errors.New("mutasi: invalid tanggal efektif")
	ErrInvalidStatus         = errors.New("mutasi: invalid status")
	ErrInvalidDiajukanOleh   = errors.New("mutasi: invalid diajukan oleh")
	ErrInvalidDisetujuiOleh  = errors.New("mutasi: invalid disetujui oleh")
	ErrInvalidPageSize       = errors.New("mutasi: invalid page size")
	ErrInvalidPageToken      = errors.New("mutasi: invalid page token")
)
