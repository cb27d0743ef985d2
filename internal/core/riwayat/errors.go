package riwayat

import "errors"

var (
	ErrRiwayatNotFound   = errors.New("riwayat: not found")
	ErrPegawaiNotFound   = errors.New("riwayat: pegawai not found")
	ErrInvalidID         = errors.New("riwayat: invalid id")
	ErrInvalidPegawaiID  = errors.New("riwayat: invalid pegawai id")
	ErrInvalidJabatan    = errors.New("riwayat: invalid jabatan")
	ErrInvalidUnitKerja  = errors.New("riwayat: invalid unit kerja")
	ErrInvalidTMTJabatan = errors.New("riwayat: invalid tmt jabatan")
	ErrInvalidPeriode    = errors.New("riwayat: tmt berakhir precedes tmt jabatan")
	ErrInvalidPageSize   = errors.New("riwayat: invalid page size")
	ErrInvalidPageToken  = errors.New("riwayat: invalid page token")
)
