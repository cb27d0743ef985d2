package pegawai

import "errors"

var (
	ErrPegawaiNotFound      = errors.New("pegawai: not found")
	ErrNIPAlreadyExists     = errors.New("pegawai: nip already exists")
	ErrInvalidID            = errors.New("pegawai: invalid id")
	ErrInvalidNIP           = errors.New("pegawai: invalid nip")
	ErrInvalidNama          = errors.New("pegawai: invalid nama")
	ErrInvalidEmail         = errors.New("pegawai: invalid email")
	ErrInvalidTanggalLahir  = errors.New("pegawai: invalid tanggal lahir")
	ErrInvalidJenisKelamin  = errors.New("pegawai: invalid jenis kelamin")
	ErrInvalidPendidikan    = errors.New("pegawai: invalid pendidikan")
	ErrInvalidGolonganDarah = errors.New("pegawai: invalid golongan darah")
	ErrInvalidAlamat        = errors.New("pegawai: invalid alamat")
	ErrInvalidPageSize      = errors.New("pegawai: invalid page size")
	ErrInvalidPageToken     = errors.New("pegawai: invalid page token")
)
