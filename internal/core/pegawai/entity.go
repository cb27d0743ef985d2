package pegawai

import "time"

// JenisKelamin is the registered gender.
type JenisKelamin string

const (
	JenisKelaminLakiLaki  JenisKelamin = "laki-laki"
	JenisKelaminPerempuan JenisKelamin = "perempuan"
)

// Pendidikan is the highest completed education level.
type Pendidikan string

const (
	PendidikanSD  Pendidikan = "sd"
	PendidikanSMP Pendidikan = "smp"
	PendidikanSMA Pendidikan = "sma"
	PendidikanD3  Pendidikan = "d3"
	PendidikanS1  Pendidikan = "s1"
	PendidikanS2  Pendidikan = "s2"
	PendidikanS3  Pendidikan = "s3"
)

// GolonganDarah is the blood type.
type GolonganDarah string

const (
	GolonganDarahA  GolonganDarah = "a"
	GolonganDarahB  GolonganDarah = "b"
	GolonganDarahAB GolonganDarah = "ab"
	GolonganDarahO  GolonganDarah = "o"
)

// WilayahRef is a denormalized reference into the geography hierarchy,
// captured at data-entry time so the record stays readable even if the
// upstream reference data changes.
type WilayahRef struct {
	ID   string
	Nama string
}

// Alamat is the denormalized home address of an employee.
type Alamat struct {
	Provinsi  WilayahRef
	Kota      WilayahRef
	Kecamatan WilayahRef
	Desa      WilayahRef
	Detail    string
}

// Pegawai is a civil-servant employee record. The current position is
// not stored here; it is derived from the riwayat jabatan ledger.
type Pegawai struct {
	ID            string
	NIP           string
	Nama          string
	Email         string
	Telepon       *string
	TanggalLahir  time.Time
	JenisKelamin  JenisKelamin
	Pendidikan    Pendidikan
	GolonganDarah *GolonganDarah
	Alamat        Alamat
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
