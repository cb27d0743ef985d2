package riwayat

import "time"

// RiwayatJabatan is one entry of the position ledger of an employee.
// The entry with the latest TMTJabatan is the current position; a nil
// TMTBerakhir means the entry is still open.
type RiwayatJabatan struct {
	ID              string
	PegawaiID       string
	Jabatan         string
	JabatanTambahan *string
	UnitKerja       string
	TMTJabatan      time.Time
	TMTBerakhir     *time.Time
	Keterangan      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
