package mutasi

import "time"

// Status is the transfer-request state. pending is the only
// non-terminal state: once a request is approved or rejected it can
// never transition again and can no longer be deleted.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Mutasi is a transfer request. Origin and destination are free-text
// snapshots taken at submission time, not foreign keys, so the record
// stays readable even if the advertised position later changes.
type Mutasi struct {
	ID                 string
	PegawaiID          string
	UnitKerjaLama      string
	JabatanLama        string
	UnitKerjaBaru      string
	JabatanBaru        string
	TanggalEfektif     time.Time
	AlasanMutasi       string
	Status             Status
	DiajukanOleh       string
	DisetujuiOleh      *string
	TanggalDisetujui   *time.Time
	CatatanPersetujuan *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
