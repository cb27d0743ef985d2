package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	pgdb "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MutasiPegawaiDirectory answers existence checks for the transfer
// workflow against the pegawai table.
type MutasiPegawaiDirectory struct {
	pool pgdb.Queryer
}

// NewMutasiPegawaiDirectory creates a MutasiPegawaiDirectory.
func NewMutasiPegawaiDirectory(pool pgdb.Queryer) *MutasiPegawaiDirectory {
	return &MutasiPegawaiDirectory{pool: pool}
}

// EnsureExists reports mutasi.ErrPegawaiNotFound when no employee
// record matches the id.
func (d *MutasiPegawaiDirectory) EnsureExists(ctx context.Context, pegawaiID string) error {
	exec := pgdb.QueryerFromContext(ctx, d.pool)
	var one int
	err := exec.QueryRow(ctx, `SELECT 1 FROM pegawai WHERE id = $1`, pegawaiID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return mutasi.ErrPegawaiNotFound
	}
	return err
}

// MutasiRiwayatLedger applies the approved-transfer writes to the
// riwayat_jabatan table.
type MutasiRiwayatLedger struct {
	pool pgdb.Queryer
}

// NewMutasiRiwayatLedger creates a MutasiRiwayatLedger.
func NewMutasiRiwayatLedger(pool pgdb.Queryer) *MutasiRiwayatLedger {
	return &MutasiRiwayatLedger{pool: pool}
}

// CloseCurrent sets the end date on the open entry with the latest TMT.
// An employee without an open entry is left alone. An end date before
// the open entry's TMT trips the ledger's period constraint and is
// reported as mutasi.ErrInvalidTanggalEfektif.
func (l *MutasiRiwayatLedger) CloseCurrent(ctx context.Context, pegawaiID string, endDate time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, l.pool)
	_, err := exec.Exec(ctx, `
        UPDATE riwayat_jabatan
           SET tmt_berakhir = $1,
               updated_at = NOW()
         WHERE id = (
               SELECT id
                 FROM riwayat_jabatan
                WHERE pegawai_id = $2
                  AND tmt_berakhir IS NULL
                ORDER BY tmt_jabatan DESC, created_at DESC
                LIMIT 1
         )
    `, dateOnly(endDate), pegawaiID)
	if err != nil {
		return translateLedgerPgError(err)
	}
	return nil
}

// Append inserts the destination position as a new open ledger entry.
func (l *MutasiRiwayatLedger) Append(ctx context.Context, entry mutasi.LedgerEntry) error {
	exec := pgdb.QueryerFromContext(ctx, l.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO riwayat_jabatan (pegawai_id, jabatan, unit_kerja, tmt_jabatan, keterangan, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    `,
		entry.PegawaiID,
		entry.Jabatan,
		entry.UnitKerja,
		dateOnly(entry.TMTJabatan),
		nullableString(entry.Keterangan),
	)
	if err != nil {
		return translateLedgerPgError(err)
	}
	return nil
}

func translateLedgerPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return mutasi.ErrPegawaiNotFound
		case checkViolationCode:
			return mutasi.ErrInvalidTanggalEfektif
		}
	}
	return err
}

// MutasiPosisiRegistry does the kuota bookkeeping for approvals against
// the posisi_tersedia table.
type MutasiPosisiRegistry struct {
	pool pgdb.Queryer
}

// NewMutasiPosisiRegistry creates a MutasiPosisiRegistry.
func NewMutasiPosisiRegistry(pool pgdb.Queryer) *MutasiPosisiRegistry {
	return &MutasiPosisiRegistry{pool: pool}
}

// DecrementKuota takes one slot from the active position matching the
// destination. The conditional UPDATE makes the decrement atomic, so
// two concurrent approvals cannot spend the same slot; the position is
// withdrawn when its last slot is spent.
func (p *MutasiPosisiRegistry) DecrementKuota(ctx context.Context, unitKerja, namaPosisi string) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, p.pool)

	tag, err := exec.Exec(ctx, `
        UPDATE posisi_tersedia
           SET kuota = kuota - 1,
               is_available = (kuota - 1 > 0),
               updated_at = NOW()
         WHERE unit_kerja = $1
           AND nama_posisi = $2
           AND is_available
           AND kuota > 0
    `, unitKerja, namaPosisi)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Nothing updated: either no matching active position, or one with
	// exhausted kuota.
	var one int
	err = exec.QueryRow(ctx, `
        SELECT 1
          FROM posisi_tersedia
         WHERE unit_kerja = $1
           AND nama_posisi = $2
           AND is_available
         LIMIT 1
    `, unitKerja, namaPosisi).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, mutasi.ErrKuotaHabis
}
