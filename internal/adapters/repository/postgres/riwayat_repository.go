package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	pgdb "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const riwayatColumns = `
        id,
        pegawai_id,
        jabatan,
        jabatan_tambahan,
        unit_kerja,
        tmt_jabatan,
        tmt_berakhir,
        keterangan,
        created_at,
        updated_at`

// RiwayatRepository persists position-ledger entries in PostgreSQL.
type RiwayatRepository struct {
	pool pgdb.Queryer
}

// NewRiwayatRepository creates a RiwayatRepository.
func NewRiwayatRepository(pool pgdb.Queryer) *RiwayatRepository {
	return &RiwayatRepository{pool: pool}
}

// Create inserts a new ledger entry.
func (r *RiwayatRepository) Create(ctx context.Context, entry *riwayat.RiwayatJabatan) (*riwayat.RiwayatJabatan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO riwayat_jabatan (pegawai_id, jabatan, jabatan_tambahan, unit_kerja, tmt_jabatan, tmt_berakhir, keterangan, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING`+riwayatColumns+`
    `,
		entry.PegawaiID,
		entry.Jabatan,
		nullableString(entry.JabatanTambahan),
		entry.UnitKerja,
		dateOnly(entry.TMTJabatan),
		nullableDate(entry.TMTBerakhir),
		nullableString(entry.Keterangan),
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	created, err := scanRiwayat(row)
	if err != nil {
		return nil, translateRiwayatPgError(err)
	}
	return created, nil
}

// Update rewrites a ledger entry.
func (r *RiwayatRepository) Update(ctx context.Context, entry *riwayat.RiwayatJabatan) (*riwayat.RiwayatJabatan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE riwayat_jabatan
           SET jabatan = $1,
               jabatan_tambahan = $2,
               unit_kerja = $3,
               tmt_jabatan = $4,
               tmt_berakhir = $5,
               keterangan = $6,
               updated_at = $7
         WHERE id = $8
        RETURNING`+riwayatColumns+`
    `,
		entry.Jabatan,
		nullableString(entry.JabatanTambahan),
		entry.UnitKerja,
		dateOnly(entry.TMTJabatan),
		nullableDate(entry.TMTBerakhir),
		nullableString(entry.Keterangan),
		entry.UpdatedAt,
		entry.ID,
	)

	updated, err := scanRiwayat(row)
	if err != nil {
		return nil, translateRiwayatPgError(err)
	}
	return updated, nil
}

// Delete removes a ledger entry.
func (r *RiwayatRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM riwayat_jabatan WHERE id = $1`, id)
	if err != nil {
		return translateRiwayatPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return riwayat.ErrRiwayatNotFound
	}
	return nil
}

// FindByID fetches a ledger entry by id.
func (r *RiwayatRepository) FindByID(ctx context.Context, id string) (*riwayat.RiwayatJabatan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT`+riwayatColumns+`
          FROM riwayat_jabatan
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanRiwayat(row)
	if err != nil {
		return nil, translateRiwayatPgError(err)
	}
	return found, nil
}

// FindCurrentByPegawai fetches the entry with the latest TMT for an
// employee.
func (r *RiwayatRepository) FindCurrentByPegawai(ctx context.Context, pegawaiID string) (*riwayat.RiwayatJabatan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT`+riwayatColumns+`
          FROM riwayat_jabatan
         WHERE pegawai_id = $1
         ORDER BY tmt_jabatan DESC, created_at DESC
         LIMIT 1
    `, pegawaiID)

	found, err := scanRiwayat(row)
	if err != nil {
		return nil, translateRiwayatPgError(err)
	}
	return found, nil
}

// ListByPegawai fetches a page of ledger entries, newest TMT first.
func (r *RiwayatRepository) ListByPegawai(ctx context.Context, filter riwayat.ListRiwayatFilter) ([]*riwayat.RiwayatJabatan, string, error) {
	if filter.Limit <= 0 {
		return nil, "", riwayat.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", riwayat.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT`+riwayatColumns+`
          FROM riwayat_jabatan
         WHERE pegawai_id = $1
         ORDER BY tmt_jabatan DESC, created_at DESC
         LIMIT $2
        OFFSET $3
    `, filter.PegawaiID, limitWithBuffer, filter.Offset)
	if err != nil {
		return nil, "", translateRiwayatPgError(err)
	}
	defer rows.Close()

	entries := make([]*riwayat.RiwayatJabatan, 0, filter.Limit)
	for rows.Next() {
		entry, err := scanRiwayat(rows)
		if err != nil {
			return nil, "", translateRiwayatPgError(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateRiwayatPgError(err)
	}

	var nextToken string
	if len(entries) == limitWithBuffer {
		entries = entries[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return entries, nextToken, nil
}

func scanRiwayat(row pgx.Row) (*riwayat.RiwayatJabatan, error) {
	var (
		id              string
		pegawaiID       string
		jabatan         string
		jabatanTambahan sql.NullString
		unitKerja       string
		tmtJabatan      time.Time
		tmtBerakhir     sql.NullTime
		keterangan      sql.NullString
		createdAt       time.Time
		updatedAt       time.Time
	)

	if err := row.Scan(
		&id,
		&pegawaiID,
		&jabatan,
		&jabatanTambahan,
		&unitKerja,
		&tmtJabatan,
		&tmtBerakhir,
		&keterangan,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, riwayat.ErrRiwayatNotFound
		}
		return nil, err
	}

	var jabatanTambahanPtr *string
	if jabatanTambahan.Valid {
		v := jabatanTambahan.String
		jabatanTambahanPtr = &v
	}

	var tmtBerakhirPtr *time.Time
	if tmtBerakhir.Valid {
		d := dateOnly(tmtBerakhir.Time.UTC())
		tmtBerakhirPtr = &d
	}

	var keteranganPtr *string
	if keterangan.Valid {
		v := keterangan.String
		keteranganPtr = &v
	}

	return &riwayat.RiwayatJabatan{
		ID:              id,
		PegawaiID:       pegawaiID,
		Jabatan:         jabatan,
		JabatanTambahan: jabatanTambahanPtr,
		UnitKerja:       unitKerja,
		TMTJabatan:      dateOnly(tmtJabatan.UTC()),
		TMTBerakhir:     tmtBerakhirPtr,
		Keterangan:      keteranganPtr,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}

func translateRiwayatPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return riwayat.ErrRiwayatNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return riwayat.ErrPegawaiNotFound
		case checkViolationCode:
			return riwayat.ErrInvalidPeriode
		}
	}

	return err
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return dateOnly(*value)
}
