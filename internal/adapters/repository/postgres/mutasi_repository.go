package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	pgdb "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const mutasiColumns = `
        id,
        pegawai_id,
        unit_kerja_lama,
        jabatan_lama,
        unit_kerja_baru,
        jabatan_baru,
        tanggal_efektif,
        alasan_mutasi,
        status,
        diajukan_oleh,
        disetujui_oleh,
        tanggal_disetujui,
        catatan_persetujuan,
        created_at,
        updated_at`

// MutasiRepository persists transfer requests in PostgreSQL.
type MutasiRepository struct {
	pool pgdb.Queryer
}

// NewMutasiRepository creates a MutasiRepository.
func NewMutasiRepository(pool pgdb.Queryer) *MutasiRepository {
	return &MutasiRepository{pool: pool}
}

// Create inserts a new transfer request.
func (r *MutasiRepository) Create(ctx context.Context, m *mutasi.Mutasi) (*mutasi.Mutasi, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO mutasi (
            pegawai_id, unit_kerja_lama, jabatan_lama, unit_kerja_baru, jabatan_baru,
            tanggal_efektif, alasan_mutasi, status, diajukan_oleh, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING`+mutasiColumns+`
    `,
		m.PegawaiID,
		m.UnitKerjaLama,
		m.JabatanLama,
		m.UnitKerjaBaru,
		m.JabatanBaru,
		dateOnly(m.TanggalEfektif),
		m.AlasanMutasi,
		string(m.Status),
		m.DiajukanOleh,
		m.CreatedAt,
		m.UpdatedAt,
	)

	created, err := scanMutasi(row)
	if err != nil {
		return nil, translateMutasiPgError(err)
	}
	return created, nil
}

// UpdateStatus writes the decision fields of a transfer request.
func (r *MutasiRepository) UpdateStatus(ctx context.Context, m *mutasi.Mutasi) (*mutasi.Mutasi, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE mutasi
           SET status = $1,
               disetujui_oleh = $2,
               tanggal_disetujui = $3,
               catatan_persetujuan = $4,
               updated_at = $5
         WHERE id = $6
        RETURNING`+mutasiColumns+`
    `,
		string(m.Status),
		nullableString(m.DisetujuiOleh),
		nullableTimestamp(m.TanggalDisetujui),
		nullableString(m.CatatanPersetujuan),
		m.UpdatedAt,
		m.ID,
	)

	updated, err := scanMutasi(row)
	if err != nil {
		return nil, translateMutasiPgError(err)
	}
	return updated, nil
}

// Delete removes a transfer request.
func (r *MutasiRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM mutasi WHERE id = $1`, id)
	if err != nil {
		return translateMutasiPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return mutasi.ErrMutasiNotFound
	}
	return nil
}

// FindByID fetches a transfer request by id.
func (r *MutasiRepository) FindByID(ctx context.Context, id string) (*mutasi.Mutasi, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT`+mutasiColumns+`
          FROM mutasi
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanMutasi(row)
	if err != nil {
		return nil, translateMutasiPgError(err)
	}
	return found, nil
}

// List fetches a page of transfer requests plus the total count of
// requests matching the filter.
func (r *MutasiRepository) List(ctx context.Context, filter mutasi.ListMutasiFilter) ([]*mutasi.Mutasi, int, error) {
	if filter.Limit <= 0 {
		return nil, 0, mutasi.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, 0, mutasi.ErrInvalidPageToken
	}

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 2)

	if filter.PegawaiID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "pegawai_id = "+placeholder)
		args = append(args, *filter.PegawaiID)
	}

	if filter.Status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "status = "+placeholder)
		args = append(args, string(*filter.Status))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)

	var total int
	countRow := exec.QueryRow(ctx, `SELECT COUNT(*) FROM mutasi`+whereClause, args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, translateMutasiPgError(err)
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Limit)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT` + mutasiColumns + `
          FROM mutasi` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translateMutasiPgError(err)
	}
	defer rows.Close()

	requests := make([]*mutasi.Mutasi, 0, filter.Limit)
	for rows.Next() {
		m, err := scanMutasi(rows)
		if err != nil {
			return nil, 0, translateMutasiPgError(err)
		}
		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, translateMutasiPgError(err)
	}

	return requests, total, nil
}

func scanMutasi(row pgx.Row) (*mutasi.Mutasi, error) {
	var (
		id                 string
		pegawaiID          string
		unitKerjaLama      string
		jabatanLama        string
		unitKerjaBaru      string
		jabatanBaru        string
		tanggalEfektif     time.Time
		alasanMutasi       string
		status             string
		diajukanOleh       string
		disetujuiOleh      sql.NullString
		tanggalDisetujui   sql.NullTime
		catatanPersetujuan sql.NullString
		createdAt          time.Time
		updatedAt          time.Time
	)

	if err := row.Scan(
		&id,
		&pegawaiID,
		&unitKerjaLama,
		&jabatanLama,
		&unitKerjaBaru,
		&jabatanBaru,
		&tanggalEfektif,
		&alasanMutasi,
		&status,
		&diajukanOleh,
		&disetujuiOleh,
		&tanggalDisetujui,
		&catatanPersetujuan,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mutasi.ErrMutasiNotFound
		}
		return nil, err
	}

	var disetujuiPtr *string
	if disetujuiOleh.Valid {
		v := disetujuiOleh.String
		disetujuiPtr = &v
	}

	var tanggalDisetujuiPtr *time.Time
	if tanggalDisetujui.Valid {
		t := tanggalDisetujui.Time.UTC()
		tanggalDisetujuiPtr = &t
	}

	var catatanPtr *string
	if catatanPersetujuan.Valid {
		v := catatanPersetujuan.String
		catatanPtr = &v
	}

	return &mutasi.Mutasi{
		ID:                 id,
		PegawaiID:          pegawaiID,
		UnitKerjaLama:      unitKerjaLama,
		JabatanLama:        jabatanLama,
		UnitKerjaBaru:      unitKerjaBaru,
		JabatanBaru:        jabatanBaru,
		TanggalEfektif:     dateOnly(tanggalEfektif.UTC()),
		AlasanMutasi:       alasanMutasi,
		Status:             mutasi.Status(status),
		DiajukanOleh:       diajukanOleh,
		DisetujuiOleh:      disetujuiPtr,
		TanggalDisetujui:   tanggalDisetujuiPtr,
		CatatanPersetujuan: catatanPtr,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

func translateMutasiPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return mutasi.ErrMutasiNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return mutasi.ErrPegawaiNotFound
		case checkViolationCode:
			return mutasi.ErrInvalidStatus
		}
	}

	return err
}

func nullableTimestamp(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}
