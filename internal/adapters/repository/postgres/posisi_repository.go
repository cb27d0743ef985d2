package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	pgdb "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const posisiColumns = `
        id,
        nama_posisi,
        unit_kerja,
        deskripsi,
        persyaratan,
        kuota,
        is_available,
        created_at,
        updated_at`

// PosisiRepository persists advertised open positions in PostgreSQL.
type PosisiRepository struct {
	pool pgdb.Queryer
}

// NewPosisiRepository creates a PosisiRepository.
func NewPosisiRepository(pool pgdb.Queryer) *PosisiRepository {
	return &PosisiRepository{pool: pool}
}

// Create inserts a new open position.
func (r *PosisiRepository) Create(ctx context.Context, p *posisi.PosisiTersedia) (*posisi.PosisiTersedia, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO posisi_tersedia (nama_posisi, unit_kerja, deskripsi, persyaratan, kuota, is_available, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING`+posisiColumns+`
    `,
		p.NamaPosisi,
		p.UnitKerja,
		nullableString(p.Deskripsi),
		nullableString(p.Persyaratan),
		p.Kuota,
		p.IsAvailable,
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanPosisi(row)
	if err != nil {
		return nil, translatePosisiPgError(err)
	}
	return created, nil
}

// Update rewrites an open position.
func (r *PosisiRepository) Update(ctx context.Context, p *posisi.PosisiTersedia) (*posisi.PosisiTersedia, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE posisi_tersedia
           SET nama_posisi = $1,
               unit_kerja = $2,
               deskripsi = $3,
               persyaratan = $4,
               kuota = $5,
               is_available = $6,
               updated_at = $7
         WHERE id = $8
        RETURNING`+posisiColumns+`
    `,
		p.NamaPosisi,
		p.UnitKerja,
		nullableString(p.Deskripsi),
		nullableString(p.Persyaratan),
		p.Kuota,
		p.IsAvailable,
		p.UpdatedAt,
		p.ID,
	)

	updated, err := scanPosisi(row)
	if err != nil {
		return nil, translatePosisiPgError(err)
	}
	return updated, nil
}

// FindByID fetches an open position by id.
func (r *PosisiRepository) FindByID(ctx context.Context, id string) (*posisi.PosisiTersedia, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT`+posisiColumns+`
          FROM posisi_tersedia
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanPosisi(row)
	if err != nil {
		return nil, translatePosisiPgError(err)
	}
	return found, nil
}

// List fetches a page of open positions.
func (r *PosisiRepository) List(ctx context.Context, filter posisi.ListPosisiFilter) ([]*posisi.PosisiTersedia, string, error) {
	if filter.Limit <= 0 {
		return nil, "", posisi.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", posisi.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 3)
	conditions := make([]string, 0, 2)

	if strings.TrimSpace(filter.UnitKerja) != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "unit_kerja = "+placeholder)
		args = append(args, strings.TrimSpace(filter.UnitKerja))
	}

	if filter.AvailableOnly {
		conditions = append(conditions, "is_available AND kuota > 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT` + posisiColumns + `
          FROM posisi_tersedia` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translatePosisiPgError(err)
	}
	defer rows.Close()

	positions := make([]*posisi.PosisiTersedia, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPosisi(rows)
		if err != nil {
			return nil, "", translatePosisiPgError(err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translatePosisiPgError(err)
	}

	var nextToken string
	if len(positions) == limitWithBuffer {
		positions = positions[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return positions, nextToken, nil
}

func scanPosisi(row pgx.Row) (*posisi.PosisiTersedia, error) {
	var (
		id          string
		namaPosisi  string
		unitKerja   string
		deskripsi   sql.NullString
		persyaratan sql.NullString
		kuota       int
		isAvailable bool
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(
		&id,
		&namaPosisi,
		&unitKerja,
		&deskripsi,
		&persyaratan,
		&kuota,
		&isAvailable,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, posisi.ErrPosisiNotFound
		}
		return nil, err
	}

	var deskripsiPtr *string
	if deskripsi.Valid {
		v := deskripsi.String
		deskripsiPtr = &v
	}

	var persyaratanPtr *string
	if persyaratan.Valid {
		v := persyaratan.String
		persyaratanPtr = &v
	}

	return &posisi.PosisiTersedia{
		ID:          id,
		NamaPosisi:  namaPosisi,
		UnitKerja:   unitKerja,
		Deskripsi:   deskripsiPtr,
		Persyaratan: persyaratanPtr,
		Kuota:       kuota,
		IsAvailable: isAvailable,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func translatePosisiPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return posisi.ErrPosisiNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == checkViolationCode {
			return posisi.ErrInvalidKuota
		}
	}

	return err
}
