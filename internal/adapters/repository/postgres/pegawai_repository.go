package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	pgdb "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const pegawaiColumns = `
        id,
        nip,
        nama,
        email,
        telepon,
        tanggal_lahir,
        jenis_kelamin,
        pendidikan,
        golongan_darah,
        provinsi_id,
        provinsi_nama,
        kota_id,
        kota_nama,
        kecamatan_id,
        kecamatan_nama,
        desa_id,
        desa_nama,
        alamat_detail,
        is_active,
        created_at,
        updated_at`

// PegawaiRepository persists employee records in PostgreSQL.
type PegawaiRepository struct {
	pool pgdb.Queryer
}

// NewPegawaiRepository creates a PegawaiRepository.
func NewPegawaiRepository(pool pgdb.Queryer) *PegawaiRepository {
	return &PegawaiRepository{pool: pool}
}

// Create inserts a new employee record.
func (r *PegawaiRepository) Create(ctx context.Context, p *pegawai.Pegawai) (*pegawai.Pegawai, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO pegawai (
            nip, nama, email, telepon, tanggal_lahir, jenis_kelamin, pendidikan, golongan_darah,
            provinsi_id, provinsi_nama, kota_id, kota_nama, kecamatan_id, kecamatan_nama, desa_id, desa_nama,
            alamat_detail, is_active, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
        RETURNING`+pegawaiColumns+`
    `,
		p.NIP,
		p.Nama,
		p.Email,
		nullableString(p.Telepon),
		dateOnly(p.TanggalLahir),
		string(p.JenisKelamin),
		string(p.Pendidikan),
		nullableGolonganDarah(p.GolonganDarah),
		p.Alamat.Provinsi.ID,
		p.Alamat.Provinsi.Nama,
		p.Alamat.Kota.ID,
		p.Alamat.Kota.Nama,
		p.Alamat.Kecamatan.ID,
		p.Alamat.Kecamatan.Nama,
		p.Alamat.Desa.ID,
		p.Alamat.Desa.Nama,
		p.Alamat.Detail,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanPegawai(row)
	if err != nil {
		return nil, translatePegawaiPgError(err)
	}
	return created, nil
}

// Update rewrites an employee record.
func (r *PegawaiRepository) Update(ctx context.Context, p *pegawai.Pegawai) (*pegawai.Pegawai, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE pegawai
           SET nama = $1,
               email = $2,
               telepon = $3,
               tanggal_lahir = $4,
               jenis_kelamin = $5,
               pendidikan = $6,
               golongan_darah = $7,
               provinsi_id = $8,
               provinsi_nama = $9,
               kota_id = $10,
               kota_nama = $11,
               kecamatan_id = $12,
               kecamatan_nama = $13,
               desa_id = $14,
               desa_nama = $15,
               alamat_detail = $16,
               is_active = $17,
               updated_at = $18
         WHERE id = $19
        RETURNING`+pegawaiColumns+`
    `,
		p.Nama,
		p.Email,
		nullableString(p.Telepon),
		dateOnly(p.TanggalLahir),
		string(p.JenisKelamin),
		string(p.Pendidikan),
		nullableGolonganDarah(p.GolonganDarah),
		p.Alamat.Provinsi.ID,
		p.Alamat.Provinsi.Nama,
		p.Alamat.Kota.ID,
		p.Alamat.Kota.Nama,
		p.Alamat.Kecamatan.ID,
		p.Alamat.Kecamatan.Nama,
		p.Alamat.Desa.ID,
		p.Alamat.Desa.Nama,
		p.Alamat.Detail,
		p.IsActive,
		p.UpdatedAt,
		p.ID,
	)

	updated, err := scanPegawai(row)
	if err != nil {
		return nil, translatePegawaiPgError(err)
	}
	return updated, nil
}

// Delete removes an employee record. The riwayat and mutasi rows of the
// employee cascade away with it.
func (r *PegawaiRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM pegawai WHERE id = $1`, id)
	if err != nil {
		return translatePegawaiPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return pegawai.ErrPegawaiNotFound
	}
	return nil
}

// FindByID fetches an employee record by id.
func (r *PegawaiRepository) FindByID(ctx context.Context, id string) (*pegawai.Pegawai, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT`+pegawaiColumns+`
          FROM pegawai
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanPegawai(row)
	if err != nil {
		return nil, translatePegawaiPgError(err)
	}
	return found, nil
}

// FindByNIP fetches an employee record by its service number.
func (r *PegawaiRepository) FindByNIP(ctx context.Context, nip string) (*pegawai.Pegawai, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT`+pegawaiColumns+`
          FROM pegawai
         WHERE nip = $1
         LIMIT 1
    `, nip)

	found, err := scanPegawai(row)
	if err != nil {
		return nil, translatePegawaiPgError(err)
	}
	return found, nil
}

// List fetches a page of employee records.
func (r *PegawaiRepository) List(ctx context.Context, filter pegawai.ListPegawaiFilter) ([]*pegawai.Pegawai, string, error) {
	if filter.Limit <= 0 {
		return nil, "", pegawai.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", pegawai.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 5)
	conditions := make([]string, 0, 3)

	if strings.TrimSpace(filter.Nama) != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "nama ILIKE "+placeholder)
		args = append(args, "%"+strings.TrimSpace(filter.Nama)+"%")
	}

	if strings.TrimSpace(filter.NIP) != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "nip = "+placeholder)
		args = append(args, strings.TrimSpace(filter.NIP))
	}

	if filter.IsActive != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "is_active = "+placeholder)
		args = append(args, *filter.IsActive)
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
        SELECT` + pegawaiColumns + `
          FROM pegawai` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translatePegawaiPgError(err)
	}
	defer rows.Close()

	records := make([]*pegawai.Pegawai, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPegawai(rows)
		if err != nil {
			return nil, "", translatePegawaiPgError(err)
		}
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translatePegawaiPgError(err)
	}

	var nextToken string
	if len(records) == limitWithBuffer {
		records = records[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return records, nextToken, nil
}

// FindActiveByTanggalLahirRange fetches active employees whose birth
// date falls inside [oldest, youngest].
func (r *PegawaiRepository) FindActiveByTanggalLahirRange(ctx context.Context, oldest, youngest time.Time) ([]*pegawai.Pegawai, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT`+pegawaiColumns+`
          FROM pegawai
         WHERE is_active
           AND tanggal_lahir BETWEEN $1 AND $2
         ORDER BY tanggal_lahir ASC, id ASC
    `, dateOnly(oldest), dateOnly(youngest))
	if err != nil {
		return nil, translatePegawaiPgError(err)
	}
	defer rows.Close()

	var records []*pegawai.Pegawai
	for rows.Next() {
		p, err := scanPegawai(rows)
		if err != nil {
			return nil, translatePegawaiPgError(err)
		}
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, translatePegawaiPgError(err)
	}

	return records, nil
}

func scanPegawai(row pgx.Row) (*pegawai.Pegawai, error) {
	var (
		id            string
		nip           string
		nama          string
		email         string
		telepon       sql.NullString
		tanggalLahir  time.Time
		jenisKelamin  string
		pendidikan    string
		golonganDarah sql.NullString
		provinsiID    string
		provinsiNama  string
		kotaID        string
		kotaNama      string
		kecamatanID   string
		kecamatanNama string
		desaID        string
		desaNama      string
		alamatDetail  string
		isActive      bool
		createdAt     time.Time
		updatedAt     time.Time
	)

	if err := row.Scan(
		&id,
		&nip,
		&nama,
		&email,
		&telepon,
		&tanggalLahir,
		&jenisKelamin,
		&pendidikan,
		&golonganDarah,
		&provinsiID,
		&provinsiNama,
		&kotaID,
		&kotaNama,
		&kecamatanID,
		&kecamatanNama,
		&desaID,
		&desaNama,
		&alamatDetail,
		&isActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pegawai.ErrPegawaiNotFound
		}
		return nil, err
	}

	var teleponPtr *string
	if telepon.Valid {
		v := telepon.String
		teleponPtr = &v
	}

	var golonganPtr *pegawai.GolonganDarah
	if golonganDarah.Valid {
		v := pegawai.GolonganDarah(golonganDarah.String)
		golonganPtr = &v
	}

	return &pegawai.Pegawai{
		ID:            id,
		NIP:           nip,
		Nama:          nama,
		Email:         email,
		Telepon:       teleponPtr,
		TanggalLahir:  dateOnly(tanggalLahir.UTC()),
		JenisKelamin:  pegawai.JenisKelamin(jenisKelamin),
		Pendidikan:    pegawai.Pendidikan(pendidikan),
		GolonganDarah: golonganPtr,
		Alamat: pegawai.Alamat{
			Provinsi:  pegawai.WilayahRef{ID: provinsiID, Nama: provinsiNama},
			Kota:      pegawai.WilayahRef{ID: kotaID, Nama: kotaNama},
			Kecamatan: pegawai.WilayahRef{ID: kecamatanID, Nama: kecamatanNama},
			Desa:      pegawai.WilayahRef{ID: desaID, Nama: desaNama},
			Detail:    alamatDetail,
		},
		IsActive:  isActive,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func translatePegawaiPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return pegawai.ErrPegawaiNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return pegawai.ErrNIPAlreadyExists
		case checkViolationCode:
			return pegawai.ErrInvalidTanggalLahir
		}
	}

	return err
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableGolonganDarah(value *pegawai.GolonganDarah) any {
	if value == nil {
		return nil
	}
	return string(*value)
}

func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
