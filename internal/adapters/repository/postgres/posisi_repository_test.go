package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var posisiRowColumns = []string{
	"id", "nama_posisi", "unit_kerja", "deskripsi", "persyaratan",
	"kuota", "is_available", "created_at", "updated_at",
}

func TestScanPosisi_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanPosisi(row)
	if !errors.Is(err, posisi.ErrPosisiNotFound) {
		t.Fatalf("expected ErrPosisiNotFound, got %v", err)
	}
}

func TestTranslatePosisiPgError(t *testing.T) {
	t.Parallel()

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translatePosisiPgError(checkErr), posisi.ErrInvalidKuota) {
		t.Fatalf("expected check violation to map to ErrInvalidKuota")
	}

	other := errors.New("other")
	if translatePosisiPgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestPosisiRepository_List_AvailableOnly(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPosisiRepository(mock)
	now := time.Now().UTC()

	query := regexp.QuoteMeta(`
        SELECT` + posisiColumns + `
          FROM posisi_tersedia WHERE unit_kerja = $1 AND is_available AND kuota > 0
         ORDER BY created_at DESC, id DESC
         LIMIT $2
        OFFSET $3
    `)

	rows := pgxmock.NewRows(posisiRowColumns).
		AddRow("posisi-1", "Analis Kepegawaian", "BKD", nil, nil, 2, true, now, now)

	mock.ExpectQuery(query).
		WithArgs("BKD", 11, 0).
		WillReturnRows(rows)

	positions, nextToken, err := repo.List(context.Background(), posisi.ListPosisiFilter{
		UnitKerja:     "BKD",
		AvailableOnly: true,
		Limit:         10,
		Offset:        0,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}
	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}
	if positions[0].Kuota != 2 {
		t.Fatalf("unexpected kuota: %d", positions[0].Kuota)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPosisiRepository_Update(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPosisiRepository(mock)
	now := time.Now().UTC()

	query := regexp.QuoteMeta(`
        UPDATE posisi_tersedia
           SET nama_posisi = $1,
               unit_kerja = $2,
               deskripsi = $3,
               persyaratan = $4,
               kuota = $5,
               is_available = $6,
               updated_at = $7
         WHERE id = $8
        RETURNING` + posisiColumns + `
    `)

	mock.ExpectQuery(query).
		WithArgs("Analis Kepegawaian", "BKD", nil, nil, 0, false, now, "posisi-1").
		WillReturnRows(pgxmock.NewRows(posisiRowColumns).
			AddRow("posisi-1", "Analis Kepegawaian", "BKD", nil, nil, 0, false, now, now))

	updated, err := repo.Update(context.Background(), &posisi.PosisiTersedia{
		ID:          "posisi-1",
		NamaPosisi:  "Analis Kepegawaian",
		UnitKerja:   "BKD",
		Kuota:       0,
		IsAvailable: false,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.IsAvailable {
		t.Fatal("expected position to be withdrawn")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
