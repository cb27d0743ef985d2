package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var riwayatRowColumns = []string{
	"id", "pegawai_id", "jabatan", "jabatan_tambahan", "unit_kerja",
	"tmt_jabatan", "tmt_berakhir", "keterangan", "created_at", "updated_at",
}

func TestScanRiwayat_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanRiwayat(row)
	if !errors.Is(err, riwayat.ErrRiwayatNotFound) {
		t.Fatalf("expected ErrRiwayatNotFound, got %v", err)
	}
}

func TestTranslateRiwayatPgError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateRiwayatPgError(fkErr), riwayat.ErrPegawaiNotFound) {
		t.Fatalf("expected fk violation to map to ErrPegawaiNotFound")
	}

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translateRiwayatPgError(checkErr), riwayat.ErrInvalidPeriode) {
		t.Fatalf("expected check violation to map to ErrInvalidPeriode")
	}
}

func TestRiwayatRepository_FindCurrentByPegawai(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRiwayatRepository(mock)
	now := time.Now().UTC()
	tmt := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        SELECT` + riwayatColumns + `
          FROM riwayat_jabatan
         WHERE pegawai_id = $1
         ORDER BY tmt_jabatan DESC, created_at DESC
         LIMIT 1
    `)

	mock.ExpectQuery(query).
		WithArgs("pegawai-1").
		WillReturnRows(pgxmock.NewRows(riwayatRowColumns).
			AddRow("riwayat-2", "pegawai-1", "Kepala Seksi", nil, "Dinas Pendidikan", tmt, nil, nil, now, now))

	current, err := repo.FindCurrentByPegawai(context.Background(), "pegawai-1")
	if err != nil {
		t.Fatalf("FindCurrentByPegawai returned error: %v", err)
	}

	if current.Jabatan != "Kepala Seksi" {
		t.Fatalf("unexpected jabatan: %s", current.Jabatan)
	}
	if current.TMTBerakhir != nil {
		t.Fatalf("expected open entry, got %+v", current.TMTBerakhir)
	}
	if !current.TMTJabatan.Equal(tmt) {
		t.Fatalf("unexpected tmt: %v", current.TMTJabatan)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRiwayatRepository_ListByPegawai_Paging(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewRiwayatRepository(mock)
	now := time.Now().UTC()
	older := time.Date(2018, 4, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        SELECT` + riwayatColumns + `
          FROM riwayat_jabatan
         WHERE pegawai_id = $1
         ORDER BY tmt_jabatan DESC, created_at DESC
         LIMIT $2
        OFFSET $3
    `)

	rows := pgxmock.NewRows(riwayatRowColumns).
		AddRow("riwayat-2", "pegawai-1", "Kepala Seksi", nil, "Dinas Pendidikan", newer, nil, nil, now, now).
		AddRow("riwayat-1", "pegawai-1", "Staf", nil, "Dinas Pendidikan", older, newer, nil, now, now)

	mock.ExpectQuery(query).
		WithArgs("pegawai-1", 3, 0).
		WillReturnRows(rows)

	entries, nextToken, err := repo.ListByPegawai(context.Background(), riwayat.ListRiwayatFilter{
		PegawaiID: "pegawai-1",
		Limit:     2,
		Offset:    0,
	})
	if err != nil {
		t.Fatalf("ListByPegawai returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}
	if entries[1].TMTBerakhir == nil || !entries[1].TMTBerakhir.Equal(newer) {
		t.Fatalf("expected closed prior entry, got %+v", entries[1].TMTBerakhir)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
