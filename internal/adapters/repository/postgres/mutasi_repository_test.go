package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var mutasiRowColumns = []string{
	"id", "pegawai_id", "unit_kerja_lama", "jabatan_lama", "unit_kerja_baru", "jabatan_baru",
	"tanggal_efektif", "alasan_mutasi", "status", "diajukan_oleh",
	"disetujui_oleh", "tanggal_disetujui", "catatan_persetujuan", "created_at", "updated_at",
}

func pendingMutasiRow(now time.Time) []any {
	return []any{
		"mutasi-1", "pegawai-1", "Dinas A", "Unit A", "Dinas B", "Unit B",
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "promotion", string(mutasi.StatusPending), "user-1",
		nil, nil, nil, now, now,
	}
}

func TestScanMutasi_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanMutasi(row)
	if !errors.Is(err, mutasi.ErrMutasiNotFound) {
		t.Fatalf("expected ErrMutasiNotFound, got %v", err)
	}
}

func TestTranslateMutasiPgError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateMutasiPgError(fkErr), mutasi.ErrPegawaiNotFound) {
		t.Fatalf("expected fk violation to map to ErrPegawaiNotFound")
	}

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translateMutasiPgError(checkErr), mutasi.ErrInvalidStatus) {
		t.Fatalf("expected check violation to map to ErrInvalidStatus")
	}
}

func TestMutasiRepository_List_ReturnsTotal(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewMutasiRepository(mock)
	now := time.Now().UTC()
	status := mutasi.StatusPending

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM mutasi WHERE status = $1`)).
		WithArgs(string(status)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	query := regexp.QuoteMeta(`
        SELECT` + mutasiColumns + `
          FROM mutasi WHERE status = $1
         ORDER BY created_at DESC, id DESC
         LIMIT $2
        OFFSET $3
    `)

	mock.ExpectQuery(query).
		WithArgs(string(status), 2, 0).
		WillReturnRows(pgxmock.NewRows(mutasiRowColumns).
			AddRow(pendingMutasiRow(now)...).
			AddRow(pendingMutasiRow(now)...))

	requests, total, err := repo.List(context.Background(), mutasi.ListMutasiFilter{
		Status: &status,
		Limit:  2,
		Offset: 0,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if total != 7 {
		t.Fatalf("expected total 7, got %d", total)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].TanggalDisetujui != nil {
		t.Fatalf("expected pending request, got %+v", requests[0].TanggalDisetujui)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMutasiRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewMutasiRepository(mock)
	now := time.Now().UTC()
	approver := "admin-1"

	query := regexp.QuoteMeta(`
        UPDATE mutasi
           SET status = $1,
               disetujui_oleh = $2,
               tanggal_disetujui = $3,
               catatan_persetujuan = $4,
               updated_at = $5
         WHERE id = $6
        RETURNING` + mutasiColumns + `
    `)

	mock.ExpectQuery(query).
		WithArgs(string(mutasi.StatusApproved), approver, now, nil, now, "mutasi-1").
		WillReturnRows(pgxmock.NewRows(mutasiRowColumns).
			AddRow("mutasi-1", "pegawai-1", "Dinas A", "Unit A", "Dinas B", "Unit B",
				time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "promotion", string(mutasi.StatusApproved), "user-1",
				approver, now, nil, now, now))

	updated, err := repo.UpdateStatus(context.Background(), &mutasi.Mutasi{
		ID:               "mutasi-1",
		Status:           mutasi.StatusApproved,
		DisetujuiOleh:    &approver,
		TanggalDisetujui: &now,
		UpdatedAt:        now,
	})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if updated.Status != mutasi.StatusApproved {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if updated.DisetujuiOleh == nil || *updated.DisetujuiOleh != approver {
		t.Fatalf("unexpected approver: %+v", updated.DisetujuiOleh)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
