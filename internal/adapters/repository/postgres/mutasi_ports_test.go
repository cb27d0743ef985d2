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

func TestMutasiPegawaiDirectory_EnsureExists(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	dir := NewMutasiPegawaiDirectory(mock)
	query := regexp.QuoteMeta(`SELECT 1 FROM pegawai WHERE id = $1`)

	mock.ExpectQuery(query).
		WithArgs("pegawai-1").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	if err := dir.EnsureExists(context.Background(), "pegawai-1"); err != nil {
		t.Fatalf("EnsureExists returned error: %v", err)
	}

	mock.ExpectQuery(query).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	if err := dir.EnsureExists(context.Background(), "missing"); !errors.Is(err, mutasi.ErrPegawaiNotFound) {
		t.Fatalf("expected ErrPegawaiNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMutasiRiwayatLedger_CloseCurrent(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ledger := NewMutasiRiwayatLedger(mock)
	endDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
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
    `)

	mock.ExpectExec(query).
		WithArgs(endDate, "pegawai-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := ledger.CloseCurrent(context.Background(), "pegawai-1", endDate); err != nil {
		t.Fatalf("CloseCurrent returned error: %v", err)
	}

	// No open entry is not an error.
	mock.ExpectExec(query).
		WithArgs(endDate, "pegawai-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := ledger.CloseCurrent(context.Background(), "pegawai-2", endDate); err != nil {
		t.Fatalf("CloseCurrent returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMutasiRiwayatLedger_CloseCurrent_PeriodeViolation(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ledger := NewMutasiRiwayatLedger(mock)

	// An effective date before the open entry's TMT violates the
	// ledger's period constraint.
	endDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE riwayat_jabatan").
		WithArgs(endDate, "pegawai-1").
		WillReturnError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "riwayat_jabatan_periode_check"})

	if err := ledger.CloseCurrent(context.Background(), "pegawai-1", endDate); !errors.Is(err, mutasi.ErrInvalidTanggalEfektif) {
		t.Fatalf("expected ErrInvalidTanggalEfektif, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMutasiRiwayatLedger_Append_MissingPegawai(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ledger := NewMutasiRiwayatLedger(mock)

	mock.ExpectExec("INSERT INTO riwayat_jabatan").
		WithArgs("pegawai-gone", "Kepala Seksi", "Dinas Kesehatan", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), nil).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	err = ledger.Append(context.Background(), mutasi.LedgerEntry{
		PegawaiID:  "pegawai-gone",
		Jabatan:    "Kepala Seksi",
		UnitKerja:  "Dinas Kesehatan",
		TMTJabatan: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, mutasi.ErrPegawaiNotFound) {
		t.Fatalf("expected ErrPegawaiNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMutasiPosisiRegistry_DecrementKuota(t *testing.T) {
	t.Parallel()

	updateQuery := regexp.QuoteMeta(`
        UPDATE posisi_tersedia
           SET kuota = kuota - 1,
               is_available = (kuota - 1 > 0),
               updated_at = NOW()
         WHERE unit_kerja = $1
           AND nama_posisi = $2
           AND is_available
           AND kuota > 0
    `)
	probeQuery := regexp.QuoteMeta(`
        SELECT 1
          FROM posisi_tersedia
         WHERE unit_kerja = $1
           AND nama_posisi = $2
           AND is_available
         LIMIT 1
    `)

	t.Run("decrements when a slot remains", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock pool: %v", err)
		}
		defer mock.Close()

		registry := NewMutasiPosisiRegistry(mock)

		mock.ExpectExec(updateQuery).
			WithArgs("Dinas B", "Unit B").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		found, err := registry.DecrementKuota(context.Background(), "Dinas B", "Unit B")
		if err != nil {
			t.Fatalf("DecrementKuota returned error: %v", err)
		}
		if !found {
			t.Fatal("expected the position to be found")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("reports kuota habis on an exhausted position", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock pool: %v", err)
		}
		defer mock.Close()

		registry := NewMutasiPosisiRegistry(mock)

		mock.ExpectExec(updateQuery).
			WithArgs("Dinas B", "Unit B").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(probeQuery).
			WithArgs("Dinas B", "Unit B").
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

		found, err := registry.DecrementKuota(context.Background(), "Dinas B", "Unit B")
		if !errors.Is(err, mutasi.ErrKuotaHabis) {
			t.Fatalf("expected ErrKuotaHabis, got %v", err)
		}
		if !found {
			t.Fatal("expected the position to be found")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("skips when no position matches", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("failed to create mock pool: %v", err)
		}
		defer mock.Close()

		registry := NewMutasiPosisiRegistry(mock)

		mock.ExpectExec(updateQuery).
			WithArgs("Dinas X", "Unit X").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(probeQuery).
			WithArgs("Dinas X", "Unit X").
			WillReturnError(pgx.ErrNoRows)

		found, err := registry.DecrementKuota(context.Background(), "Dinas X", "Unit X")
		if err != nil {
			t.Fatalf("DecrementKuota returned error: %v", err)
		}
		if found {
			t.Fatal("expected no matching position")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}
