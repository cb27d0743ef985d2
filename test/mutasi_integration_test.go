//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	repo "github.com/bkpsdm/simpeg-grpc/internal/adapters/repository/postgres"
	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	"github.com/bkpsdm/simpeg-grpc/internal/platform/config"
	pg "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
)

const migrationsDir = "../assets/migrations"

// TestMutasiApprovalIntegration walks a transfer from submission to
// approval and asserts the three-way write against a real database:
// request status, position ledger and quota.
func TestMutasiApprovalIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	txManager := pg.NewTransactionManager(pool)

	pegawaiSvc := pegawai.NewService(repo.NewPegawaiRepository(pool), nil, txManager)
	riwayatSvc := riwayat.NewService(repo.NewRiwayatRepository(pool), nil, txManager)
	posisiSvc := posisi.NewService(repo.NewPosisiRepository(pool), nil, txManager)
	mutasiSvc := mutasi.NewService(
		repo.NewMutasiRepository(pool),
		repo.NewMutasiPegawaiDirectory(pool),
		repo.NewMutasiRiwayatLedger(pool),
		repo.NewMutasiPosisiRegistry(pool),
		nil,
		txManager,
	)

	employee, err := pegawaiSvc.CreatePegawai(ctx, pegawai.CreatePegawaiInput{
		NIP:          "199001012015011001",
		Nama:         "Budi Santoso",
		Email:        "budi@integration.test",
		TanggalLahir: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		JenisKelamin: pegawai.JenisKelaminLakiLaki,
		Pendidikan:   pegawai.PendidikanS1,
		Alamat: pegawai.Alamat{
			Provinsi:  pegawai.WilayahRef{ID: "32", Nama: "Jawa Barat"},
			Kota:      pegawai.WilayahRef{ID: "3273", Nama: "Kota Bandung"},
			Kecamatan: pegawai.WilayahRef{ID: "3273010", Nama: "Sukasari"},
			Desa:      pegawai.WilayahRef{ID: "3273010001", Nama: "Isola"},
		},
	})
	if err != nil {
		t.Fatalf("CreatePegawai error: %v", err)
	}

	opening, err := posisiSvc.CreatePosisi(ctx, posisi.CreatePosisiInput{
		NamaPosisi: "Kepala Seksi",
		UnitKerja:  "Dinas Kesehatan",
		Kuota:      1,
	})
	if err != nil {
		t.Fatalf("CreatePosisi error: %v", err)
	}

	request, err := mutasiSvc.CreateMutasi(ctx, mutasi.CreateMutasiInput{
		PegawaiID:      employee.ID,
		UnitKerjaLama:  "Dinas Pendidikan",
		JabatanLama:    "Staf",
		UnitKerjaBaru:  "Dinas Kesehatan",
		JabatanBaru:    "Kepala Seksi",
		TanggalEfektif: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		AlasanMutasi:   "promosi",
		DiajukanOleh:   "admin-1",
	})
	if err != nil {
		t.Fatalf("CreateMutasi error: %v", err)
	}
	if request.Status != mutasi.StatusPending {
		t.Fatalf("expected pending status, got %v", request.Status)
	}

	approved, err := mutasiSvc.UpdateMutasiStatus(ctx, mutasi.UpdateMutasiStatusInput{
		ID:            request.ID,
		Status:        mutasi.StatusApproved,
		DisetujuiOleh: "admin-2",
	})
	if err != nil {
		t.Fatalf("UpdateMutasiStatus error: %v", err)
	}
	if approved.Status != mutasi.StatusApproved {
		t.Fatalf("expected approved status, got %v", approved.Status)
	}
	if approved.TanggalDisetujui == nil {
		t.Fatal("expected a decision timestamp")
	}

	current, err := riwayatSvc.GetCurrentJabatan(ctx, employee.ID)
	if err != nil {
		t.Fatalf("GetCurrentJabatan error: %v", err)
	}
	if current.UnitKerja != "Dinas Kesehatan" || current.Jabatan != "Kepala Seksi" {
		t.Fatalf("ledger head does not reflect the transfer: %+v", current)
	}

	refreshed, err := posisiSvc.GetPosisi(ctx, posisi.GetPosisiInput{ID: opening.ID})
	if err != nil {
		t.Fatalf("GetPosisi error: %v", err)
	}
	if refreshed.Kuota != 0 {
		t.Fatalf("expected quota 0 after approval, got %d", refreshed.Kuota)
	}
	if refreshed.IsAvailable {
		t.Fatal("expected the position to close when its quota runs out")
	}

	// A second decision on the same request must be refused.
	if _, err := mutasiSvc.UpdateMutasiStatus(ctx, mutasi.UpdateMutasiStatusInput{
		ID:            request.ID,
		Status:        mutasi.StatusRejected,
		DisetujuiOleh: "admin-2",
	}); err == nil {
		t.Fatal("expected a terminal request to refuse a second decision")
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}
