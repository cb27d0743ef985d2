package riwayat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeRiwayatRepo struct {
	entries  map[string]*RiwayatJabatan
	sequence int
}

func newFakeRiwayatRepo() *fakeRiwayatRepo {
	return &fakeRiwayatRepo{entries: make(map[string]*RiwayatJabatan)}
}

func cloneEntry(r *RiwayatJabatan) *RiwayatJabatan {
	clone := *r
	clone.JabatanTambahan = cloneString(r.JabatanTambahan)
	clone.Keterangan = cloneString(r.Keterangan)
	if r.TMTBerakhir != nil {
		t := *r.TMTBerakhir
		clone.TMTBerakhir = &t
	}
	return &clone
}

func (f *fakeRiwayatRepo) Create(_ context.Context, r *RiwayatJabatan) (*RiwayatJabatan, error) {
	clone := cloneEntry(r)
	f.sequence++
	clone.ID = fmt.Sprintf("riwayat-%d", f.sequence)
	f.entries[clone.ID] = clone
	return cloneEntry(clone), nil
}

func (f *fakeRiwayatRepo) Update(_ context.Context, r *RiwayatJabatan) (*RiwayatJabatan, error) {
	if _, ok := f.entries[r.ID]; !ok {
		return nil, ErrRiwayatNotFound
	}
	f.entries[r.ID] = cloneEntry(r)
	return cloneEntry(r), nil
}

func (f *fakeRiwayatRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return ErrRiwayatNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeRiwayatRepo) FindByID(_ context.Context, id string) (*RiwayatJabatan, error) {
	r, ok := f.entries[id]
	if !ok {
		return nil, ErrRiwayatNotFound
	}
	return cloneEntry(r), nil
}

func (f *fakeRiwayatRepo) FindCurrentByPegawai(_ context.Context, pegawaiID string) (*RiwayatJabatan, error) {
	var current *RiwayatJabatan
	for _, r := range f.entries {
		if r.PegawaiID != pegawaiID {
			continue
		}
		if current == nil || r.TMTJabatan.After(current.TMTJabatan) {
			current = r
		}
	}
	if current == nil {
		return nil, ErrRiwayatNotFound
	}
	return cloneEntry(current), nil
}

func (f *fakeRiwayatRepo) ListByPegawai(_ context.Context, filter ListRiwayatFilter) ([]*RiwayatJabatan, string, error) {
	var filtered []*RiwayatJabatan
	for _, r := range f.entries {
		if r.PegawaiID == filter.PegawaiID {
			filtered = append(filtered, cloneEntry(r))
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].TMTJabatan.After(filtered[j].TMTJabatan)
	})

	if filter.Offset > len(filtered) {
		return []*RiwayatJabatan{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return filtered[filter.Offset:end], nextToken, nil
}

func newTestService(repo Repository) *Service {
	clock := &stubClock{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)}
	return NewService(repo, clock, nil)
}

func TestCreateRiwayat_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRiwayatRepo())
	ctx := context.Background()
	tmt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		in      CreateRiwayatInput
		wantErr error
	}{
		{"blank pegawai", CreateRiwayatInput{Jabatan: "Analis", UnitKerja: "Dinas A", TMTJabatan: tmt}, ErrInvalidPegawaiID},
		{"blank jabatan", CreateRiwayatInput{PegawaiID: "p-1", UnitKerja: "Dinas A", TMTJabatan: tmt}, ErrInvalidJabatan},
		{"blank unit", CreateRiwayatInput{PegawaiID: "p-1", Jabatan: "Analis", TMTJabatan: tmt}, ErrInvalidUnitKerja},
		{"zero tmt", CreateRiwayatInput{PegawaiID: "p-1", Jabatan: "Analis", UnitKerja: "Dinas A"}, ErrInvalidTMTJabatan},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateRiwayat(ctx, tc.in); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateRiwayat_PeriodeOrdering(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRiwayatRepo())
	ctx := context.Background()

	tmt := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	berakhir := tmt.AddDate(0, -1, 0)

	_, err := svc.CreateRiwayat(ctx, CreateRiwayatInput{
		PegawaiID:   "p-1",
		Jabatan:     "Analis Kepegawaian",
		UnitKerja:   "Dinas A",
		TMTJabatan:  tmt,
		TMTBerakhir: &berakhir,
	})
	if !errors.Is(err, ErrInvalidPeriode) {
		t.Fatalf("expected ErrInvalidPeriode, got %v", err)
	}
}

func TestGetCurrentJabatan_LatestTMTWins(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRiwayatRepo())
	ctx := context.Background()

	older := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.CreateRiwayat(ctx, CreateRiwayatInput{PegawaiID: "p-1", Jabatan: "Staf", UnitKerja: "Dinas A", TMTJabatan: older}); err != nil {
		t.Fatalf("CreateRiwayat returned error: %v", err)
	}
	if _, err := svc.CreateRiwayat(ctx, CreateRiwayatInput{PegawaiID: "p-1", Jabatan: "Kepala Seksi", UnitKerja: "Dinas B", TMTJabatan: newer}); err != nil {
		t.Fatalf("CreateRiwayat returned error: %v", err)
	}

	current, err := svc.GetCurrentJabatan(ctx, "p-1")
	if err != nil {
		t.Fatalf("GetCurrentJabatan returned error: %v", err)
	}
	if current.Jabatan != "Kepala Seksi" || current.UnitKerja != "Dinas B" {
		t.Fatalf("expected latest entry, got %+v", current)
	}
}

func TestGetCurrentJabatan_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRiwayatRepo())

	if _, err := svc.GetCurrentJabatan(context.Background(), "p-unknown"); !errors.Is(err, ErrRiwayatNotFound) {
		t.Fatalf("expected ErrRiwayatNotFound, got %v", err)
	}
}

func TestListRiwayatByPegawai_NewestFirst(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRiwayatRepo())
	ctx := context.Background()

	for year := 2015; year <= 2019; year++ {
		tmt := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		if _, err := svc.CreateRiwayat(ctx, CreateRiwayatInput{
			PegawaiID:  "p-1",
			Jabatan:    fmt.Sprintf("Jabatan %d", year),
			UnitKerja:  "Dinas A",
			TMTJabatan: tmt,
		}); err != nil {
			t.Fatalf("CreateRiwayat returned error: %v", err)
		}
	}

	result, err := svc.ListRiwayatByPegawai(ctx, ListRiwayatInput{PegawaiID: "p-1", PageSize: 3})
	if err != nil {
		t.Fatalf("ListRiwayatByPegawai returned error: %v", err)
	}

	if len(result.Riwayat) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result.Riwayat))
	}
	if result.Riwayat[0].Jabatan != "Jabatan 2019" {
		t.Fatalf("expected newest first, got %s", result.Riwayat[0].Jabatan)
	}
	if result.NextPageToken == "" {
		t.Fatal("expected a next page token")
	}
}

func TestUpdateRiwayat_ClosesEntry(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRiwayatRepo())
	ctx := context.Background()

	tmt := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateRiwayat(ctx, CreateRiwayatInput{PegawaiID: "p-1", Jabatan: "Staf", UnitKerja: "Dinas A", TMTJabatan: tmt})
	if err != nil {
		t.Fatalf("CreateRiwayat returned error: %v", err)
	}

	berakhir := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateRiwayat(ctx, UpdateRiwayatInput{ID: created.ID, TMTBerakhir: &berakhir, TMTBerakhirSet: true})
	if err != nil {
		t.Fatalf("UpdateRiwayat returned error: %v", err)
	}

	if updated.TMTBerakhir == nil || !updated.TMTBerakhir.Equal(berakhir) {
		t.Fatalf("expected closed entry, got %+v", updated.TMTBerakhir)
	}
}
