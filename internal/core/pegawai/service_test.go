package pegawai

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakePegawaiRepo struct {
	pegawai  map[string]*Pegawai
	sequence int
	order    []string
}

func newFakePegawaiRepo() *fakePegawaiRepo {
	return &fakePegawaiRepo{pegawai: make(map[string]*Pegawai)}
}

func clonePegawai(p *Pegawai) *Pegawai {
	clone := *p
	clone.Telepon = cloneString(p.Telepon)
	clone.GolonganDarah = cloneGolonganDarah(p.GolonganDarah)
	return &clone
}

func (r *fakePegawaiRepo) Create(_ context.Context, p *Pegawai) (*Pegawai, error) {
	for _, existing := range r.pegawai {
		if existing.NIP == p.NIP {
			return nil, ErrNIPAlreadyExists
		}
	}

	clone := clonePegawai(p)
	r.sequence++
	clone.ID = fmt.Sprintf("pegawai-%d", r.sequence)
	r.pegawai[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return clonePegawai(clone), nil
}

func (r *fakePegawaiRepo) Update(_ context.Context, p *Pegawai) (*Pegawai, error) {
	if _, ok := r.pegawai[p.ID]; !ok {
		return nil, ErrPegawaiNotFound
	}
	r.pegawai[p.ID] = clonePegawai(p)
	return clonePegawai(p), nil
}

func (r *fakePegawaiRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.pegawai[id]; !ok {
		return ErrPegawaiNotFound
	}
	delete(r.pegawai, id)
	return nil
}

func (r *fakePegawaiRepo) FindByID(_ context.Context, id string) (*Pegawai, error) {
	p, ok := r.pegawai[id]
	if !ok {
		return nil, ErrPegawaiNotFound
	}
	return clonePegawai(p), nil
}

func (r *fakePegawaiRepo) FindByNIP(_ context.Context, nip string) (*Pegawai, error) {
	for _, p := range r.pegawai {
		if p.NIP == nip {
			return clonePegawai(p), nil
		}
	}
	return nil, ErrPegawaiNotFound
}

func (r *fakePegawaiRepo) List(_ context.Context, filter ListPegawaiFilter) ([]*Pegawai, string, error) {
	var filtered []*Pegawai
	for _, id := range r.order {
		p := r.pegawai[id]
		if p == nil {
			continue
		}
		if filter.Nama != "" && !strings.Contains(strings.ToLower(p.Nama), strings.ToLower(filter.Nama)) {
			continue
		}
		if filter.NIP != "" && p.NIP != filter.NIP {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		filtered = append(filtered, clonePegawai(p))
	}

	if filter.Offset > len(filtered) {
		return []*Pegawai{}, "", nil
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

func (r *fakePegawaiRepo) FindActiveByTanggalLahirRange(_ context.Context, oldest, youngest time.Time) ([]*Pegawai, error) {
	var result []*Pegawai
	for _, id := range r.order {
		p := r.pegawai[id]
		if p == nil || !p.IsActive {
			continue
		}
		if p.TanggalLahir.Before(oldest) || p.TanggalLahir.After(youngest) {
			continue
		}
		result = append(result, clonePegawai(p))
	}
	return result, nil
}

var testToday = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	return NewService(repo, &stubClock{now: testToday}, nil)
}

func validAlamat() Alamat {
	return Alamat{
		Provinsi:  WilayahRef{ID: "32", Nama: "Jawa Barat"},
		Kota:      WilayahRef{ID: "3204", Nama: "Kabupaten Bandung"},
		Kecamatan: WilayahRef{ID: "3204190", Nama: "Margahayu"},
		Desa:      WilayahRef{ID: "3204190003", Nama: "Sayati"},
		Detail:    "Jl. Terusan Kopo No. 12",
	}
}

func validCreateInput(nip string, lahir time.Time) CreatePegawaiInput {
	telepon := "081234567890"
	gol := GolonganDarahO
	return CreatePegawaiInput{
		NIP:           nip,
		Nama:          "Budi Santoso",
		Email:         "budi@bkpsdm.go.id",
		Telepon:       &telepon,
		TanggalLahir:  lahir,
		JenisKelamin:  JenisKelaminLakiLaki,
		Pendidikan:    PendidikanS1,
		GolonganDarah: &gol,
		Alamat:        validAlamat(),
	}
}

func TestCreatePegawai_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	in := validCreateInput("198001012005011001", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC))
	created, err := svc.CreatePegawai(ctx, in)
	if err != nil {
		t.Fatalf("CreatePegawai returned error: %v", err)
	}

	found, err := svc.GetPegawai(ctx, GetPegawaiInput{ID: created.ID})
	if err != nil {
		t.Fatalf("GetPegawai returned error: %v", err)
	}

	if !reflect.DeepEqual(found.Alamat, in.Alamat) {
		t.Fatalf("address did not round-trip: got %+v want %+v", found.Alamat, in.Alamat)
	}
	if found.NIP != in.NIP || found.Nama != in.Nama || found.Email != in.Email {
		t.Fatalf("fields did not round-trip: %+v", found)
	}
	if !found.IsActive {
		t.Fatal("new pegawai should default to active")
	}
}

func TestCreatePegawai_DuplicateNIP(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	lahir := time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreatePegawai(ctx, validCreateInput("198503102010011002", lahir)); err != nil {
		t.Fatalf("first CreatePegawai returned error: %v", err)
	}

	if _, err := svc.CreatePegawai(ctx, validCreateInput("198503102010011002", lahir)); !errors.Is(err, ErrNIPAlreadyExists) {
		t.Fatalf("expected ErrNIPAlreadyExists, got %v", err)
	}
}

func TestCreatePegawai_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	lahir := time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		mutate  func(*CreatePegawaiInput)
		wantErr error
	}{
		{"bad nip", func(in *CreatePegawaiInput) { in.NIP = "abc" }, ErrInvalidNIP},
		{"short nip", func(in *CreatePegawaiInput) { in.NIP = "19850310201001" }, ErrInvalidNIP},
		{"long nip", func(in *CreatePegawaiInput) { in.NIP = "1985031020100100019" }, ErrInvalidNIP},
		{"blank nama", func(in *CreatePegawaiInput) { in.Nama = "   " }, ErrInvalidNama},
		{"bad email", func(in *CreatePegawaiInput) { in.Email = "nope" }, ErrInvalidEmail},
		{"zero birth date", func(in *CreatePegawaiInput) { in.TanggalLahir = time.Time{} }, ErrInvalidTanggalLahir},
		{"bad jenis kelamin", func(in *CreatePegawaiInput) { in.JenisKelamin = "x" }, ErrInvalidJenisKelamin},
		{"bad pendidikan", func(in *CreatePegawaiInput) { in.Pendidikan = "phd" }, ErrInvalidPendidikan},
		{"bad golongan darah", func(in *CreatePegawaiInput) { g := GolonganDarah("z"); in.GolonganDarah = &g }, ErrInvalidGolonganDarah},
		{"missing desa", func(in *CreatePegawaiInput) { in.Alamat.Desa = WilayahRef{} }, ErrInvalidAlamat},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput(fmt.Sprintf("19850310201001%04d", i), lahir)
			tc.mutate(&in)
			if _, err := svc.CreatePegawai(ctx, in); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdatePegawai_PatchSemantics(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreatePegawai(ctx, validCreateInput("198001012005011001", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("CreatePegawai returned error: %v", err)
	}

	// A patch without TeleponSet must not touch the stored telepon.
	newNama := "Budi Santoso, S.Kom."
	updated, err := svc.UpdatePegawai(ctx, UpdatePegawaiInput{ID: created.ID, Nama: &newNama})
	if err != nil {
		t.Fatalf("UpdatePegawai returned error: %v", err)
	}
	if updated.Nama != newNama {
		t.Fatalf("nama not updated: %s", updated.Nama)
	}
	if updated.Telepon == nil || *updated.Telepon != "081234567890" {
		t.Fatalf("telepon should be untouched, got %+v", updated.Telepon)
	}

	// TeleponSet with nil clears the value.
	cleared, err := svc.UpdatePegawai(ctx, UpdatePegawaiInput{ID: created.ID, TeleponSet: true})
	if err != nil {
		t.Fatalf("UpdatePegawai (clear) returned error: %v", err)
	}
	if cleared.Telepon != nil {
		t.Fatalf("telepon should be cleared, got %+v", cleared.Telepon)
	}
}

func TestUpdatePegawai_NotFound(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)

	if _, err := svc.UpdatePegawai(context.Background(), UpdatePegawaiInput{ID: "missing"}); !errors.Is(err, ErrPegawaiNotFound) {
		t.Fatalf("expected ErrPegawaiNotFound, got %v", err)
	}
}

func TestListPegawai_Filters(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	first, err := svc.CreatePegawai(ctx, validCreateInput("198001012005011001", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("CreatePegawai returned error: %v", err)
	}

	in := validCreateInput("199002022015022002", time.Date(1990, 2, 2, 0, 0, 0, 0, time.UTC))
	in.Nama = "Siti Aminah"
	in.Email = "siti@bkpsdm.go.id"
	if _, err := svc.CreatePegawai(ctx, in); err != nil {
		t.Fatalf("CreatePegawai returned error: %v", err)
	}

	inactive := false
	if _, err := svc.UpdatePegawai(ctx, UpdatePegawaiInput{ID: first.ID, IsActive: &inactive}); err != nil {
		t.Fatalf("UpdatePegawai returned error: %v", err)
	}

	result, err := svc.ListPegawai(ctx, ListPegawaiInput{Nama: "siti"})
	if err != nil {
		t.Fatalf("ListPegawai returned error: %v", err)
	}
	if len(result.Pegawai) != 1 || result.Pegawai[0].Nama != "Siti Aminah" {
		t.Fatalf("nama filter failed: %+v", result.Pegawai)
	}

	active := true
	result, err = svc.ListPegawai(ctx, ListPegawaiInput{IsActive: &active})
	if err != nil {
		t.Fatalf("ListPegawai returned error: %v", err)
	}
	if len(result.Pegawai) != 1 || result.Pegawai[0].NIP != "199002022015022002" {
		t.Fatalf("active filter failed: %+v", result.Pegawai)
	}
}

func TestListMendekatiPensiun_Boundaries(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	// testToday is 2024-06-01.
	cases := []struct {
		nip   string
		lahir time.Time
		want  bool
	}{
		{"100000000000000058", testToday.AddDate(-58, 0, 0), true},  // 58 years old
		{"100000000000000056", testToday.AddDate(-56, 0, 0), true},  // exactly 56
		{"100000000000000060", testToday.AddDate(-60, 0, 0), true},  // exactly 60
		{"100000000000000030", testToday.AddDate(-30, 0, 0), false}, // too young
		{"100000000000000065", testToday.AddDate(-65, 0, 0), false}, // past retirement
	}

	for _, tc := range cases {
		if _, err := svc.CreatePegawai(ctx, validCreateInput(tc.nip, tc.lahir)); err != nil {
			t.Fatalf("CreatePegawai(%s) returned error: %v", tc.nip, err)
		}
	}

	result, err := svc.ListMendekatiPensiun(ctx)
	if err != nil {
		t.Fatalf("ListMendekatiPensiun returned error: %v", err)
	}

	got := make(map[string]bool, len(result))
	for _, p := range result {
		got[p.NIP] = true
	}

	for _, tc := range cases {
		if got[tc.nip] != tc.want {
			t.Errorf("nip %s: included=%v want %v", tc.nip, got[tc.nip], tc.want)
		}
	}
}

func TestListMendekatiPensiun_ExcludesInactive(t *testing.T) {
	t.Parallel()

	repo := newFakePegawaiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreatePegawai(ctx, validCreateInput("100000000000000158", testToday.AddDate(-58, 0, 0)))
	if err != nil {
		t.Fatalf("CreatePegawai returned error: %v", err)
	}

	inactive := false
	if _, err := svc.UpdatePegawai(ctx, UpdatePegawaiInput{ID: created.ID, IsActive: &inactive}); err != nil {
		t.Fatalf("UpdatePegawai returned error: %v", err)
	}

	result, err := svc.ListMendekatiPensiun(ctx)
	if err != nil {
		t.Fatalf("ListMendekatiPensiun returned error: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("inactive pegawai must be excluded, got %+v", result)
	}
}
