package posisi

import (
	"context"
	"errors"
	"fmt"
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

type fakePosisiRepo struct {
	posisi   map[string]*PosisiTersedia
	sequence int
	order    []string
}

func newFakePosisiRepo() *fakePosisiRepo {
	return &fakePosisiRepo{posisi: make(map[string]*PosisiTersedia)}
}

func clonePosisi(p *PosisiTersedia) *PosisiTersedia {
	clone := *p
	clone.Deskripsi = cloneString(p.Deskripsi)
	clone.Persyaratan = cloneString(p.Persyaratan)
	return &clone
}

func (r *fakePosisiRepo) Create(_ context.Context, p *PosisiTersedia) (*PosisiTersedia, error) {
	clone := clonePosisi(p)
	r.sequence++
	clone.ID = fmt.Sprintf("posisi-%d", r.sequence)
	r.posisi[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return clonePosisi(clone), nil
}

func (r *fakePosisiRepo) Update(_ context.Context, p *PosisiTersedia) (*PosisiTersedia, error) {
	if _, ok := r.posisi[p.ID]; !ok {
		return nil, ErrPosisiNotFound
	}
	r.posisi[p.ID] = clonePosisi(p)
	return clonePosisi(p), nil
}

func (r *fakePosisiRepo) FindByID(_ context.Context, id string) (*PosisiTersedia, error) {
	p, ok := r.posisi[id]
	if !ok {
		return nil, ErrPosisiNotFound
	}
	return clonePosisi(p), nil
}

func (r *fakePosisiRepo) List(_ context.Context, filter ListPosisiFilter) ([]*PosisiTersedia, string, error) {
	var filtered []*PosisiTersedia
	for _, id := range r.order {
		p := r.posisi[id]
		if p == nil {
			continue
		}
		if filter.UnitKerja != "" && p.UnitKerja != filter.UnitKerja {
			continue
		}
		if filter.AvailableOnly && (!p.IsAvailable || p.Kuota <= 0) {
			continue
		}
		filtered = append(filtered, clonePosisi(p))
	}

	if filter.Offset > len(filtered) {
		return []*PosisiTersedia{}, "", nil
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

func TestCreatePosisi_Defaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePosisiRepo())

	created, err := svc.CreatePosisi(context.Background(), CreatePosisiInput{
		NamaPosisi: "Kepala Seksi Mutasi",
		UnitKerja:  "BKPSDM Kota Bandung",
		Kuota:      2,
	})
	if err != nil {
		t.Fatalf("CreatePosisi returned error: %v", err)
	}

	if !created.IsAvailable {
		t.Fatal("new posisi should default to available")
	}
	if created.Kuota != 2 {
		t.Fatalf("unexpected kuota: %d", created.Kuota)
	}
}

func TestCreatePosisi_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePosisiRepo())
	ctx := context.Background()

	if _, err := svc.CreatePosisi(ctx, CreatePosisiInput{UnitKerja: "Dinas A", Kuota: 1}); !errors.Is(err, ErrInvalidNamaPosisi) {
		t.Fatalf("expected ErrInvalidNamaPosisi, got %v", err)
	}
	if _, err := svc.CreatePosisi(ctx, CreatePosisiInput{NamaPosisi: "Analis", Kuota: 1}); !errors.Is(err, ErrInvalidUnitKerja) {
		t.Fatalf("expected ErrInvalidUnitKerja, got %v", err)
	}
	if _, err := svc.CreatePosisi(ctx, CreatePosisiInput{NamaPosisi: "Analis", UnitKerja: "Dinas A", Kuota: 0}); !errors.Is(err, ErrInvalidKuota) {
		t.Fatalf("expected ErrInvalidKuota, got %v", err)
	}
}

func TestListPosisi_AvailableOnly(t *testing.T) {
	t.Parallel()

	repo := newFakePosisiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	open, err := svc.CreatePosisi(ctx, CreatePosisiInput{NamaPosisi: "Analis", UnitKerja: "Dinas A", Kuota: 1})
	if err != nil {
		t.Fatalf("CreatePosisi returned error: %v", err)
	}

	drained, err := svc.CreatePosisi(ctx, CreatePosisiInput{NamaPosisi: "Auditor", UnitKerja: "Dinas B", Kuota: 1})
	if err != nil {
		t.Fatalf("CreatePosisi returned error: %v", err)
	}
	zero := 0
	if _, err := svc.UpdatePosisi(ctx, UpdatePosisiInput{ID: drained.ID, Kuota: &zero}); err != nil {
		t.Fatalf("UpdatePosisi returned error: %v", err)
	}

	closed, err := svc.CreatePosisi(ctx, CreatePosisiInput{NamaPosisi: "Arsiparis", UnitKerja: "Dinas C", Kuota: 3})
	if err != nil {
		t.Fatalf("CreatePosisi returned error: %v", err)
	}
	if _, err := svc.DeactivatePosisi(ctx, DeactivatePosisiInput{ID: closed.ID}); err != nil {
		t.Fatalf("DeactivatePosisi returned error: %v", err)
	}

	result, err := svc.ListPosisi(ctx, ListPosisiInput{AvailableOnly: true})
	if err != nil {
		t.Fatalf("ListPosisi returned error: %v", err)
	}

	if len(result.Posisi) != 1 || result.Posisi[0].ID != open.ID {
		t.Fatalf("expected only the open posisi, got %+v", result.Posisi)
	}
}

func TestDeactivatePosisi_KeepsRow(t *testing.T) {
	t.Parallel()

	repo := newFakePosisiRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreatePosisi(ctx, CreatePosisiInput{NamaPosisi: "Analis", UnitKerja: "Dinas A", Kuota: 1})
	if err != nil {
		t.Fatalf("CreatePosisi returned error: %v", err)
	}

	deactivated, err := svc.DeactivatePosisi(ctx, DeactivatePosisiInput{ID: created.ID})
	if err != nil {
		t.Fatalf("DeactivatePosisi returned error: %v", err)
	}
	if deactivated.IsAvailable {
		t.Fatal("posisi should be unavailable after deactivation")
	}

	// Still retrievable for historical requests.
	found, err := svc.GetPosisi(ctx, GetPosisiInput{ID: created.ID})
	if err != nil {
		t.Fatalf("GetPosisi returned error: %v", err)
	}
	if found.NamaPosisi != "Analis" {
		t.Fatalf("unexpected posisi: %+v", found)
	}
}
