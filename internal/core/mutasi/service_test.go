package mutasi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeMutasiRepo struct {
	requests map[string]*Mutasi
	sequence int
}

func newFakeMutasiRepo() *fakeMutasiRepo {
	return &fakeMutasiRepo{requests: make(map[string]*Mutasi)}
}

func cloneMutasi(m *Mutasi) *Mutasi {
	clone := *m
	clone.DisetujuiOleh = cloneString(m.DisetujuiOleh)
	clone.CatatanPersetujuan = cloneString(m.CatatanPersetujuan)
	if m.TanggalDisetujui != nil {
		t := *m.TanggalDisetujui
		clone.TanggalDisetujui = &t
	}
	return &clone
}

func (r *fakeMutasiRepo) Create(_ context.Context, m *Mutasi) (*Mutasi, error) {
	clone := cloneMutasi(m)
	r.sequence++
	clone.ID = fmt.Sprintf("mutasi-%d", r.sequence)
	r.requests[clone.ID] = clone
	return cloneMutasi(clone), nil
}

func (r *fakeMutasiRepo) UpdateStatus(_ context.Context, m *Mutasi) (*Mutasi, error) {
	if _, ok := r.requests[m.ID]; !ok {
		return nil, ErrMutasiNotFound
	}
	r.requests[m.ID] = cloneMutasi(m)
	return cloneMutasi(m), nil
}

func (r *fakeMutasiRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.requests[id]; !ok {
		return ErrMutasiNotFound
	}
	delete(r.requests, id)
	return nil
}

func (r *fakeMutasiRepo) FindByID(_ context.Context, id string) (*Mutasi, error) {
	m, ok := r.requests[id]
	if !ok {
		return nil, ErrMutasiNotFound
	}
	return cloneMutasi(m), nil
}

func (r *fakeMutasiRepo) List(_ context.Context, filter ListMutasiFilter) ([]*Mutasi, int, error) {
	var filtered []*Mutasi
	for _, m := range r.requests {
		if filter.PegawaiID != nil && m.PegawaiID != *filter.PegawaiID {
			continue
		}
		if filter.Status != nil && m.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, cloneMutasi(m))
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].ID > filtered[j].ID
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	if filter.Offset > total {
		return []*Mutasi{}, total, nil
	}

	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}

	return filtered[filter.Offset:end], total, nil
}

type fakeDirectory struct {
	known map[string]bool
}

func (d *fakeDirectory) EnsureExists(_ context.Context, pegawaiID string) error {
	if !d.known[pegawaiID] {
		return ErrPegawaiNotFound
	}
	return nil
}

type ledgerRecord struct {
	entry LedgerEntry
}

type fakeLedger struct {
	closed  map[string][]time.Time
	entries []ledgerRecord
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{closed: make(map[string][]time.Time)}
}

func (l *fakeLedger) CloseCurrent(_ context.Context, pegawaiID string, endDate time.Time) error {
	l.closed[pegawaiID] = append(l.closed[pegawaiID], endDate)
	return nil
}

func (l *fakeLedger) Append(_ context.Context, entry LedgerEntry) error {
	l.entries = append(l.entries, ledgerRecord{entry: entry})
	return nil
}

func (l *fakeLedger) countFor(pegawaiID string) int {
	n := 0
	for _, rec := range l.entries {
		if rec.entry.PegawaiID == pegawaiID {
			n++
		}
	}
	return n
}

type fakeRegistry struct {
	kuota map[string]int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{kuota: make(map[string]int)}
}

func registryKey(unitKerja, namaPosisi string) string {
	return unitKerja + "|" + namaPosisi
}

func (r *fakeRegistry) DecrementKuota(_ context.Context, unitKerja, namaPosisi string) (bool, error) {
	key := registryKey(unitKerja, namaPosisi)
	remaining, ok := r.kuota[key]
	if !ok {
		return false, nil
	}
	if remaining <= 0 {
		return true, ErrKuotaHabis
	}
	r.kuota[key] = remaining - 1
	return true, nil
}

type workflowFixture struct {
	svc      *Service
	repo     *fakeMutasiRepo
	ledger   *fakeLedger
	registry *fakeRegistry
	clock    *stubClock
}

func newWorkflowFixture(knownPegawai ...string) *workflowFixture {
	repo := newFakeMutasiRepo()
	ledger := newFakeLedger()
	registry := newFakeRegistry()
	known := make(map[string]bool, len(knownPegawai))
	for _, id := range knownPegawai {
		known[id] = true
	}
	clock := &stubClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}

	return &workflowFixture{
		svc:      NewService(repo, &fakeDirectory{known: known}, ledger, registry, clock, nil),
		repo:     repo,
		ledger:   ledger,
		registry: registry,
		clock:    clock,
	}
}

func validRequest(pegawaiID string) CreateMutasiInput {
	return CreateMutasiInput{
		PegawaiID:      pegawaiID,
		UnitKerjaLama:  "Dinas A",
		JabatanLama:    "Unit A",
		UnitKerjaBaru:  "Dinas B",
		JabatanBaru:    "Unit B",
		TanggalEfektif: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		AlasanMutasi:   "promotion",
		DiajukanOleh:   "user-1",
	}
}

func TestCreateMutasi_Pending(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")

	created, err := f.svc.CreateMutasi(context.Background(), validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	if created.Status != StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.TanggalDisetujui != nil || created.DisetujuiOleh != nil || created.CatatanPersetujuan != nil {
		t.Fatalf("approval fields must start null: %+v", created)
	}
	if len(f.ledger.entries) != 0 {
		t.Fatal("creation must not touch the ledger")
	}
}

func TestCreateMutasi_UnknownPegawai(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")

	if _, err := f.svc.CreateMutasi(context.Background(), validRequest("pegawai-99")); !errors.Is(err, ErrPegawaiNotFound) {
		t.Fatalf("expected ErrPegawaiNotFound, got %v", err)
	}
}

func TestCreateMutasi_Validation(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*CreateMutasiInput)
		wantErr error
	}{
		{"blank unit lama", func(in *CreateMutasiInput) { in.UnitKerjaLama = " " }, ErrInvalidUnitKerja},
		{"blank jabatan lama", func(in *CreateMutasiInput) { in.JabatanLama = "" }, ErrInvalidJabatan},
		{"blank unit baru", func(in *CreateMutasiInput) { in.UnitKerjaBaru = "" }, ErrInvalidUnitKerja},
		{"blank jabatan baru", func(in *CreateMutasiInput) { in.JabatanBaru = "" }, ErrInvalidJabatan},
		{"blank alasan", func(in *CreateMutasiInput) { in.AlasanMutasi = "  " }, ErrInvalidAlasan},
		{"zero tanggal efektif", func(in *CreateMutasiInput) { in.TanggalEfektif = time.Time{} }, ErrInvalidTanggalEfektif},
		{"blank diajukan oleh", func(in *CreateMutasiInput) { in.DiajukanOleh = "" }, ErrInvalidDiajukanOleh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRequest("pegawai-1")
			tc.mutate(&in)
			if _, err := f.svc.CreateMutasi(ctx, in); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdateMutasiStatus_ApprovePromotion(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()
	f.registry.kuota[registryKey("Dinas B", "Unit B")] = 2

	created, err := f.svc.CreateMutasi(ctx, validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	catatan := "disetujui kepala dinas"
	approved, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{
		ID:                 created.ID,
		Status:             StatusApproved,
		DisetujuiOleh:      "admin-1",
		CatatanPersetujuan: &catatan,
	})
	if err != nil {
		t.Fatalf("UpdateMutasiStatus returned error: %v", err)
	}

	if approved.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
	if approved.TanggalDisetujui == nil {
		t.Fatal("expected a non-nil approval timestamp")
	}
	if approved.DisetujuiOleh == nil || *approved.DisetujuiOleh != "admin-1" {
		t.Fatalf("unexpected approver: %+v", approved.DisetujuiOleh)
	}

	// Exactly one ledger entry with the destination snapshot.
	if got := f.ledger.countFor("pegawai-1"); got != 1 {
		t.Fatalf("expected exactly 1 ledger entry, got %d", got)
	}
	entry := f.ledger.entries[0].entry
	if entry.UnitKerja != "Dinas B" || entry.Jabatan != "Unit B" {
		t.Fatalf("ledger entry does not match destination: %+v", entry)
	}
	if !entry.TMTJabatan.Equal(created.TanggalEfektif) {
		t.Fatalf("ledger TMT should be the effective date, got %v", entry.TMTJabatan)
	}

	// The prior current entry is closed at the effective date.
	if closed := f.ledger.closed["pegawai-1"]; len(closed) != 1 || !closed[0].Equal(created.TanggalEfektif) {
		t.Fatalf("expected prior entry closed at effective date, got %+v", closed)
	}

	// Kuota decremented by exactly one.
	if got := f.registry.kuota[registryKey("Dinas B", "Unit B")]; got != 1 {
		t.Fatalf("expected kuota 1, got %d", got)
	}
}

func TestUpdateMutasiStatus_RejectHasNoSideEffects(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()
	f.registry.kuota[registryKey("Dinas B", "Unit B")] = 2

	created, err := f.svc.CreateMutasi(ctx, validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	rejected, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{
		ID:            created.ID,
		Status:        StatusRejected,
		DisetujuiOleh: "admin-1",
	})
	if err != nil {
		t.Fatalf("UpdateMutasiStatus returned error: %v", err)
	}

	if rejected.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if rejected.TanggalDisetujui == nil {
		t.Fatal("rejection still records the decision timestamp")
	}
	if len(f.ledger.entries) != 0 {
		t.Fatal("rejection must not append to the ledger")
	}
	if got := f.registry.kuota[registryKey("Dinas B", "Unit B")]; got != 2 {
		t.Fatalf("rejection must not touch kuota, got %d", got)
	}
}

func TestUpdateMutasiStatus_TerminalIsFinal(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()

	created, err := f.svc.CreateMutasi(ctx, validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	if _, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{ID: created.ID, Status: StatusRejected, DisetujuiOleh: "admin-1"}); err != nil {
		t.Fatalf("UpdateMutasiStatus returned error: %v", err)
	}

	if _, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{ID: created.ID, Status: StatusApproved, DisetujuiOleh: "admin-1"}); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed on re-decision, got %v", err)
	}

	if err := f.svc.DeleteMutasi(ctx, DeleteMutasiInput{ID: created.ID}); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed on delete, got %v", err)
	}
}

func TestUpdateMutasiStatus_KuotaExhaustedBlocksApproval(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()
	f.registry.kuota[registryKey("Dinas B", "Unit B")] = 0

	created, err := f.svc.CreateMutasi(ctx, validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	if _, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{ID: created.ID, Status: StatusApproved, DisetujuiOleh: "admin-1"}); !errors.Is(err, ErrKuotaHabis) {
		t.Fatalf("expected ErrKuotaHabis, got %v", err)
	}

	// No underflow and the stored request is still pending.
	if got := f.registry.kuota[registryKey("Dinas B", "Unit B")]; got != 0 {
		t.Fatalf("kuota must not underflow, got %d", got)
	}
	stored, err := f.repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Status != StatusPending {
		t.Fatalf("blocked approval must leave the request pending, got %s", stored.Status)
	}
}

func TestUpdateMutasiStatus_NoMatchingPosisiStillApproves(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()

	created, err := f.svc.CreateMutasi(ctx, validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	approved, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{ID: created.ID, Status: StatusApproved, DisetujuiOleh: "admin-1"})
	if err != nil {
		t.Fatalf("UpdateMutasiStatus returned error: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
	if got := f.ledger.countFor("pegawai-1"); got != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", got)
	}
}

func TestUpdateMutasiStatus_NotFoundAndInvalidStatus(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()

	if _, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{ID: "missing", Status: StatusApproved, DisetujuiOleh: "admin-1"}); !errors.Is(err, ErrMutasiNotFound) {
		t.Fatalf("expected ErrMutasiNotFound, got %v", err)
	}

	if _, err := f.svc.UpdateMutasiStatus(ctx, UpdateMutasiStatusInput{ID: "whatever", Status: StatusPending, DisetujuiOleh: "admin-1"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for pending target, got %v", err)
	}
}

func TestDeleteMutasi_PendingOnly(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1")
	ctx := context.Background()

	created, err := f.svc.CreateMutasi(ctx, validRequest("pegawai-1"))
	if err != nil {
		t.Fatalf("CreateMutasi returned error: %v", err)
	}

	if err := f.svc.DeleteMutasi(ctx, DeleteMutasiInput{ID: created.ID}); err != nil {
		t.Fatalf("DeleteMutasi returned error: %v", err)
	}

	if _, err := f.svc.GetMutasi(ctx, GetMutasiInput{ID: created.ID}); !errors.Is(err, ErrMutasiNotFound) {
		t.Fatalf("expected ErrMutasiNotFound after delete, got %v", err)
	}
}

func TestListMutasi_FiltersAndTotal(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture("pegawai-1", "pegawai-2")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f.clock.now = f.clock.now.Add(time.Minute)
		in := validRequest("pegawai-1")
		if i == 2 {
			in.PegawaiID = "pegawai-2"
		}
		if _, err := f.svc.CreateMutasi(ctx, in); err != nil {
			t.Fatalf("CreateMutasi returned error: %v", err)
		}
	}

	pegawaiID := "pegawai-1"
	result, err := f.svc.ListMutasi(ctx, ListMutasiInput{PegawaiID: &pegawaiID, PageSize: 1})
	if err != nil {
		t.Fatalf("ListMutasi returned error: %v", err)
	}

	if result.Total != 2 {
		t.Fatalf("expected total 2, got %d", result.Total)
	}
	if len(result.Mutasi) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Mutasi))
	}
	if result.NextPageToken == "" {
		t.Fatal("expected a next page token")
	}

	status := StatusPending
	all, err := f.svc.ListMutasi(ctx, ListMutasiInput{Status: &status, PageSize: 10})
	if err != nil {
		t.Fatalf("ListMutasi returned error: %v", err)
	}
	if all.Total != 3 {
		t.Fatalf("expected total 3 pending, got %d", all.Total)
	}
	// Newest first.
	for i := 1; i < len(all.Mutasi); i++ {
		if all.Mutasi[i].CreatedAt.After(all.Mutasi[i-1].CreatedAt) {
			t.Fatal("expected newest-first ordering")
		}
	}
}
