package mutasi

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager abstracts transaction control.
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service implements the transfer workflow. Approval is the only
// operation in the system that writes to more than one aggregate; the
// status change, the ledger append and the kuota decrement happen
// inside a single read-write transaction.
type Service struct {
	repo    Repository
	pegawai PegawaiDirectory
	ledger  RiwayatLedger
	posisi  PosisiRegistry
	clock   Clock
	tx      TransactionManager
}

// UseCase is the public interface of the transfer workflow.
type UseCase interface {
	CreateMutasi(ctx context.Context, in CreateMutasiInput) (*Mutasi, error)
	GetMutasi(ctx context.Context, in GetMutasiInput) (*Mutasi, error)
	ListMutasi(ctx context.Context, in ListMutasiInput) (*ListMutasiResult, error)
	UpdateMutasiStatus(ctx context.Context, in UpdateMutasiStatusInput) (*Mutasi, error)
	DeleteMutasi(ctx context.Context, in DeleteMutasiInput) error
}

// NewService creates a Service.
func NewService(repo Repository, pegawai PegawaiDirectory, ledger RiwayatLedger, posisi PosisiRegistry, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, pegawai: pegawai, ledger: ledger, posisi: posisi, clock: clock, tx: tx}
}

// CreateMutasiInput is the input for submitting a transfer request.
type CreateMutasiInput struct {
	PegawaiID      string
	UnitKerjaLama  string
	JabatanLama    string
	UnitKerjaBaru  string
	JabatanBaru    string
	TanggalEfektif time.Time
	AlasanMutasi   string
	DiajukanOleh   string
}

// GetMutasiInput is the input for request retrieval.
type GetMutasiInput struct {
	ID string
}

// ListMutasiInput is the input for request listing.
type ListMutasiInput struct {
	PegawaiID *string
	Status    *Status
	PageSize  int
	PageToken string
}

// ListMutasiResult is the result of a request listing. Total counts
// every request matching the filter, not just the returned page.
type ListMutasiResult struct {
	Mutasi        []*Mutasi
	Total         int
	NextPageToken string
}

// UpdateMutasiStatusInput is the input for the admin decision.
type UpdateMutasiStatusInput struct {
	ID                 string
	Status             Status
	DisetujuiOleh      string
	CatatanPersetujuan *string
}

// DeleteMutasiInput is the input for withdrawing a pending request.
type DeleteMutasiInput struct {
	ID string
}

// CreateMutasi submits a new transfer request in the pending state.
// It has no side effects on any other aggregate.
func (s *Service) CreateMutasi(ctx context.Context, in CreateMutasiInput) (*Mutasi, error) {
	pegawaiID, err := normalizeRequired(in.PegawaiID, ErrInvalidPegawaiID)
	if err != nil {
		return nil, err
	}

	unitLama, err := normalizeRequired(in.UnitKerjaLama, ErrInvalidUnitKerja)
	if err != nil {
		return nil, err
	}

	jabatanLama, err := normalizeRequired(in.JabatanLama, ErrInvalidJabatan)
	if err != nil {
		return nil, err
	}

	unitBaru, err := normalizeRequired(in.UnitKerjaBaru, ErrInvalidUnitKerja)
	if err != nil {
		return nil, err
	}

	jabatanBaru, err := normalizeRequired(in.JabatanBaru, ErrInvalidJabatan)
	if err != nil {
		return nil, err
	}

	alasan, err := normalizeRequired(in.AlasanMutasi, ErrInvalidAlasan)
	if err != nil {
		return nil, err
	}

	diajukanOleh, err := normalizeRequired(in.DiajukanOleh, ErrInvalidDiajukanOleh)
	if err != nil {
		return nil, err
	}

	if in.TanggalEfektif.IsZero() {
		return nil, ErrInvalidTanggalEfektif
	}

	var created *Mutasi
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.pegawai.EnsureExists(txCtx, pegawaiID); err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Mutasi{
			PegawaiID:      pegawaiID,
			UnitKerjaLama:  unitLama,
			JabatanLama:    jabatanLama,
			UnitKerjaBaru:  unitBaru,
			JabatanBaru:    jabatanBaru,
			TanggalEfektif: normalizeDate(in.TanggalEfektif),
			AlasanMutasi:   alasan,
			Status:         StatusPending,
			DiajukanOleh:   diajukanOleh,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetMutasi fetches a transfer request by id.
func (s *Service) GetMutasi(ctx context.Context, in GetMutasiInput) (*Mutasi, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Mutasi
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListMutasi fetches a page of transfer requests, newest first.
func (s *Service) ListMutasi(ctx context.Context, in ListMutasiInput) (*ListMutasiResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	var (
		items []*Mutasi
		total int
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, count, err := s.repo.List(txCtx, ListMutasiFilter{
			PegawaiID: in.PegawaiID,
			Status:    in.Status,
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			return err
		}
		items = result
		total = count
		return nil
	}); err != nil {
		return nil, err
	}

	nextToken := ""
	if offset+len(items) < total {
		nextToken = strconv.Itoa(offset + len(items))
	}

	return &ListMutasiResult{Mutasi: items, Total: total, NextPageToken: nextToken}, nil
}

// UpdateMutasiStatus applies the admin decision. The request must still
// be pending: terminal states are final, and re-deciding one fails with
// ErrAlreadyProcessed.
//
// On approval three writes happen atomically: the status change, the
// ledger update (close the open entry, append the destination), and the
// kuota decrement on the matching open position. A destination without
// a matching position is fine; a matching position with exhausted kuota
// blocks the approval.
func (s *Service) UpdateMutasiStatus(ctx context.Context, in UpdateMutasiStatusInput) (*Mutasi, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	if in.Status != StatusApproved && in.Status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	disetujuiOleh, err := normalizeRequired(in.DisetujuiOleh, ErrInvalidDisetujuiOleh)
	if err != nil {
		return nil, err
	}

	var updated *Mutasi
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if existing.Status != StatusPending {
			return ErrAlreadyProcessed
		}

		now := s.clock.Now()
		existing.Status = in.Status
		existing.DisetujuiOleh = &disetujuiOleh
		existing.TanggalDisetujui = &now
		existing.CatatanPersetujuan = cloneString(in.CatatanPersetujuan)
		existing.UpdatedAt = now

		if in.Status == StatusApproved {
			if err := s.applyApproval(txCtx, existing); err != nil {
				return err
			}
		}

		result, err := s.repo.UpdateStatus(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) applyApproval(ctx context.Context, m *Mutasi) error {
	if err := s.ledger.CloseCurrent(ctx, m.PegawaiID, m.TanggalEfektif); err != nil {
		return err
	}

	keterangan := fmt.Sprintf("Mutasi dari %s (%s)", m.UnitKerjaLama, m.JabatanLama)
	if err := s.ledger.Append(ctx, LedgerEntry{
		PegawaiID:  m.PegawaiID,
		Jabatan:    m.JabatanBaru,
		UnitKerja:  m.UnitKerjaBaru,
		TMTJabatan: m.TanggalEfektif,
		Keterangan: &keterangan,
	}); err != nil {
		return err
	}

	if _, err := s.posisi.DecrementKuota(ctx, m.UnitKerjaBaru, m.JabatanBaru); err != nil {
		return err
	}

	return nil
}

// DeleteMutasi withdraws a request. Only pending requests can be
// deleted; processed ones are part of the historical record.
func (s *Service) DeleteMutasi(ctx context.Context, in DeleteMutasiInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if existing.Status != StatusPending {
			return ErrAlreadyProcessed
		}

		return s.repo.Delete(txCtx, existing.ID)
	})
}

func normalizeRequired(raw string, sentinel error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", sentinel
	}
	return trimmed, nil
}

func normalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
