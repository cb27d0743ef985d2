package riwayat

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

// Service bundles the position-ledger use cases. Entries are appended
// by admins directly or by the transfer workflow on approval; they are
// only ever mutated as an admin correction.
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase is the public interface of the ledger use cases.
type UseCase interface {
	CreateRiwayat(ctx context.Context, in CreateRiwayatInput) (*RiwayatJabatan, error)
	UpdateRiwayat(ctx context.Context, in UpdateRiwayatInput) (*RiwayatJabatan, error)
	DeleteRiwayat(ctx context.Context, in DeleteRiwayatInput) error
	ListRiwayatByPegawai(ctx context.Context, in ListRiwayatInput) (*ListRiwayatResult, error)
	GetCurrentJabatan(ctx context.Context, pegawaiID string) (*RiwayatJabatan, error)
}

// NewService creates a Service.
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreateRiwayatInput is the input for a direct admin ledger entry.
type CreateRiwayatInput struct {
	PegawaiID       string
	Jabatan         string
	JabatanTambahan *string
	UnitKerja       string
	TMTJabatan      time.Time
	TMTBerakhir     *time.Time
	Keterangan      *string
}

// UpdateRiwayatInput is a patch for an admin correction.
type UpdateRiwayatInput struct {
	ID                 string
	Jabatan            *string
	JabatanTambahan    *string
	JabatanTambahanSet bool
	UnitKerja          *string
	TMTJabatan         *time.Time
	TMTBerakhir        *time.Time
	TMTBerakhirSet     bool
	Keterangan         *string
	KeteranganSet      bool
}

// DeleteRiwayatInput is the input for ledger entry deletion.
type DeleteRiwayatInput struct {
	ID string
}

// ListRiwayatInput is the input for listing one employee's ledger.
type ListRiwayatInput struct {
	PegawaiID string
	PageSize  int
	PageToken string
}

// ListRiwayatResult is the result of a ledger listing.
type ListRiwayatResult struct {
	Riwayat       []*RiwayatJabatan
	NextPageToken string
}

// CreateRiwayat appends a ledger entry entered directly by an admin.
func (s *Service) CreateRiwayat(ctx context.Context, in CreateRiwayatInput) (*RiwayatJabatan, error) {
	pegawaiID, err := normalizePegawaiID(in.PegawaiID)
	if err != nil {
		return nil, err
	}

	jabatan, err := normalizeRequired(in.Jabatan, ErrInvalidJabatan)
	if err != nil {
		return nil, err
	}

	unitKerja, err := normalizeRequired(in.UnitKerja, ErrInvalidUnitKerja)
	if err != nil {
		return nil, err
	}

	if in.TMTJabatan.IsZero() {
		return nil, ErrInvalidTMTJabatan
	}

	tmtJabatan := normalizeDate(in.TMTJabatan)
	tmtBerakhir := normalizeDatePtr(in.TMTBerakhir)
	if err := validatePeriode(tmtJabatan, tmtBerakhir); err != nil {
		return nil, err
	}

	var created *RiwayatJabatan
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &RiwayatJabatan{
			PegawaiID:       pegawaiID,
			Jabatan:         jabatan,
			JabatanTambahan: cloneString(in.JabatanTambahan),
			UnitKerja:       unitKerja,
			TMTJabatan:      tmtJabatan,
			TMTBerakhir:     tmtBerakhir,
			Keterangan:      cloneString(in.Keterangan),
			CreatedAt:       now,
			UpdatedAt:       now,
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

// UpdateRiwayat applies an admin correction to a ledger entry.
func (s *Service) UpdateRiwayat(ctx context.Context, in UpdateRiwayatInput) (*RiwayatJabatan, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *RiwayatJabatan
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Jabatan != nil {
			jabatan, err := normalizeRequired(*in.Jabatan, ErrInvalidJabatan)
			if err != nil {
				return err
			}
			existing.Jabatan = jabatan
		}

		if in.JabatanTambahanSet {
			existing.JabatanTambahan = cloneString(in.JabatanTambahan)
		}

		if in.UnitKerja != nil {
			unitKerja, err := normalizeRequired(*in.UnitKerja, ErrInvalidUnitKerja)
			if err != nil {
				return err
			}
			existing.UnitKerja = unitKerja
		}

		if in.TMTJabatan != nil {
			if in.TMTJabatan.IsZero() {
				return ErrInvalidTMTJabatan
			}
			existing.TMTJabatan = normalizeDate(*in.TMTJabatan)
		}

		if in.TMTBerakhirSet {
			existing.TMTBerakhir = normalizeDatePtr(in.TMTBerakhir)
		}

		if in.KeteranganSet {
			existing.Keterangan = cloneString(in.Keterangan)
		}

		if err := validatePeriode(existing.TMTJabatan, existing.TMTBerakhir); err != nil {
			return err
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
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

// DeleteRiwayat removes a ledger entry.
func (s *Service) DeleteRiwayat(ctx context.Context, in DeleteRiwayatInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// ListRiwayatByPegawai lists one employee's ledger, newest TMT first.
func (s *Service) ListRiwayatByPegawai(ctx context.Context, in ListRiwayatInput) (*ListRiwayatResult, error) {
	pegawaiID, err := normalizePegawaiID(in.PegawaiID)
	if err != nil {
		return nil, err
	}

	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		result    []*RiwayatJabatan
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, token, err := s.repo.ListByPegawai(txCtx, ListRiwayatFilter{
			PegawaiID: pegawaiID,
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			return err
		}
		result = found
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListRiwayatResult{Riwayat: result, NextPageToken: nextToken}, nil
}

// GetCurrentJabatan derives the current position of an employee as the
// ledger entry with the latest TMTJabatan.
func (s *Service) GetCurrentJabatan(ctx context.Context, pegawaiID string) (*RiwayatJabatan, error) {
	id, err := normalizePegawaiID(pegawaiID)
	if err != nil {
		return nil, err
	}

	var result *RiwayatJabatan
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindCurrentByPegawai(txCtx, id)
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

func normalizePegawaiID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidPegawaiID
	}
	return trimmed, nil
}

func normalizeRequired(raw string, sentinel error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", sentinel
	}
	return trimmed, nil
}

func validatePeriode(tmtJabatan time.Time, tmtBerakhir *time.Time) error {
	if tmtBerakhir == nil {
		return nil
	}
	if tmtBerakhir.Before(tmtJabatan) {
		return ErrInvalidPeriode
	}
	return nil
}

func normalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := normalizeDate(*t)
	return &normalized
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
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
