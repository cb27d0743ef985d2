package posisi

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

// Service bundles the open-position registry use cases. Kuota is only
// decremented by the transfer workflow; this service never touches it
// outside a full admin update.
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase is the public interface of the registry use cases.
type UseCase interface {
	CreatePosisi(ctx context.Context, in CreatePosisiInput) (*PosisiTersedia, error)
	GetPosisi(ctx context.Context, in GetPosisiInput) (*PosisiTersedia, error)
	ListPosisi(ctx context.Context, in ListPosisiInput) (*ListPosisiResult, error)
	UpdatePosisi(ctx context.Context, in UpdatePosisiInput) (*PosisiTersedia, error)
	DeactivatePosisi(ctx context.Context, in DeactivatePosisiInput) (*PosisiTersedia, error)
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

// CreatePosisiInput is the input for advertising a position.
type CreatePosisiInput struct {
	NamaPosisi  string
	UnitKerja   string
	Deskripsi   *string
	Persyaratan *string
	Kuota       int
}

// GetPosisiInput is the input for position retrieval.
type GetPosisiInput struct {
	ID string
}

// ListPosisiInput is the input for position listing.
type ListPosisiInput struct {
	UnitKerja     string
	AvailableOnly bool
	PageSize      int
	PageToken     string
}

// ListPosisiResult is the result of a position listing.
type ListPosisiResult struct {
	Posisi        []*PosisiTersedia
	NextPageToken string
}

// UpdatePosisiInput is a patch for an advertised position.
type UpdatePosisiInput struct {
	ID             string
	NamaPosisi     *string
	UnitKerja      *string
	Deskripsi      *string
	DeskripsiSet   bool
	Persyaratan    *string
	PersyaratanSet bool
	Kuota          *int
	IsAvailable    *bool
}

// DeactivatePosisiInput is the input for taking a position offline.
type DeactivatePosisiInput struct {
	ID string
}

// CreatePosisi advertises a new position, available by default.
func (s *Service) CreatePosisi(ctx context.Context, in CreatePosisiInput) (*PosisiTersedia, error) {
	namaPosisi, err := normalizeRequired(in.NamaPosisi, ErrInvalidNamaPosisi)
	if err != nil {
		return nil, err
	}

	unitKerja, err := normalizeRequired(in.UnitKerja, ErrInvalidUnitKerja)
	if err != nil {
		return nil, err
	}

	if in.Kuota < 1 {
		return nil, ErrInvalidKuota
	}

	var created *PosisiTersedia
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &PosisiTersedia{
			NamaPosisi:  namaPosisi,
			UnitKerja:   unitKerja,
			Deskripsi:   cloneString(in.Deskripsi),
			Persyaratan: cloneString(in.Persyaratan),
			Kuota:       in.Kuota,
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
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

// GetPosisi fetches a position by id.
func (s *Service) GetPosisi(ctx context.Context, in GetPosisiInput) (*PosisiTersedia, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *PosisiTersedia
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

// ListPosisi fetches a page of positions.
func (s *Service) ListPosisi(ctx context.Context, in ListPosisiInput) (*ListPosisiResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		result    []*PosisiTersedia
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, token, err := s.repo.List(txCtx, ListPosisiFilter{
			UnitKerja:     strings.TrimSpace(in.UnitKerja),
			AvailableOnly: in.AvailableOnly,
			Limit:         limit,
			Offset:        offset,
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

	return &ListPosisiResult{Posisi: result, NextPageToken: nextToken}, nil
}

// UpdatePosisi applies a full admin update, kuota included.
func (s *Service) UpdatePosisi(ctx context.Context, in UpdatePosisiInput) (*PosisiTersedia, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *PosisiTersedia
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.NamaPosisi != nil {
			namaPosisi, err := normalizeRequired(*in.NamaPosisi, ErrInvalidNamaPosisi)
			if err != nil {
				return err
			}
			existing.NamaPosisi = namaPosisi
		}

		if in.UnitKerja != nil {
			unitKerja, err := normalizeRequired(*in.UnitKerja, ErrInvalidUnitKerja)
			if err != nil {
				return err
			}
			existing.UnitKerja = unitKerja
		}

		if in.DeskripsiSet {
			existing.Deskripsi = cloneString(in.Deskripsi)
		}

		if in.PersyaratanSet {
			existing.Persyaratan = cloneString(in.Persyaratan)
		}

		if in.Kuota != nil {
			if *in.Kuota < 0 {
				return ErrInvalidKuota
			}
			existing.Kuota = *in.Kuota
		}

		if in.IsAvailable != nil {
			existing.IsAvailable = *in.IsAvailable
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

// DeactivatePosisi takes a position off the listing. Soft state change
// only; the row is kept for historical transfer requests.
func (s *Service) DeactivatePosisi(ctx context.Context, in DeactivatePosisiInput) (*PosisiTersedia, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *PosisiTersedia
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		existing.IsAvailable = false
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

func normalizeRequired(raw string, sentinel error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", sentinel
	}
	return trimmed, nil
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
