package pegawai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
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

	// Retirement window per BKN policy: employees aged 56 through 60
	// inclusive count as approaching retirement.
	pensiunUsiaMin = 56
	pensiunUsiaMax = 60
)

var (
	nipPattern   = regexp.MustCompile(`^[0-9]{18}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Service bundles the employee directory use cases.
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase is the public interface of the employee use cases.
type UseCase interface {
	CreatePegawai(ctx context.Context, in CreatePegawaiInput) (*Pegawai, error)
	GetPegawai(ctx context.Context, in GetPegawaiInput) (*Pegawai, error)
	ListPegawai(ctx context.Context, in ListPegawaiInput) (*ListPegawaiResult, error)
	UpdatePegawai(ctx context.Context, in UpdatePegawaiInput) (*Pegawai, error)
	DeletePegawai(ctx context.Context, in DeletePegawaiInput) error
	ListMendekatiPensiun(ctx context.Context) ([]*Pegawai, error)
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

// CreatePegawaiInput is the input for employee creation.
type CreatePegawaiInput struct {
	NIP           string
	Nama          string
	Email         string
	Telepon       *string
	TanggalLahir  time.Time
	JenisKelamin  JenisKelamin
	Pendidikan    Pendidikan
	GolonganDarah *GolonganDarah
	Alamat        Alamat
}

// GetPegawaiInput is the input for employee retrieval.
type GetPegawaiInput struct {
	ID string
}

// ListPegawaiInput is the input for employee listing.
type ListPegawaiInput struct {
	Nama      string
	NIP       string
	IsActive  *bool
	PageSize  int
	PageToken string
}

// ListPegawaiResult is the result of an employee listing.
type ListPegawaiResult struct {
	Pegawai       []*Pegawai
	NextPageToken string
}

// UpdatePegawaiInput is a patch: nil pointer means "leave unchanged",
// the *Set flags distinguish clearing a nullable field from skipping it.
type UpdatePegawaiInput struct {
	ID               string
	Nama             *string
	Email            *string
	Telepon          *string
	TeleponSet       bool
	TanggalLahir     *time.Time
	JenisKelamin     *JenisKelamin
	Pendidikan       *Pendidikan
	GolonganDarah    *GolonganDarah
	GolonganDarahSet bool
	Alamat           *Alamat
	IsActive         *bool
}

// DeletePegawaiInput is the input for employee deletion.
type DeletePegawaiInput struct {
	ID string
}

// CreatePegawai registers a new employee record.
func (s *Service) CreatePegawai(ctx context.Context, in CreatePegawaiInput) (*Pegawai, error) {
	nip, err := normalizeNIP(in.NIP)
	if err != nil {
		return nil, err
	}

	nama, err := normalizeNama(in.Nama)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if in.TanggalLahir.IsZero() {
		return nil, ErrInvalidTanggalLahir
	}

	if !isValidJenisKelamin(in.JenisKelamin) {
		return nil, ErrInvalidJenisKelamin
	}

	if !isValidPendidikan(in.Pendidikan) {
		return nil, ErrInvalidPendidikan
	}

	if in.GolonganDarah != nil && !isValidGolonganDarah(*in.GolonganDarah) {
		return nil, ErrInvalidGolonganDarah
	}

	alamat, err := normalizeAlamat(in.Alamat)
	if err != nil {
		return nil, err
	}

	var created *Pegawai
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureNIPNotExists(txCtx, nip); err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Pegawai{
			NIP:           nip,
			Nama:          nama,
			Email:         email,
			Telepon:       cloneString(in.Telepon),
			TanggalLahir:  normalizeDate(in.TanggalLahir),
			JenisKelamin:  in.JenisKelamin,
			Pendidikan:    in.Pendidikan,
			GolonganDarah: cloneGolonganDarah(in.GolonganDarah),
			Alamat:        alamat,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
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

// GetPegawai fetches an employee by id.
func (s *Service) GetPegawai(ctx context.Context, in GetPegawaiInput) (*Pegawai, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Pegawai
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

// ListPegawai fetches a page of employees.
func (s *Service) ListPegawai(ctx context.Context, in ListPegawaiInput) (*ListPegawaiResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		result    []*Pegawai
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, token, err := s.repo.List(txCtx, ListPegawaiFilter{
			Nama:     strings.TrimSpace(in.Nama),
			NIP:      strings.TrimSpace(in.NIP),
			IsActive: in.IsActive,
			Limit:    limit,
			Offset:   offset,
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

	return &ListPegawaiResult{Pegawai: result, NextPageToken: nextToken}, nil
}

// UpdatePegawai applies a patch to an employee record.
func (s *Service) UpdatePegawai(ctx context.Context, in UpdatePegawaiInput) (*Pegawai, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Pegawai
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Nama != nil {
			nama, err := normalizeNama(*in.Nama)
			if err != nil {
				return err
			}
			existing.Nama = nama
		}

		if in.Email != nil {
			email, err := normalizeEmail(*in.Email)
			if err != nil {
				return err
			}
			existing.Email = email
		}

		if in.TeleponSet {
			existing.Telepon = cloneString(in.Telepon)
		}

		if in.TanggalLahir != nil {
			if in.TanggalLahir.IsZero() {
				return ErrInvalidTanggalLahir
			}
			existing.TanggalLahir = normalizeDate(*in.TanggalLahir)
		}

		if in.JenisKelamin != nil {
			if !isValidJenisKelamin(*in.JenisKelamin) {
				return ErrInvalidJenisKelamin
			}
			existing.JenisKelamin = *in.JenisKelamin
		}

		if in.Pendidikan != nil {
			if !isValidPendidikan(*in.Pendidikan) {
				return ErrInvalidPendidikan
			}
			existing.Pendidikan = *in.Pendidikan
		}

		if in.GolonganDarahSet {
			if in.GolonganDarah != nil && !isValidGolonganDarah(*in.GolonganDarah) {
				return ErrInvalidGolonganDarah
			}
			existing.GolonganDarah = cloneGolonganDarah(in.GolonganDarah)
		}

		if in.Alamat != nil {
			alamat, err := normalizeAlamat(*in.Alamat)
			if err != nil {
				return err
			}
			existing.Alamat = alamat
		}

		if in.IsActive != nil {
			existing.IsActive = *in.IsActive
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

// DeletePegawai removes an employee. Job history and transfer requests
// cascade in the database; the linked account is kept with its
// pegawai reference nulled out.
func (s *Service) DeletePegawai(ctx context.Context, in DeletePegawaiInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// ListMendekatiPensiun returns active employees aged 56 through 60
// inclusive as of today. The window is recomputed on every call and a
// one-day margin on each side keeps employees whose birthday is today
// inside the window regardless of timezone truncation.
func (s *Service) ListMendekatiPensiun(ctx context.Context) ([]*Pegawai, error) {
	today := normalizeDate(s.clock.Now())

	oldest := today.AddDate(-pensiunUsiaMax, 0, -1)
	youngest := today.AddDate(-pensiunUsiaMin, 0, 1)

	var result []*Pegawai
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindActiveByTanggalLahirRange(txCtx, oldest, youngest)
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

func (s *Service) ensureNIPNotExists(ctx context.Context, nip string) error {
	p, err := s.repo.FindByNIP(ctx, nip)
	if err != nil && !errors.Is(err, ErrPegawaiNotFound) {
		return err
	}
	if p != nil {
		return ErrNIPAlreadyExists
	}
	return nil
}

func normalizeNIP(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !nipPattern.MatchString(trimmed) {
		return "", ErrInvalidNIP
	}
	return trimmed, nil
}

func normalizeNama(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidNama
	}
	return trimmed, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(trimmed), nil
}

func normalizeAlamat(a Alamat) (Alamat, error) {
	refs := []WilayahRef{a.Provinsi, a.Kota, a.Kecamatan, a.Desa}
	for _, ref := range refs {
		if strings.TrimSpace(ref.ID) == "" || strings.TrimSpace(ref.Nama) == "" {
			return Alamat{}, ErrInvalidAlamat
		}
	}

	return Alamat{
		Provinsi:  trimRef(a.Provinsi),
		Kota:      trimRef(a.Kota),
		Kecamatan: trimRef(a.Kecamatan),
		Desa:      trimRef(a.Desa),
		Detail:    strings.TrimSpace(a.Detail),
	}, nil
}

func trimRef(ref WilayahRef) WilayahRef {
	return WilayahRef{ID: strings.TrimSpace(ref.ID), Nama: strings.TrimSpace(ref.Nama)}
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

func cloneGolonganDarah(g *GolonganDarah) *GolonganDarah {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

func isValidJenisKelamin(v JenisKelamin) bool {
	switch v {
	case JenisKelaminLakiLaki, JenisKelaminPerempuan:
		return true
	default:
		return false
	}
}

func isValidPendidikan(v Pendidikan) bool {
	switch v {
	case PendidikanSD, PendidikanSMP, PendidikanSMA, PendidikanD3, PendidikanS1, PendidikanS2, PendidikanS3:
		return true
	default:
		return false
	}
}

func isValidGolonganDarah(v GolonganDarah) bool {
	switch v {
	case GolonganDarahA, GolonganDarahB, GolonganDarahAB, GolonganDarahO:
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
