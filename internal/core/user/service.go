package user

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
	minPasswordLength   = 8
)

var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{2,49}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Service bundles the account and login use cases.
type Service struct {
	repo   Repository
	clock  Clock
	tx     TransactionManager
	tokens *TokenIssuer
}

// UseCase is the public interface of the account use cases.
type UseCase interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*User, error)
	GetUser(ctx context.Context, in GetUserInput) (*User, error)
	ListUsers(ctx context.Context, in ListUsersInput) (*ListUsersResult, error)
	DeleteUser(ctx context.Context, in DeleteUserInput) error
	Login(ctx context.Context, in LoginInput) (*Session, error)
	VerifyToken(token string) (*Claims, error)
}

// NewService creates a Service.
func NewService(repo Repository, clock Clock, tx TransactionManager, tokens *TokenIssuer) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if tokens != nil {
		// Expiry checks follow the same clock that stamped the token.
		tokens.now = clock.Now
	}
	return &Service{repo: repo, clock: clock, tx: tx, tokens: tokens}
}

// CreateUserInput is the input for account creation.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	Role      Role
	PegawaiID *string
}

// GetUserInput is the input for account retrieval.
type GetUserInput struct {
	ID string
}

// ListUsersInput is the input for account listing.
type ListUsersInput struct {
	Role      *Role
	PageSize  int
	PageToken string
}

// ListUsersResult is the result of an account listing.
type ListUsersResult struct {
	Users         []*User
	NextPageToken string
}

// DeleteUserInput is the input for account deletion.
type DeleteUserInput struct {
	ID string
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Username string
	Password string
}

// CreateUser registers a new account with a hashed password.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	username, err := normalizeUsername(in.Username)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if len(in.Password) < minPasswordLength {
		return nil, ErrInvalidPassword
	}

	if !isValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	var pegawaiID *string
	if in.PegawaiID != nil {
		trimmed := strings.TrimSpace(*in.PegawaiID)
		if trimmed == "" {
			return nil, fmt.Errorf("pegawai_id: %w", ErrInvalidID)
		}
		pegawaiID = &trimmed
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var created *User
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Role:         in.Role,
			PegawaiID:    pegawaiID,
			CreatedAt:    now,
			UpdatedAt:    now,
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

// GetUser fetches an account by id.
func (s *Service) GetUser(ctx context.Context, in GetUserInput) (*User, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *User
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

// ListUsers fetches a page of accounts.
func (s *Service) ListUsers(ctx context.Context, in ListUsersInput) (*ListUsersResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	if in.Role != nil && !isValidRole(*in.Role) {
		return nil, ErrInvalidRole
	}

	var (
		users     []*User
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListUsersFilter{
			Role:   in.Role,
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return err
		}
		users = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListUsersResult{Users: users, NextPageToken: nextToken}, nil
}

// DeleteUser removes an account.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// Login checks the credentials and issues a signed session token.
// A missing username and a wrong password both come back as
// ErrInvalidCredentials so callers cannot probe which usernames exist.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	var found *User
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		u, err := s.repo.FindByUsername(txCtx, username)
		if err != nil {
			return err
		}
		found = u
		return nil
	}); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := VerifyPassword(in.Password, found.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(found, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &Session{User: found, Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyToken validates a session token and returns its claims.
func (s *Service) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

func normalizeUsername(raw string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if !usernamePattern.MatchString(lower) {
		return "", ErrInvalidUsername
	}
	return lower, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(trimmed), nil
}

func isValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RolePegawai:
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
