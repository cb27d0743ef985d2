package user

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

type fakeUserRepo struct {
	users    map[string]*User
	sequence int
	order    []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User)}
}

func cloneUser(u *User) *User {
	clone := *u
	if u.PegawaiID != nil {
		id := *u.PegawaiID
		clone.PegawaiID = &id
	}
	return &clone
}

func (r *fakeUserRepo) Create(_ context.Context, u *User) (*User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, ErrUsernameAlreadyExists
		}
		if existing.Email == u.Email {
			return nil, ErrEmailAlreadyExists
		}
	}

	clone := cloneUser(u)
	r.sequence++
	clone.ID = fmt.Sprintf("user-%d", r.sequence)
	r.users[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneUser(clone), nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, filter ListUsersFilter) ([]*User, string, error) {
	var filtered []*User
	for _, id := range r.order {
		u := r.users[id]
		if u == nil {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		filtered = append(filtered, cloneUser(u))
	}

	if filter.Offset > len(filtered) {
		return []*User{}, "", nil
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

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService(repo Repository) *Service {
	clock := &stubClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	tokens := NewTokenIssuer("test-secret", "simpeg-test", time.Hour)
	return NewService(repo, clock, nil, tokens)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "Budi.Santoso",
		Email:    "budi@bkpsdm.go.id",
		Password: "rahasia-negara",
		Role:     RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	if created.Username != "budi.santoso" {
		t.Fatalf("expected normalized username, got %q", created.Username)
	}
	if created.PasswordHash == "rahasia-negara" {
		t.Fatal("password stored in plaintext")
	}

	ok, err := VerifyPassword("rahasia-negara", created.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	cases := []struct {
		name    string
		in      CreateUserInput
		wantErr error
	}{
		{"short username", CreateUserInput{Username: "ab", Email: "a@b.co", Password: "password1", Role: RoleAdmin}, ErrInvalidUsername},
		{"bad email", CreateUserInput{Username: "valid-user", Email: "not-an-email", Password: "password1", Role: RoleAdmin}, ErrInvalidEmail},
		{"short password", CreateUserInput{Username: "valid-user", Email: "a@b.co", Password: "short", Role: RoleAdmin}, ErrInvalidPassword},
		{"bad role", CreateUserInput{Username: "valid-user", Email: "a@b.co", Password: "password1", Role: Role("superuser")}, ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateUser(ctx, tc.in); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	in := CreateUserInput{Username: "admin01", Email: "admin01@bkpsdm.go.id", Password: "password1", Role: RoleAdmin}
	if _, err := svc.CreateUser(ctx, in); err != nil {
		t.Fatalf("first CreateUser returned error: %v", err)
	}

	in.Email = "other@bkpsdm.go.id"
	if _, err := svc.CreateUser(ctx, in); !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pegawaiID := "pegawai-1"
	created, err := svc.CreateUser(ctx, CreateUserInput{
		Username:  "siti.aminah",
		Email:     "siti@bkpsdm.go.id",
		Password:  "password-siti",
		Role:      RolePegawai,
		PegawaiID: &pegawaiID,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	session, err := svc.Login(ctx, LoginInput{Username: "Siti.Aminah", Password: "password-siti"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if session.User.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, session.User.ID)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := svc.VerifyToken(session.Token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.Subject != created.ID || claims.Role != RolePegawai {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.PegawaiID == nil || *claims.PegawaiID != pegawaiID {
		t.Fatalf("expected pegawai id claim, got %+v", claims.PegawaiID)
	}
}

func TestVerifyToken_HonorsClock(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	clock := &stubClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	tokens := NewTokenIssuer("test-secret", "simpeg-test", time.Hour)
	svc := NewService(repo, clock, nil, tokens)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUserInput{
		Username: "agus.w",
		Email:    "agus@bkpsdm.go.id",
		Password: "password-agus",
		Role:     RoleAdmin,
	}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	session, err := svc.Login(ctx, LoginInput{Username: "agus.w", Password: "password-agus"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	// Still inside the TTL: the token verifies even though the pinned
	// issue time is far from the wall clock.
	if _, err := svc.VerifyToken(session.Token); err != nil {
		t.Fatalf("VerifyToken returned error within the TTL: %v", err)
	}

	clock.now = clock.now.Add(2 * time.Hour)
	if _, err := svc.VerifyToken(session.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken past the TTL, got %v", err)
	}
}

func TestLogin_GenericFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUserInput{
		Username: "known-user",
		Email:    "known@bkpsdm.go.id",
		Password: "correct-password",
		Role:     RoleAdmin,
	}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	if _, err := svc.Login(ctx, LoginInput{Username: "known-user", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Username: "unknown-user", Password: "correct-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestListUsers_RoleFilterAndPaging(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		role := RolePegawai
		if i == 0 {
			role = RoleAdmin
		}
		if _, err := svc.CreateUser(ctx, CreateUserInput{
			Username: fmt.Sprintf("user-%d", i),
			Email:    fmt.Sprintf("user%d@bkpsdm.go.id", i),
			Password: "password1",
			Role:     role,
		}); err != nil {
			t.Fatalf("CreateUser returned error: %v", err)
		}
	}

	role := RolePegawai
	result, err := svc.ListUsers(ctx, ListUsersInput{Role: &role, PageSize: 1})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(result.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(result.Users))
	}
	if result.NextPageToken == "" {
		t.Fatal("expected a next page token")
	}

	second, err := svc.ListUsers(ctx, ListUsersInput{Role: &role, PageSize: 1, PageToken: result.NextPageToken})
	if err != nil {
		t.Fatalf("ListUsers page 2 returned error: %v", err)
	}
	if len(second.Users) != 1 || second.Users[0].ID == result.Users[0].ID {
		t.Fatalf("expected a distinct second page, got %+v", second.Users)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	clock := &stubClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	tokens := NewTokenIssuer("test-secret", "simpeg-test", -time.Hour)
	svc := NewService(repo, clock, nil, tokens)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUserInput{
		Username: "expired-user",
		Email:    "expired@bkpsdm.go.id",
		Password: "password1",
		Role:     RoleAdmin,
	}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	session, err := svc.Login(ctx, LoginInput{Username: "expired-user", Password: "password1"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := svc.VerifyToken(session.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_TamperedSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret-a", "simpeg-test", time.Hour)
	other := NewTokenIssuer("secret-b", "simpeg-test", time.Hour)

	token, _, err := issuer.Issue(&User{ID: "user-1", Username: "u", Role: RoleAdmin}, time.Now().UTC())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}
