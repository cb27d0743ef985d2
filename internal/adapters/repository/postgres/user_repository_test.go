package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var userRowColumns = []string{"id", "username", "email", "password_hash", "role", "pegawai_id", "created_at", "updated_at"}

func TestScanUser_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanUser(row)
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTranslateUserPgError(t *testing.T) {
	t.Parallel()

	usernameErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_username_key"}
	if !errors.Is(translateUserPgError(usernameErr), user.ErrUsernameAlreadyExists) {
		t.Fatalf("expected username violation to map to ErrUsernameAlreadyExists")
	}

	emailErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"}
	if !errors.Is(translateUserPgError(emailErr), user.ErrEmailAlreadyExists) {
		t.Fatalf("expected email violation to map to ErrEmailAlreadyExists")
	}

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateUserPgError(fkErr), user.ErrPegawaiNotFound) {
		t.Fatalf("expected fk violation to map to ErrPegawaiNotFound")
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)
	now := time.Now().UTC()

	query := regexp.QuoteMeta(`
        SELECT id, username, email, password_hash, role, pegawai_id, created_at, updated_at
          FROM users
         WHERE username = $1
         LIMIT 1
    `)

	mock.ExpectQuery(query).
		WithArgs("budi.santoso").
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow("user-1", "budi.santoso", "budi@example.go.id", "$argon2id$...", string(user.RolePegawai), "pegawai-1", now, now))

	found, err := repo.FindByUsername(context.Background(), "budi.santoso")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}

	if found.Role != user.RolePegawai {
		t.Fatalf("unexpected role: %s", found.Role)
	}
	if found.PegawaiID == nil || *found.PegawaiID != "pegawai-1" {
		t.Fatalf("unexpected pegawai id: %+v", found.PegawaiID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_List_WithRoleFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)
	now := time.Now().UTC()
	role := user.RoleAdmin

	query := regexp.QuoteMeta(`
        SELECT id, username, email, password_hash, role, pegawai_id, created_at, updated_at
          FROM users WHERE role = $1
         ORDER BY created_at DESC, id DESC
         LIMIT $2
        OFFSET $3
    `)

	rows := pgxmock.NewRows(userRowColumns).
		AddRow("user-1", "admin.satu", "satu@example.go.id", "$argon2id$...", string(user.RoleAdmin), nil, now, now).
		AddRow("user-2", "admin.dua", "dua@example.go.id", "$argon2id$...", string(user.RoleAdmin), nil, now, now)

	mock.ExpectQuery(query).
		WithArgs(string(role), 3, 0).
		WillReturnRows(rows)

	users, nextToken, err := repo.List(context.Background(), user.ListUsersFilter{
		Role:   &role,
		Limit:  2,
		Offset: 0,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}
	if users[0].PegawaiID != nil {
		t.Fatalf("expected nil pegawai id for admin, got %+v", users[0].PegawaiID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
