package handler

import (
	"context"
	"testing"
	"time"

	userpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/user/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/user"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubUserUseCase struct {
	createInput user.CreateUserInput
	createOut   *user.User
	createErr   error

	getInput user.GetUserInput
	getOut   *user.User
	getErr   error

	listInput user.ListUsersInput
	listOut   *user.ListUsersResult
	listErr   error

	deleteInput user.DeleteUserInput
	deleteErr   error

	loginInput user.LoginInput
	loginOut   *user.Session
	loginErr   error

	verifyToken string
	verifyOut   *user.Claims
	verifyErr   error
}

func (s *stubUserUseCase) CreateUser(_ context.Context, in user.CreateUserInput) (*user.User, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubUserUseCase) GetUser(_ context.Context, in user.GetUserInput) (*user.User, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubUserUseCase) ListUsers(_ context.Context, in user.ListUsersInput) (*user.ListUsersResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubUserUseCase) DeleteUser(_ context.Context, in user.DeleteUserInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func (s *stubUserUseCase) Login(_ context.Context, in user.LoginInput) (*user.Session, error) {
	s.loginInput = in
	return s.loginOut, s.loginErr
}

func (s *stubUserUseCase) VerifyToken(token string) (*user.Claims, error) {
	s.verifyToken = token
	return s.verifyOut, s.verifyErr
}

func sampleUser(now time.Time) *user.User {
	pegawaiID := "pegawai-1"
	return &user.User{
		ID:        "user-1",
		Username:  "budi",
		Email:     "budi@example.go.id",
		Role:      user.RoleAdmin,
		PegawaiID: &pegawaiID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserGrpcHandler_Login_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	expires := now.Add(time.Hour)
	stub := &stubUserUseCase{loginOut: &user.Session{
		User:      sampleUser(now),
		Token:     "signed-token",
		ExpiresAt: expires,
	}}

	handler := NewUserGrpcHandler(stub)
	resp, err := handler.Login(context.Background(), &userpb.LoginRequest{
		Username: "budi",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if stub.loginInput.Username != "budi" || stub.loginInput.Password != "rahasia123" {
		t.Errorf("unexpected login input: %+v", stub.loginInput)
	}
	if resp.GetToken() != "signed-token" {
		t.Errorf("expected token to pass through, got %s", resp.GetToken())
	}
	if !resp.GetExpiresAt().AsTime().Equal(expires) {
		t.Errorf("unexpected expiry: %v", resp.GetExpiresAt().AsTime())
	}
	if resp.GetUser().GetRole() != userpb.Role_ROLE_ADMIN {
		t.Errorf("unexpected role: %v", resp.GetUser().GetRole())
	}
}

func TestUserGrpcHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	stub := &stubUserUseCase{loginErr: user.ErrInvalidCredentials}

	handler := NewUserGrpcHandler(stub)
	_, err := handler.Login(context.Background(), &userpb.LoginRequest{
		Username: "budi",
		Password: "salah",
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestUserGrpcHandler_VerifyToken_Success(t *testing.T) {
	t.Parallel()

	pegawaiID := "pegawai-1"
	stub := &stubUserUseCase{verifyOut: &user.Claims{
		Username:  "budi",
		Role:      user.RolePegawai,
		PegawaiID: &pegawaiID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
		},
	}}

	handler := NewUserGrpcHandler(stub)
	resp, err := handler.VerifyToken(context.Background(), &userpb.VerifyTokenRequest{Token: "signed-token"})
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}

	if stub.verifyToken != "signed-token" {
		t.Errorf("expected token to pass through, got %s", stub.verifyToken)
	}
	if resp.GetUserId() != "user-1" {
		t.Errorf("unexpected user id: %s", resp.GetUserId())
	}
	if resp.GetRole() != userpb.Role_ROLE_PEGAWAI {
		t.Errorf("unexpected role: %v", resp.GetRole())
	}
	if resp.GetPegawaiId().GetValue() != "pegawai-1" {
		t.Errorf("unexpected pegawai id: %v", resp.GetPegawaiId())
	}
}

func TestUserGrpcHandler_VerifyToken_Invalid(t *testing.T) {
	t.Parallel()

	stub := &stubUserUseCase{verifyErr: user.ErrInvalidToken}

	handler := NewUserGrpcHandler(stub)
	_, err := handler.VerifyToken(context.Background(), &userpb.VerifyTokenRequest{Token: "tampered"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestUserGrpcHandler_CreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	stub := &stubUserUseCase{createErr: user.ErrUsernameAlreadyExists}

	handler := NewUserGrpcHandler(stub)
	_, err := handler.CreateUser(context.Background(), &userpb.CreateUserRequest{
		Username: "budi",
		Email:    "budi@example.go.id",
		Password: "rahasia123",
		Role:     userpb.Role_ROLE_PEGAWAI,
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}
