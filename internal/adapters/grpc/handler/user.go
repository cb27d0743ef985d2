package handler

import (
	"context"

	userpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/user/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// UserGrpcHandler is the gRPC surface of account management and auth.
type UserGrpcHandler struct {
	svc user.UseCase
	userpb.UnimplementedUserServiceServer
}

// NewUserGrpcHandler creates a UserGrpcHandler.
func NewUserGrpcHandler(svc user.UseCase) *UserGrpcHandler {
	return &UserGrpcHandler{svc: svc}
}

// CreateUser registers an account.
func (h *UserGrpcHandler) CreateUser(ctx context.Context, req *userpb.CreateUserRequest) (*userpb.CreateUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	role, err := toDomainRole(req.GetRole())
	if err != nil {
		return nil, toStatusError(err)
	}

	created, err := h.svc.CreateUser(ctx, user.CreateUserInput{
		Username:  req.GetUsername(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		Role:      role,
		PegawaiID: stringValueToPointer(req.PegawaiId),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &userpb.CreateUserResponse{User: toProtoUser(created)}, nil
}

// GetUser fetches an account.
func (h *UserGrpcHandler) GetUser(ctx context.Context, req *userpb.GetUserRequest) (*userpb.GetUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetUser(ctx, user.GetUserInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &userpb.GetUserResponse{User: toProtoUser(found)}, nil
}

// ListUsers fetches a page of accounts.
func (h *UserGrpcHandler) ListUsers(ctx context.Context, req *userpb.ListUsersRequest) (*userpb.ListUsersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var rolePtr *user.Role
	if req.GetRole() != userpb.Role_ROLE_UNSPECIFIED {
		role, err := toDomainRole(req.GetRole())
		if err != nil {
			return nil, toStatusError(err)
		}
		rolePtr = &role
	}

	result, err := h.svc.ListUsers(ctx, user.ListUsersInput{
		Role:      rolePtr,
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoUsers := make([]*userpb.User, 0, len(result.Users))
	for _, u := range result.Users {
		protoUsers = append(protoUsers, toProtoUser(u))
	}

	return &userpb.ListUsersResponse{
		Users:         protoUsers,
		NextPageToken: result.NextPageToken,
	}, nil
}

// DeleteUser removes an account.
func (h *UserGrpcHandler) DeleteUser(ctx context.Context, req *userpb.DeleteUserRequest) (*userpb.DeleteUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteUser(ctx, user.DeleteUserInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &userpb.DeleteUserResponse{}, nil
}

// Login trades credentials for a signed session token.
func (h *UserGrpcHandler) Login(ctx context.Context, req *userpb.LoginRequest) (*userpb.LoginResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	session, err := h.svc.Login(ctx, user.LoginInput{
		Username: req.GetUsername(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &userpb.LoginResponse{
		User:      toProtoUser(session.User),
		Token:     session.Token,
		ExpiresAt: timestamppb.New(session.ExpiresAt),
	}, nil
}

// VerifyToken validates a session token and returns its claims.
func (h *UserGrpcHandler) VerifyToken(_ context.Context, req *userpb.VerifyTokenRequest) (*userpb.VerifyTokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	claims, err := h.svc.VerifyToken(req.GetToken())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &userpb.VerifyTokenResponse{
		UserId:    claims.Subject,
		Username:  claims.Username,
		Role:      toProtoRole(claims.Role),
		PegawaiId: pointerToStringValue(claims.PegawaiID),
	}, nil
}

// toProtoUser deliberately leaves the password hash behind.
func toProtoUser(u *user.User) *userpb.User {
	if u == nil {
		return nil
	}

	return &userpb.User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      toProtoRole(u.Role),
		PegawaiId: pointerToStringValue(u.PegawaiID),
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}
}

func toDomainRole(v userpb.Role) (user.Role, error) {
	switch v {
	case userpb.Role_ROLE_ADMIN:
		return user.RoleAdmin, nil
	case userpb.Role_ROLE_PEGAWAI:
		return user.RolePegawai, nil
	default:
		return "", user.ErrInvalidRole
	}
}

func toProtoRole(v user.Role) userpb.Role {
	switch v {
	case user.RoleAdmin:
		return userpb.Role_ROLE_ADMIN
	case user.RolePegawai:
		return userpb.Role_ROLE_PEGAWAI
	default:
		return userpb.Role_ROLE_UNSPECIFIED
	}
}
