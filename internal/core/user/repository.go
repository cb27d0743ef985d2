package user

import "context"

// Repository abstracts account persistence.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*User, string, error)
	Delete(ctx context.Context, id string) error
}

// ListUsersFilter narrows account listings.
type ListUsersFilter struct {
	Role   *Role
	Limit  int
	Offset int
}
