package user

import "time"

// Role distinguishes administrators from employee-scoped accounts.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePegawai Role = "pegawai"
)

// User is a login account. PasswordHash holds the PHC-encoded argon2id
// digest and must never cross the API boundary.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	PegawaiID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is the result of a successful login.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}
