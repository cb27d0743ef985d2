package user

import "errors"

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameAlreadyExists is returned on duplicate usernames.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrEmailAlreadyExists is returned on duplicate email addresses.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned for any bad username/password
	// combination. It deliberately does not say which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for expired or tampered session tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPegawaiNotFound is returned when the linked employee does not exist.
	ErrPegawaiNotFound = errors.New("user: pegawai not found")
	// ErrInvalidUsername is returned when the username is malformed.
	ErrInvalidUsername = errors.New("invalid username")
	// ErrInvalidEmail is returned when the email is malformed.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPassword is returned when the password is too weak.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidRole is returned for unknown roles.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidID is returned for blank ids.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidPageSize is returned for out-of-range page sizes.
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrInvalidPageToken is returned for malformed page tokens.
	ErrInvalidPageToken = errors.New("invalid page token")
)
