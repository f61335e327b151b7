package model

import "time"

// Role names for the JWT "role" claim.  Admins may act on any user's
// reservations; customers only on their own.
const (
    RoleAdmin    = "ADMIN"
    RoleCustomer = "CUSTOMER"
)

// User represents a registered guest or administrator.  User IDs are
// short strings of the form "U001" assigned sequentially at
// registration time and never changed afterwards.
//
// Fields:
//  ID           – unique user identifier (e.g. "U001").
//  Name         – full name, 2-50 letters and spaces.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  Admin        – whether the user holds administrator privileges.
//  CreatedAt    – timestamp of registration.
type User struct {
    ID           string
    Name         string
    Email        string
    PasswordHash string
    Admin        bool
    CreatedAt    time.Time
}

// Role maps the admin flag onto the role claim value.
func (u *User) Role() string {
    if u.Admin {
        return RoleAdmin
    }
    return RoleCustomer
}

// RefreshToken is a long-lived session token.  Only the SHA-256 hash
// of the raw token is kept; the raw value is returned to the client
// once and never stored.
type RefreshToken struct {
    UserID    string
    TokenHash string
    ExpiresAt time.Time
    RevokedAt *time.Time
}
