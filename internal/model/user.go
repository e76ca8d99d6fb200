package model

import "time"

// User represents an account record as stored in the `users` table.  The
// json tags are omitted because handlers define their own response shapes;
// PasswordHash must never leave the server.
//
// Fields:
//
//	ID          : opaque identifier (uuid string).
//	FullName    : display name given at registration.
//	Email       : unique, lower-cased email address.
//	PasswordHash: bcrypt hash; the salt is embedded in the hash.
//	CreatedAt   : timestamp of creation.
type User struct {
	ID           string    // users.id
	FullName     string    // users.full_name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
