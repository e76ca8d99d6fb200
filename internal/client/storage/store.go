// Package storage is the durable key/value store behind the learner client.
// Values are opaque bytes; the state package owns their encoding.
package storage

import "context"

// Keys of the three record sets kept by the client.
const (
	KeyUser        = "edusynth-user"
	KeyCourses     = "edusynth-courses"
	KeyEnrollments = "edusynth-enrollments"
)

// AllKeys lists every key the client writes, for logout.
var AllKeys = []string{KeyUser, KeyCourses, KeyEnrollments}

// Store persists values by key.  Load reports ok=false when the key is
// absent.  Remove of a missing key is not an error.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
}
