package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iliyamo/edusynth/internal/client/session"
	"github.com/iliyamo/edusynth/internal/client/storage"
	"github.com/iliyamo/edusynth/internal/course"
	"github.com/iliyamo/edusynth/internal/logging"
)

// Persistence is the typed view over the key/value store.  Loads never fail:
// a missing, unreadable or corrupt record is logged and comes back empty.
type Persistence struct {
	store storage.Store
	log   logging.Logger
}

func NewPersistence(store storage.Store, log logging.Logger) *Persistence {
	if log == nil {
		log = logging.Discard()
	}
	return &Persistence{store: store, log: log}
}

func (p *Persistence) LoadUser(ctx context.Context) *session.User {
	var u session.User
	if !p.load(ctx, storage.KeyUser, &u) || u.Email == "" {
		return nil
	}
	return &u
}

func (p *Persistence) LoadCourses(ctx context.Context) []course.Course {
	var cs []course.Course
	if !p.load(ctx, storage.KeyCourses, &cs) {
		return []course.Course{}
	}
	return cs
}

func (p *Persistence) LoadEnrollments(ctx context.Context) []string {
	var ids []string
	if !p.load(ctx, storage.KeyEnrollments, &ids) {
		return []string{}
	}
	return dedupe(ids)
}

// SaveUser writes the profile; nil removes it.
func (p *Persistence) SaveUser(ctx context.Context, u *session.User) error {
	if u == nil {
		return p.remove(ctx, storage.KeyUser)
	}
	return p.save(ctx, storage.KeyUser, u)
}

// SaveCourses writes the course list; an empty list removes the key.
func (p *Persistence) SaveCourses(ctx context.Context, cs []course.Course) error {
	if len(cs) == 0 {
		return p.remove(ctx, storage.KeyCourses)
	}
	return p.save(ctx, storage.KeyCourses, cs)
}

func (p *Persistence) SaveEnrollments(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return p.save(ctx, storage.KeyEnrollments, ids)
}

// Clear drops all three records in one call.
func (p *Persistence) Clear(ctx context.Context) error {
	if err := p.store.Remove(ctx, storage.AllKeys...); err != nil {
		return fmt.Errorf("clear client state: %w", err)
	}
	return nil
}

func (p *Persistence) load(ctx context.Context, key string, dst any) bool {
	raw, ok, err := p.store.Load(ctx, key)
	if err != nil {
		p.log.Error(ctx, "load failed, starting empty", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		p.log.Warn(ctx, "corrupt record ignored", "key", key, "err", err)
		return false
	}
	return true
}

func (p *Persistence) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := p.store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (p *Persistence) remove(ctx context.Context, key string) error {
	if err := p.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
