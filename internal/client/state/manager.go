// Package state is the learner client's view and data state machine.  Every
// transition runs under one mutex; course, enrollment and user changes are
// mirrored to Persistence before the call returns, and progress is pushed
// to the server in the background.
package state

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/edusynth/internal/catalog"
	"github.com/iliyamo/edusynth/internal/client/api"
	"github.com/iliyamo/edusynth/internal/client/session"
	"github.com/iliyamo/edusynth/internal/client/storage"
	"github.com/iliyamo/edusynth/internal/course"
	"github.com/iliyamo/edusynth/internal/logging"
)

// View names the screen the learner is on.
type View string

const (
	ViewHome          View = "home"
	ViewCatalog       View = "catalog"
	ViewCatalogDetail View = "catalog-detail"
	ViewDashboard     View = "dashboard"
	ViewCreate        View = "create"
	ViewCourse        View = "course"
	ViewChatbot       View = "chatbot"
)

// guarded views need a logged-in user.
var guarded = map[View]bool{ViewDashboard: true, ViewCreate: true, ViewChatbot: true}

var (
	// ErrUnauthenticated is returned when an action needs a session.  The
	// auth prompt has been opened by the time it is returned.
	ErrUnauthenticated = errors.New("state: not authenticated")
	ErrNoCourse        = errors.New("state: no course selected")
	ErrUnknownView     = errors.New("state: unknown view")
)

const remoteTimeout = 10 * time.Second

// ProgressSyncer pushes course progress to the server.  *api.Client
// satisfies it.
type ProgressSyncer interface {
	UpdateProgress(ctx context.Context, token string, u api.ProgressUpdate) error
}

// Snapshot is a copy of the state safe to hand to views.
type Snapshot struct {
	View            View
	Courses         []course.Course
	Selected        *course.Course
	SelectedCatalog *catalog.Item
	Enrollments     []string
	User            *session.User
	AuthPrompt      bool
}

// Option configures a Manager in New.
type Option func(*Manager)

// WithRemote sets where progress updates are pushed.
func WithRemote(r ProgressSyncer) Option { return func(m *Manager) { m.remote = r } }

// WithLogger sets the logger; nil means discard.
func WithLogger(l logging.Logger) Option { return func(m *Manager) { m.log = l } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

type Manager struct {
	mu      sync.Mutex
	persist *Persistence
	remote  ProgressSyncer
	log     logging.Logger
	now     func() time.Time
	newID   func() string
	pending sync.WaitGroup

	view            View
	courses         []course.Course
	selected        *course.Course
	selectedCatalog *catalog.Item
	enrollments     []string
	sess            session.Session
	authPrompt      bool
}

// New restores the previous session from store.  A restored session whose
// token has expired is dropped together with its courses and enrollments.
func New(ctx context.Context, store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		log:   logging.Discard(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		view:  ViewHome,
	}
	for _, o := range opts {
		o(m)
	}
	if m.log == nil {
		m.log = logging.Discard()
	}
	m.persist = NewPersistence(store, m.log)

	m.courses = m.persist.LoadCourses(ctx)
	m.enrollments = m.persist.LoadEnrollments(ctx)
	m.sess = session.Restore(m.persist.LoadUser(ctx))
	if m.sess.Expired(m.now()) {
		m.log.Info(ctx, "stored session expired", "email", m.sess.User.Email)
		m.sess = session.Session{}
		m.courses = []course.Course{}
		m.enrollments = []string{}
		_ = m.logSave(ctx, m.persist.Clear(ctx))
	}
	return m
}

// State returns a deep copy of the current state.
func (m *Manager) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		View:        m.view,
		Courses:     make([]course.Course, len(m.courses)),
		Enrollments: slices.Clone(m.enrollments),
		AuthPrompt:  m.authPrompt,
	}
	for i, c := range m.courses {
		s.Courses[i] = c.Clone()
	}
	if m.selected != nil {
		c := m.selected.Clone()
		s.Selected = &c
	}
	if m.selectedCatalog != nil {
		it := *m.selectedCatalog
		s.SelectedCatalog = &it
	}
	if m.sess.User != nil {
		u := *m.sess.User
		s.User = &u
	}
	return s
}

// Session returns a copy of the active session.
func (m *Manager) Session() session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sess
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Navigate switches view and clears both selections.  Guarded views
// without a session open the auth prompt instead.
func (m *Manager) Navigate(v View) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v {
	case ViewHome, ViewCatalog, ViewCatalogDetail, ViewDashboard, ViewCreate, ViewCourse, ViewChatbot:
	default:
		return ErrUnknownView
	}
	if guarded[v] && !m.sess.Authenticated() {
		m.authPrompt = true
		return ErrUnauthenticated
	}
	m.view = v
	m.selected = nil
	m.selectedCatalog = nil
	return nil
}

// GetStarted is the landing page call to action.
func (m *Manager) GetStarted() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.sess.Authenticated() {
		m.authPrompt = true
		return ErrUnauthenticated
	}
	m.view = ViewCreate
	return nil
}

func (m *Manager) OpenAuthPrompt() {
	m.mu.Lock()
	m.authPrompt = true
	m.mu.Unlock()
}

func (m *Manager) CloseAuthPrompt() {
	m.mu.Lock()
	m.authPrompt = false
	m.mu.Unlock()
}

// CompleteAuth installs the session from a successful register or login.
func (m *Manager) CompleteAuth(ctx context.Context, s session.Session) error {
	if !s.Authenticated() {
		return ErrUnauthenticated
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *s.User
	s.User = &u
	m.sess = s
	m.view = ViewDashboard
	m.authPrompt = false
	return m.logSave(ctx, m.persist.SaveUser(ctx, &u))
}

// Logout forgets the user and every owned record, in memory and on disk.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = session.Session{}
	m.courses = []course.Course{}
	m.enrollments = []string{}
	m.selected = nil
	m.selectedCatalog = nil
	m.view = ViewHome
	return m.logSave(ctx, m.persist.Clear(ctx))
}

// CreateCourse adds a generated course to the front of the list.  Missing
// id and createdAt are filled in.
func (m *Manager) CreateCourse(ctx context.Context, c course.Course) (course.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c = c.Clone()
	if c.ID == "" {
		c.ID = m.newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = m.now()
	}
	m.courses = append([]course.Course{c}, m.courses...)
	m.view = ViewDashboard
	return c.Clone(), m.logSave(ctx, m.persist.SaveCourses(ctx, m.courses))
}

func (m *Manager) SelectCourse(c course.Course) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c = c.Clone()
	m.selected = &c
	m.view = ViewCourse
}

// UpdateCourse replaces the course with the same id wholesale, selects it
// and pushes its progress to the server.
func (m *Manager) UpdateCourse(ctx context.Context, c course.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateLocked(ctx, c)
}

func (m *Manager) updateLocked(ctx context.Context, c course.Course) error {
	c = c.Clone()
	for i := range m.courses {
		if m.courses[i].ID == c.ID {
			m.courses[i] = c.Clone()
		}
	}
	m.selected = &c
	err := m.logSave(ctx, m.persist.SaveCourses(ctx, m.courses))
	m.syncProgress(ctx, c)
	return err
}

func (m *Manager) SelectCatalogCourse(it catalog.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedCatalog = &it
	m.view = ViewCatalogDetail
}

func (m *Manager) BackToCatalog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = ViewCatalog
	m.selectedCatalog = nil
}

func (m *Manager) BackToDashboard() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = ViewDashboard
	m.selected = nil
}

// Enroll copies the catalog item into the owned course list.  Enrolling
// twice is a no-op apart from the view change.
func (m *Manager) Enroll(ctx context.Context, it catalog.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.sess.Authenticated() {
		m.authPrompt = true
		return ErrUnauthenticated
	}
	m.view = ViewDashboard
	if m.isEnrolledLocked(it.ID) {
		return nil
	}

	c := it.Materialize(m.now())
	m.courses = append([]course.Course{c}, m.courses...)
	m.enrollments = append(m.enrollments, it.ID)
	return errors.Join(
		m.logSave(ctx, m.persist.SaveCourses(ctx, m.courses)),
		m.logSave(ctx, m.persist.SaveEnrollments(ctx, m.enrollments)),
	)
}

func (m *Manager) IsEnrolled(catalogID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isEnrolledLocked(catalogID)
}

func (m *Manager) isEnrolledLocked(id string) bool {
	if slices.Contains(m.enrollments, id) {
		return true
	}
	return slices.ContainsFunc(m.courses, func(c course.Course) bool { return c.ID == id })
}

// StartLearning opens the owned copy of a catalog course.  It reports false
// and changes nothing when the user is not enrolled.
func (m *Manager) StartLearning(catalogID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.courses {
		if c.ID == catalogID {
			c = c.Clone()
			m.selected = &c
			m.view = ViewCourse
			return true
		}
	}
	return false
}

func (m *Manager) CompleteLesson(ctx context.Context, i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return ErrNoCourse
	}
	c, err := course.CompleteLesson(*m.selected, i, m.now())
	if err != nil {
		return err
	}
	return m.updateLocked(ctx, c)
}

func (m *Manager) CompleteQuiz(ctx context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return ErrNoCourse
	}
	return m.updateLocked(ctx, course.CompleteQuiz(*m.selected, score, m.now()))
}

func (m *Manager) CompleteFlashcards(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return ErrNoCourse
	}
	return m.updateLocked(ctx, course.CompleteFlashcards(*m.selected, m.now()))
}

// Stats summarises the owned courses for the dashboard.
func (m *Manager) Stats() course.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return course.Summarize(m.courses)
}

// Wait blocks until every background progress push has finished.
func (m *Manager) Wait() { m.pending.Wait() }

// syncProgress fires the remote update.  Local state is already committed
// and is never rolled back; failures are only logged.
func (m *Manager) syncProgress(ctx context.Context, c course.Course) {
	token := m.sess.Token()
	if m.remote == nil || token == "" {
		return
	}
	upd := api.ProgressUpdate{CourseID: c.ID, Progress: c.Progress, CompletedLessons: c.CompletedLessons}
	remote, log := m.remote, m.log
	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), remoteTimeout)
		defer cancel()
		if err := remote.UpdateProgress(rctx, token, upd); err != nil {
			log.Warn(rctx, "remote progress update failed", "course_id", upd.CourseID, "err", err)
		}
	}()
}

func (m *Manager) logSave(ctx context.Context, err error) error {
	if err != nil {
		m.log.Error(ctx, "persist client state", "err", err)
	}
	return err
}
