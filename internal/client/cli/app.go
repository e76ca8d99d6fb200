// Package cli is a line-oriented front end for the learner client.  It drives
// the state manager the same way the web views do: every command maps onto
// one state transition.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iliyamo/edusynth/internal/catalog"
	"github.com/iliyamo/edusynth/internal/client/api"
	"github.com/iliyamo/edusynth/internal/client/session"
	"github.com/iliyamo/edusynth/internal/client/state"
	"github.com/iliyamo/edusynth/internal/course"
)

// Authenticator is the part of the API client the CLI needs.
type Authenticator interface {
	Register(ctx context.Context, fullName, email, password string) (session.Session, error)
	Login(ctx context.Context, email, password string) (session.Session, error)
}

type App struct {
	state   *state.Manager
	auth    Authenticator
	catalog *catalog.Catalog
	in      *bufio.Reader
	out     io.Writer
}

func NewApp(m *state.Manager, auth Authenticator, cat *catalog.Catalog, in io.Reader, out io.Writer) *App {
	if cat == nil {
		cat = catalog.Default()
	}
	return &App{state: m, auth: auth, catalog: cat, in: bufio.NewReader(in), out: out}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) register(ctx context.Context) error {
	name, err := prompt(a.in, a.out, "Full name")
	if err != nil {
		return err
	}
	email, err := prompt(a.in, a.out, "Email")
	if err != nil {
		return err
	}
	pass, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	s, err := a.auth.Register(ctx, name, email, pass)
	if err != nil {
		return err
	}
	if err := a.state.CompleteAuth(ctx, s); err != nil {
		return err
	}
	a.printf("Welcome, %s\n", s.User.FullName)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := prompt(a.in, a.out, "Email")
	if err != nil {
		return err
	}
	pass, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	s, err := a.auth.Login(ctx, email, pass)
	if err != nil {
		return err
	}
	if err := a.state.CompleteAuth(ctx, s); err != nil {
		return err
	}
	a.printf("Logged in as %s\n", s.User.Email)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.state.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out\n")
	return nil
}

func (a *App) browse(search string) error {
	if err := a.state.Navigate(state.ViewCatalog); err != nil {
		return err
	}
	items := a.catalog.Filter(catalog.Query{Search: search, Sort: catalog.SortPopular})
	if len(items) == 0 {
		a.printf("No courses match %q\n", search)
		return nil
	}
	for _, it := range items {
		mark := " "
		if a.state.IsEnrolled(it.ID) {
			mark = "*"
		}
		a.printf("%s %-10s %-45s %s  %.1f  %d students\n", mark, it.ID, it.Title, it.Level, it.Rating, it.StudentsEnrolled)
	}
	return nil
}

func (a *App) show(id string) error {
	it, ok := a.catalog.ByID(id)
	if !ok {
		return fmt.Errorf("no catalog course %q", id)
	}
	a.state.SelectCatalogCourse(it)
	a.printf("%s\n%s\nInstructor: %s  Duration: %s  Lessons: %d\n", it.Title, it.Description, it.Instructor, it.Duration, it.TotalLessons)
	for _, w := range it.WhatYouLearn {
		a.printf("  - %s\n", w)
	}
	return nil
}

func (a *App) enroll(ctx context.Context, id string) error {
	it, ok := a.catalog.ByID(id)
	if !ok {
		return fmt.Errorf("no catalog course %q", id)
	}
	if err := a.state.Enroll(ctx, it); err != nil {
		return err
	}
	a.printf("Enrolled in %s\n", it.Title)
	return nil
}

func (a *App) learn(id string) error {
	if !a.state.StartLearning(id) {
		a.printf("Not enrolled in %s\n", id)
		return nil
	}
	a.printCourse(*a.state.State().Selected)
	return nil
}

func (a *App) dashboard() error {
	if err := a.state.Navigate(state.ViewDashboard); err != nil {
		return err
	}
	courses := a.state.State().Courses
	if len(courses) == 0 {
		a.printf("No courses yet\n")
		return nil
	}
	for _, c := range courses {
		a.printf("%-36s %-45s %3d%%\n", c.ID, c.Title, c.Progress)
	}
	return nil
}

func (a *App) lesson(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("lesson number: %w", err)
	}
	if err := a.state.CompleteLesson(ctx, n-1); err != nil {
		return err
	}
	a.printCourse(*a.state.State().Selected)
	return nil
}

func (a *App) quiz(ctx context.Context, arg string) error {
	score, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("quiz score: %w", err)
	}
	if err := a.state.CompleteQuiz(ctx, score); err != nil {
		return err
	}
	a.printCourse(*a.state.State().Selected)
	return nil
}

func (a *App) flashcards(ctx context.Context) error {
	if err := a.state.CompleteFlashcards(ctx); err != nil {
		return err
	}
	a.printCourse(*a.state.State().Selected)
	return nil
}

func (a *App) stats() {
	s := a.state.Stats()
	a.printf("Courses: %d  Completed: %d  Average: %d%%  Lessons: %d/%d\n",
		s.TotalCourses, s.CompletedCourses, s.AverageProgress, s.CompletedLessons, s.TotalLessons)
}

func (a *App) printCourse(c course.Course) {
	a.printf("%s  %d%%\n", c.Title, c.Progress)
	for i, l := range c.Lessons {
		done := " "
		if l.IsCompleted {
			done = "x"
		}
		a.printf("  [%s] %d. %s\n", done, i+1, l.Title)
	}
}

// explain turns state and API errors into something a learner can act on.
func explain(err error) string {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, state.ErrUnauthenticated):
		return "Please log in or register first"
	case errors.Is(err, state.ErrNoCourse):
		return "Open a course with 'learn <id>' first"
	case errors.Is(err, course.ErrLessonIndex):
		return "No such lesson"
	default:
		msg := err.Error()
		if msg == "" {
			return "Something went wrong"
		}
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
}
