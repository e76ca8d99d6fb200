package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

const helpGuest = "Commands: register, login, catalog [search], show <id>, stats, exit"
const helpUser = "Commands: catalog [search], show <id>, enroll <id>, learn <id>, courses, lesson <n>, quiz <score>, flashcards, stats, logout, exit"

// Run reads commands until exit, EOF or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.printf("EduSynth learner (type 'help' for commands)\n")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.printf("%s> ", a.status())
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if quit := a.dispatch(ctx, fields[0], fields[1:]); quit {
				return nil
			}
		}
		if eof {
			a.printf("\n")
			return nil
		}
	}
}

func (a *App) status() string {
	if u := a.state.State().User; u != nil {
		return "edusynth (" + u.Email + ")"
	}
	return "edusynth"
}

// dispatch runs one command and reports whether the loop should stop.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	var err error
	switch cmd {
	case "help":
		if a.state.Session().Authenticated() {
			a.printf("%s\n", helpUser)
		} else {
			a.printf("%s\n", helpGuest)
		}
	case "register":
		err = a.register(ctx)
	case "login":
		err = a.login(ctx)
	case "logout":
		err = a.logout(ctx)
	case "catalog":
		err = a.browse(strings.Join(args, " "))
	case "show":
		err = withArg(args, a.show)
	case "enroll":
		err = withArg(args, func(id string) error { return a.enroll(ctx, id) })
	case "learn":
		err = withArg(args, a.learn)
	case "courses", "dashboard":
		err = a.dashboard()
	case "lesson":
		err = withArg(args, func(n string) error { return a.lesson(ctx, n) })
	case "quiz":
		err = withArg(args, func(s string) error { return a.quiz(ctx, s) })
	case "flashcards":
		err = a.flashcards(ctx)
	case "stats":
		a.stats()
	case "exit", "quit":
		a.printf("Bye!\n")
		return true
	default:
		a.printf("Unknown command %q, type 'help'\n", cmd)
	}
	if err != nil {
		a.printf("%s\n", explain(err))
	}
	return false
}

var errMissingArg = errors.New("missing argument")

func withArg(args []string, fn func(string) error) error {
	if len(args) == 0 {
		return errMissingArg
	}
	return fn(args[0])
}
