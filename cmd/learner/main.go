package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iliyamo/edusynth/internal/catalog"
	"github.com/iliyamo/edusynth/internal/client/api"
	"github.com/iliyamo/edusynth/internal/client/cli"
	"github.com/iliyamo/edusynth/internal/client/state"
	"github.com/iliyamo/edusynth/internal/client/storage"
	"github.com/iliyamo/edusynth/internal/logging"
)

func main() {
	server := flag.String("a", "http://localhost:8080", "base URL of the edusynth server")
	dbPath := flag.String("db", "edusynth.db", "local state file")
	verbose := flag.Bool("v", false, "log background sync to stderr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatalf("local state: %v", err)
	}
	defer store.Close()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	client := api.New(*server, nil)
	m := state.New(ctx, store, state.WithRemote(client), state.WithLogger(logger))

	app := cli.NewApp(m, client, catalog.Default(), os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("learner: %v", err)
	}
	m.Wait()
}
