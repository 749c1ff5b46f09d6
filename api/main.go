package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workshop-hub/data/repository"
	"workshop-hub/data/users"
	"workshop-hub/data/workshops"

	"github.com/joho/godotenv"
)

type application struct {
	Addr      string
	DSN       string
	Repo      repository.Repo
	Workshops *workshops.Service
	Users     *users.Directory
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// optional .env for local runs; flags still win
	if err := godotenv.Load(); err == nil {
		slog.Info(".env loaded")
	}

	app := &application{}
	flag.StringVar(&app.Addr, "addr", envOr("ADDR", ":3000"), "HTTP listen address")
	flag.StringVar(&app.DSN, "dsn", os.Getenv("DATABASE_DSN"), "Postgres DSN; leave empty for the in-memory store")
	seed := flag.Bool("seed", true, "load the demo catalog into the in-memory store")
	flag.Parse()

	if app.DSN == "" {
		repo := repository.NewMemRepo()
		if *seed {
			if err := repository.SeedDemoData(repo); err != nil {
				slog.Error("failed to seed demo data", "error", err)
				os.Exit(1)
			}
			slog.Info("in-memory store seeded with demo catalog")
		}
		app.Repo = repo
	} else {
		db, err := app.ConnectToDB()
		if err != nil {
			slog.Error("failed to connect to db", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		sqlRepo := &repository.SqlRepo{DB: db}
		if err := sqlRepo.RunMigrations("workshop_hub"); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		app.Repo = sqlRepo
	}

	app.Workshops = workshops.NewService(app.Repo)
	app.Users = users.NewDirectory(app.Repo)

	srv := &http.Server{
		Addr:         app.Addr,
		Handler:      app.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", app.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server exited")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
