package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/live-survey/auth"
	"github.com/danielhkuo/live-survey/cliparse"
	"github.com/danielhkuo/live-survey/db"
	"github.com/danielhkuo/live-survey/hub"
	"github.com/danielhkuo/live-survey/middleware"
	"github.com/danielhkuo/live-survey/processor"
	"github.com/danielhkuo/live-survey/router"
	"github.com/danielhkuo/live-survey/server"
	"github.com/danielhkuo/live-survey/survey"
)

func main() {
	var err error

	// Parse configuration
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Restore the previous survey, if any
	store, entries := openStore(cfg)
	state, err := survey.New(cfg.MaxEntries, entries)
	if err != nil {
		slog.Error("stored survey does not fit configuration", "max_entries", cfg.MaxEntries, "error", err)
		os.Exit(1)
	}
	slog.Info("Survey ready", "entries", state.Len(), "max_entries", cfg.MaxEntries)

	h := hub.New()
	proc := processor.New(state, h)
	srv := server.New(proc, cfg.SendBacklog, cfg.AdminKeySalt)

	if cfg.AdminKeySalt != "" {
		slog.Info("Admin enabled", "admin_key", auth.GenerateAdminKey(auth.AdminScope, cfg.AdminKeySalt))
	}

	// Create router
	mux := router.NewRouter(proc, srv, cfg)

	// Create server
	httpServer := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// Optional line protocol listener
	var ln net.Listener
	if cfg.TCPPort > 0 {
		ln, err = net.Listen("tcp", ":"+strconv.Itoa(cfg.TCPPort))
		if err != nil {
			slog.Error("tcp listen failed", "port", cfg.TCPPort, "error", err)
			os.Exit(1)
		}
		go func() {
			if err := srv.ServeTCP(ln); err != nil {
				slog.Error("tcp server stopped", "error", err)
			}
		}()
		slog.Info("Listening for line clients", "port", cfg.TCPPort)
	}

	// Optional periodic persistence
	stopSaving := make(chan struct{})
	if store != nil && cfg.SaveInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.SaveInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					save(store, proc)
				case <-stopSaving:
					return
				}
			}
		}()
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		httpServer.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Stop accepting, disconnect everyone, then persist
	if ln != nil {
		ln.Close()
	}
	h.CloseAll()
	close(stopSaving)

	if store != nil {
		save(store, proc)
	}
}

// openStore connects to the configured database and loads the saved
// survey. A corrupt store is fatal. An unreachable or unreadable one is
// not: the survey starts empty and nothing is persisted.
func openStore(cfg cliparse.Config) (*db.Store, []survey.Entry) {
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database configuration invalid", "error", err)
		os.Exit(1)
	}

	if err := prepare(conn); err != nil {
		slog.Warn("database unavailable, running without persistence", "type", cfg.DatabaseType, "error", err)
		conn.Close()
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, entries, err := db.Restore(ctx, db.NewStore(conn))
	if err != nil {
		slog.Error("stored survey is corrupt", "error", err)
		os.Exit(1)
	}
	if store == nil {
		conn.Close()
	}
	return store, entries
}

func prepare(conn *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Verify connection
	if err := conn.PingContext(ctx); err != nil {
		return err
	}

	// Create schema (tables)
	return db.CreateSchema(conn)
}

func save(store *db.Store, proc *processor.Processor) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries := proc.Entries()
	if err := store.Save(ctx, entries); err != nil {
		slog.Error("failed to save survey", "error", err)
		return
	}

	var total int64
	for _, e := range entries {
		total += e.Votes
	}
	slog.Info("Survey saved", "entries", len(entries), "total_votes", humanize.Comma(total))
}
