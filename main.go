package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/sorting-hat/cliparse"
	"github.com/danielhkuo/sorting-hat/middleware"
	"github.com/danielhkuo/sorting-hat/router"
	"github.com/danielhkuo/sorting-hat/store"
	"github.com/danielhkuo/sorting-hat/teams"
)

func main() {
	var err error

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the team roster
	roster := teams.Default()
	if cfg.TeamsFile != "" {
		roster, err = teams.Load(cfg.TeamsFile)
		if err != nil {
			slog.Error("failed to load team roster", "error", err, "file", cfg.TeamsFile)
			os.Exit(1)
		}
	}
	slog.Info("Team roster loaded", "teams", roster.Names())

	// Open the embedded database
	dbConn, err := sql.Open("sqlite", store.DSN(cfg.DatabasePath))
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := store.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "path", cfg.DatabasePath)

	// Create router
	mux := router.NewRouter(dbConn, roster, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "base_url", cfg.BaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
