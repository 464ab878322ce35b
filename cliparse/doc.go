// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabasePath: SQLite database file (default: ./sortinghat.db)
  - BaseURL: Absolute base URL used in QR deep links (default: http://localhost:<port>)
  - TeamsFile: Optional team configuration JSON file
  - StaticDir: Directory for static pages (default: ./static)

# CLI Flags

	-p      Server port
	-d      SQLite database file path
	-u      Base URL for QR deep links
	-teams  Team configuration JSON file
	-s      Static pages directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_PATH → -d
	BASE_URL      → -u
	TEAMS_FILE    → -teams
	STATIC_DIR    → -s

CLI flags take precedence over environment variables. Every setting has a
default, so the server starts with no configuration at all.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", store.DSN(cfg.DatabasePath))
	// ...
	mux := router.NewRouter(db, teamCfg, cfg)
*/
package cliparse
