package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/DaanHessen/lifecounter/internal/store"
	"github.com/DaanHessen/lifecounter/internal/ui"
	"github.com/DaanHessen/lifecounter/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "PostgreSQL DSN (empty keeps everything in memory)")
	players := flag.Int("players", util.DefaultPlayers, "Number of players at the table")
	themeName := flag.String("theme", os.Getenv("LIFECOUNTER_THEME"), "Theme: catppuccin|dracula|gruvbox|solarized_dark")
	hideNames := flag.Bool("hide-names", false, "Hide player name labels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lifecounter [--dsn DSN] [--players N] [--theme NAME] [--hide-names] | migrate up|down | version\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("lifecounter", version)
			return
		case "migrate":
			if len(args) < 2 {
				log.Fatal("migrate requires 'up' or 'down'")
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			migrator, err := store.NewMigrator(*dsn)
			if err != nil {
				log.Fatal(err)
			}
			switch args[1] {
			case "up":
				if err := migrator.Up(ctx); err != nil && err != store.ErrNoChange {
					log.Fatal(err)
				}
				fmt.Println("Migrations applied")
			case "down":
				if err := migrator.Down(ctx); err != nil && err != store.ErrNoChange {
					log.Fatal(err)
				}
				fmt.Println("Migrations rolled back")
			default:
				log.Fatal("unknown migrate action; use up|down")
			}
			return
		default:
			flag.Usage()
			os.Exit(2)
		}
	}

	cfg := util.Config{
		DSN:       *dsn,
		Players:   *players,
		Theme:     *themeName,
		HideNames: *hideNames,
	}
	if cfg.Players < 1 || cfg.Players > 8 {
		log.Fatalf("players must be between 1 and 8, got %d", cfg.Players)
	}

	ctx := context.Background()
	st, closeStore := openStore(ctx, cfg)
	defer closeStore()

	if err := ui.Run(ctx, st, cfg); err != nil {
		log.Fatal(err)
	}
}

// openStore prefers Postgres and falls back to memory when no DSN is set.
func openStore(ctx context.Context, cfg util.Config) (ui.Store, func()) {
	if cfg.DSN == "" {
		log.Printf("no DSN configured; preferences and saved games last for this session only")
		return store.NewMemory(), func() {}
	}
	mig, err := store.NewMigrator(cfg.DSN)
	if err != nil {
		log.Fatalf("migrations init failed: %v", err)
	}
	migCtx, cancelMig := context.WithTimeout(ctx, 30*time.Second)
	defer cancelMig()
	if err := mig.Up(migCtx); err != nil && err != store.ErrNoChange {
		log.Fatalf("migrations failed: %v", err)
	}
	db, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	pg := store.NewPostgres(db)
	return pg, func() { _ = pg.Close() }
}
