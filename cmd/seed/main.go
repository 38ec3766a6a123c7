package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"explorer/internal/config"
	"explorer/internal/repository"
	"explorer/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed folders")
	clearData := flag.Bool("clear-data", false, "Clear all folders and files (keep schema)")
	fixturePath := flag.String("fixture", "", "Path to a YAML fixture (defaults to the embedded sample tree)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	switch {
	case *clearData:
		log.Printf("🧹 Clearing data only (environment: %s, store: %s, prefix: %s)", cfg.Environment, cfg.StoreDriver, cfg.TablePrefix)
	case *schemaOnly:
		log.Printf("🏗️  Setting up schema only (environment: %s, store: %s, prefix: %s)", cfg.Environment, cfg.StoreDriver, cfg.TablePrefix)
	default:
		log.Printf("🌱 Seeding database (environment: %s, store: %s, prefix: %s)", cfg.Environment, cfg.StoreDriver, cfg.TablePrefix)
	}

	// Parse the fixture before touching the database
	var fixture *seed.Fixture
	if !*schemaOnly && !*clearData {
		if *fixturePath != "" {
			fixture, err = seed.LoadFile(*fixturePath)
		} else {
			fixture, err = seed.Default()
		}
		if err != nil {
			closeLog()
			log.Fatalf("Failed to load fixture: %v", err)
		}
	}

	err = run(cfg, logger, fixture, *dropTables, *schemaOnly, *clearData)
	closeLog()
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

// run opens the store and performs the requested action. Errors are returned
// so the deferred store close always runs.
func run(cfg *config.Config, logger *slog.Logger, fixture *seed.Fixture, dropTables, schemaOnly, clearData bool) error {
	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := store.Schema.DropAll(ctx); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := store.Schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	log.Println("✅ Schema ready")

	if schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return nil
	}

	seeder := seed.NewSeeder(store.Seeds, store.Folders, store.Tx, logger)

	if clearData {
		log.Println("🧹 Clearing existing folders and files...")
		if err := seeder.Clear(ctx); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}
		log.Println("✅ Data cleared successfully")
		return nil
	}

	log.Println("📝 Seeding folder tree...")
	stats, err := seeder.Apply(ctx, fixture)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	wantFolders, wantFiles := fixture.Counts()
	log.Printf("✅ Created %d/%d folders and %d/%d files", stats.Folders, wantFolders, stats.Files, wantFiles)

	total, err := seeder.CountFolders(ctx)
	if err != nil {
		return fmt.Errorf("count folders: %w", err)
	}
	log.Printf("🎉 Seeding complete! %d folders in store", total)
	return nil
}
