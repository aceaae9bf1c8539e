// Package cli implements the maintenance and serve commands.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/truethari/SocialMedia-API/app/config"
	"github.com/truethari/SocialMedia-API/app/routes"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// HandleCommand dispatches a CLI command
func HandleCommand(args []string) {
	switch args[0] {
	case "serve":
		serve()
	case "init":
		initDB()
	case "clean":
		clean()
	case "backup":
		backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(args[1])
	}
}

// dataPath returns the database directory. The maintenance commands only
// need this one setting, so they read it directly instead of requiring the
// full server configuration.
func dataPath() string {
	_ = godotenv.Load()
	if p := os.Getenv("DB_PATH"); p != "" {
		return p
	}
	return "data/badger"
}

// serve runs the API server until interrupted
func serve() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg, log)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.WithField("addr", cfg.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
}

// initDB initializes a new empty database
func initDB() {
	dbPath := dataPath()
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		os.Exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath))
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database after confirmation
func clean() {
	dbPath := dataPath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Database cleaned successfully")
}

// backup writes a full backup next to the database
func backup() {
	dbPath := dataPath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := filepath.Join(filepath.Dir(dbPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		os.Exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath))
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	if err := backupTo(db, backupFile); err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore replaces the database with the contents of a backup file
func restore(backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	dbPath := dataPath()
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dbPath); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		os.Exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath))
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := restoreFrom(db, backupFile); err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database restored successfully")
}

func backupTo(db *badger.DB, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = db.Backup(f, 0)
	return err
}

func restoreFrom(db *badger.DB, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return db.Load(f, 4)
}
