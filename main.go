package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ME-Tii/customer-list/internal/account"
	"github.com/ME-Tii/customer-list/internal/chat"
	"github.com/ME-Tii/customer-list/internal/config"
	"github.com/ME-Tii/customer-list/internal/customer"
	"github.com/ME-Tii/customer-list/internal/database"
	"github.com/ME-Tii/customer-list/internal/presence"
	"github.com/ME-Tii/customer-list/internal/results"
	"github.com/ME-Tii/customer-list/internal/router"
	"github.com/ME-Tii/customer-list/internal/store"
	"github.com/ME-Tii/customer-list/internal/upload"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create db dir: %v", err)
	}
	if err := ensureDir(cfg.Storage.DataDir); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Storage.UploadsDir); err != nil {
		log.Fatalf("create uploads dir: %v", err)
	}

	// init account database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// document-backed stores
	msgLog, err := chat.NewLog(
		store.NewDocument(filepath.Join(cfg.Storage.DataDir, "messages.json")),
		cfg.Chat.HistoryLimit, cfg.Chat.MaxBodyChars)
	if err != nil {
		log.Fatalf("load message log: %v", err)
	}
	boxes, err := chat.NewMailboxes(
		store.NewDocument(filepath.Join(cfg.Storage.DataDir, "private_messages.json")))
	if err != nil {
		log.Fatalf("load mailboxes: %v", err)
	}
	registry, err := customer.NewRegistry(filepath.Join(cfg.Storage.DataDir, "customers.xml"))
	if err != nil {
		log.Fatalf("load customer registry: %v", err)
	}

	// presence
	sessions := presence.NewStore(time.Duration(cfg.Presence.TimeoutMinutes) * time.Minute)
	coord := presence.NewCoordinator(sessions, msgLog, account.NewDirectory(db))

	r := router.SetupRouter(cfg, router.Deps{
		DB:        db,
		Log:       msgLog,
		Mailboxes: boxes,
		Registry:  registry,
		Presence:  coord,
		Uploads:   upload.NewSaver(cfg.Storage.UploadsDir),
		Scanner:   results.NewScanner(cfg.Results.Dir),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
