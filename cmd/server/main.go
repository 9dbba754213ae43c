package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "jecati/internal/adapters/email"
	web "jecati/internal/adapters/http"
	"jecati/internal/adapters/storage"
	adminStore "jecati/internal/adapters/storage/admin"
	serviceStore "jecati/internal/adapters/storage/service"
	sessionStore "jecati/internal/adapters/storage/session"
	transactionStore "jecati/internal/adapters/storage/transaction"
	"jecati/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.MustLoad()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	log.Println("Database initialized successfully!")

	stores := &web.Stores{
		AdminStore:       adminStore.NewSQLiteStore(db),
		ServiceStore:     serviceStore.NewSQLiteStore(db),
		TransactionStore: transactionStore.NewSQLiteStore(db),
	}
	sessions := sessionStore.NewSQLiteStore(db)

	// Directory the service image uploads land in
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	// Configure email sender
	var sender emailPkg.Sender
	if cfg.ResendKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.Env == "production" {
			log.Println("WARNING: JECATI_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set JECATI_RESEND_KEY for real delivery)")
		}
	}

	srv := web.NewServer(*cfg, stores, sessions, sender)
	mux := web.NewMux(srv)

	log.Printf("Jecati %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
