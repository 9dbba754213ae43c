// Package web builds the HTTP surface: the public marketing pages, the
// verification endpoint and the gated admin area.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator"

	"jecati/internal/adapters/email"
	"jecati/internal/adapters/http/middleware"
	adminStore "jecati/internal/adapters/storage/admin"
	serviceStore "jecati/internal/adapters/storage/service"
	sessionStore "jecati/internal/adapters/storage/session"
	transactionStore "jecati/internal/adapters/storage/transaction"
	"jecati/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	AdminStore       adminStore.Store
	ServiceStore     serviceStore.Store
	TransactionStore transactionStore.Store
}

// Server carries every dependency the handlers need. Handlers hang off it
// as methods so tests can build one around mocks.
type Server struct {
	stores   *Stores
	sessions sessionStore.Store
	sender   email.Sender
	cfg      config.Config
	validate *validator.Validate
}

// NewServer wires a Server from its dependencies.
func NewServer(cfg config.Config, s *Stores, sessions sessionStore.Store, sender email.Sender) *Server {
	return &Server{
		stores:   s,
		sessions: sessions,
		sender:   sender,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// loadCSRFKey decodes the hex CSRF secret from config (32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey(cfg config.Config) []byte {
	if cfg.CSRFKey != "" {
		key, err := hex.DecodeString(cfg.CSRFKey)
		if err != nil || len(key) != 32 {
			log.Fatal("JECATI_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if cfg.Env == "production" {
		log.Fatal("JECATI_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (form tokens won't survive restart). Set JECATI_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(srv *Server) http.Handler {
	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	csrfKey := loadCSRFKey(srv.cfg)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(srv.sessions),
		middleware.RateLimit(limiter),
	)
}
