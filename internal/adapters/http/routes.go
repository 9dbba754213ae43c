package web

import (
	"net/http"

	"jecati/internal/adapters/http/middleware"
)

// registerRoutes wires every route onto the mux. Admin routes and the data
// dump sit behind the session gate; everything else is public.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Public marketing pages
	mux.HandleFunc("GET /", s.handleLanding)
	mux.HandleFunc("GET /contact-us", s.handleContactUs)
	mux.HandleFunc("POST /contact-us", s.handleSubmitInquiry)
	mux.HandleFunc("GET /about-us", s.handleAboutUs)
	mux.HandleFunc("GET /services", s.handleServices)
	mux.HandleFunc("GET /pricing", s.handlePricing)

	// Auth
	mux.HandleFunc("GET /admin/login", s.handleLoginPage)
	mux.HandleFunc("POST /admin/login", s.handleLogin)
	mux.HandleFunc("GET /admin/signup", s.handleSignupPage)
	mux.HandleFunc("POST /admin/signup", s.handleSignup)
	mux.HandleFunc("GET /verify", s.handleVerify)
	mux.HandleFunc("GET /admin/logout", s.handleLogout)

	// Gated admin area
	mux.Handle("GET /admin/admin", middleware.RequireAdmin(http.HandlerFunc(s.handleAdminDashboard)))
	mux.Handle("POST /admin/add-edit-service", middleware.RequireAdmin(http.HandlerFunc(s.handleUpsertService)))
	mux.Handle("POST /admin/add-edit-service/{id}", middleware.RequireAdmin(http.HandlerFunc(s.handleUpsertService)))
	mux.Handle("POST /admin/drop-services", middleware.RequireAdmin(http.HandlerFunc(s.handleDropServices)))
	mux.Handle("POST /admin/change-password", middleware.RequireAdmin(http.HandlerFunc(s.handleChangePassword)))
	mux.Handle("GET /getData", middleware.RequireAdmin(http.HandlerFunc(s.handleGetData)))

	// Static assets, uploaded service images included
	mux.Handle("GET /images/", http.StripPrefix("/images/",
		http.FileServer(http.Dir(s.cfg.StaticDir+"/images"))))
	mux.Handle("GET /css/", http.StripPrefix("/css/",
		http.FileServer(http.Dir(s.cfg.StaticDir+"/css"))))
	mux.Handle("GET /js/", http.StripPrefix("/js/",
		http.FileServer(http.Dir(s.cfg.StaticDir+"/js"))))
}
