package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"jecati/internal/adapters/http/middleware"
	"jecati/internal/application/orchestrators"
)

// handleLoginPage renders the login form, or bounces a live session
// straight to the dashboard.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/admin/admin", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "login.html", map[string]any{
		"Title":     "Admin Login",
		"CSRFToken": csrf.Token(r),
	})
}

// handleLogin authenticates and establishes a session. Failures render
// inline on the form, never as bare status codes.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
		AdminStore: s.stores.AdminStore,
	})
	if err != nil {
		renderTemplate(w, r, "login.html", map[string]any{
			"Title":     "Admin Login",
			"CSRFToken": csrf.Token(r),
			"Error":     err.Error(),
		})
		return
	}

	token, err := s.sessions.Create(r.Context(), result.AdminID, result.Email)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/admin/admin", http.StatusSeeOther)
}

// handleSignupPage renders the signup form.
func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "signup.html", map[string]any{
		"Title":     "Admin Signup",
		"CSRFToken": csrf.Token(r),
	})
}

// handleSignup creates an unverified account and mails the verification
// link to the business inbox for approval.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SignupInput{
		Email:           r.FormValue("email"),
		Fullname:        r.FormValue("fullname"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm"),
	}
	deps := orchestrators.SignupDeps{
		AdminStore:    s.stores.AdminStore,
		Sender:        s.sender,
		BaseURL:       s.cfg.BaseURL,
		BusinessInbox: s.cfg.BusinessInbox,
		EmailFrom:     s.cfg.EmailFrom,
		GenerateID:    generateID,
		GenerateToken: generateID,
		Now:           timeNow,
	}

	if _, err := orchestrators.ExecuteSignup(r.Context(), input, deps); err != nil {
		renderTemplate(w, r, "signup.html", map[string]any{
			"Title":     "Admin Signup",
			"CSRFToken": csrf.Token(r),
			"Error":     err.Error(),
		})
		return
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// handleVerify completes account verification from the emailed link.
// Responses are plain text; the link is opened from an email client, not
// from inside the site.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	_, err := orchestrators.ExecuteVerify(r.Context(), token, orchestrators.VerifyDeps{
		AdminStore: s.stores.AdminStore,
	})
	if err != nil {
		if errors.Is(err, orchestrators.ErrTokenNotFound) {
			http.Error(w, "Invalid verification token", http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Account verified successfully"))
}

// handleLogout destroys the session and redirects to the login page. The
// server-side delete is best-effort; the cookie is cleared either way.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		if err := s.sessions.Delete(r.Context(), token); err != nil {
			slog.Error("auth_event", "event", "logout_delete_failed", "error", err.Error())
		}
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
