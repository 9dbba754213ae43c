package web

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/csrf"

	"jecati/internal/adapters/http/middleware"
	"jecati/internal/application/orchestrators"
)

// maxUploadBytes caps service image uploads at 10 MB.
const maxUploadBytes = 10 << 20

// handleAdminDashboard renders the admin page from the three collections.
func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := orchestrators.ExecuteDashboard(r.Context(), orchestrators.DashboardDeps{
		AdminStore:       s.stores.AdminStore,
		ServiceStore:     s.stores.ServiceStore,
		TransactionStore: s.stores.TransactionStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Title":        "Admin Dashboard",
		"CSRFToken":    csrf.Token(r),
		"Admins":       result.Admins,
		"Transactions": result.Transactions,
		"Services":     result.Services,
		"UserEmail":    sess.Email,
	})
}

// handleUpsertService creates or edits a catalog item from the multipart
// form. The image file is required on both paths and is saved under its
// original base filename; a re-upload of the same name overwrites.
func (s *Server) handleUpsertService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, orchestrators.ErrImageRequired.Error())
		return
	}
	defer file.Close()

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "price must be a number")
		return
	}

	filename := filepath.Base(header.Filename)
	if err := s.saveUpload(file, filename); err != nil {
		internalError(w, err)
		return
	}

	input := orchestrators.UpsertServiceInput{
		ID:            r.PathValue("id"),
		Category:      r.FormValue("category"),
		Unit:          r.FormValue("unit"),
		Price:         price,
		ImageFilename: filename,
	}
	deps := orchestrators.UpsertServiceDeps{
		ServiceStore: s.stores.ServiceStore,
		GenerateID:   generateID,
		Now:          timeNow,
	}

	if _, err := orchestrators.ExecuteUpsertService(r.Context(), input, deps); err != nil {
		if errors.Is(err, orchestrators.ErrServiceNotFound) {
			jsonError(w, http.StatusNotFound, err.Error())
			return
		}
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	http.Redirect(w, r, "/admin/admin", http.StatusSeeOther)
}

// saveUpload writes an uploaded image into the configured upload directory.
func (s *Server) saveUpload(src io.Reader, filename string) error {
	dst, err := os.Create(filepath.Join(s.cfg.UploadDir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}

// dropServicesRequest is the JSON payload for POST /admin/drop-services.
// The field name matches what the dashboard script has always sent.
type dropServicesRequest struct {
	Unit []string `json:"unit" validate:"required,min=1"`
}

// handleDropServices soft-deletes the named catalog items and answers a
// JSON ack with the count actually dropped.
func (s *Server) handleDropServices(w http.ResponseWriter, r *http.Request) {
	var req dropServicesRequest
	if err := strictDecode(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	dropped, err := orchestrators.ExecuteDropServices(r.Context(), req.Unit, orchestrators.DropServicesDeps{
		ServiceStore: s.stores.ServiceStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"dropped": dropped})
}

// handleChangePassword updates the signed-in admin's password from the
// profile editor's confirmed fields.
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ChangePasswordInput{
		AdminID:         sess.AdminID,
		OldPassword:     r.FormValue("old_password"),
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := orchestrators.ExecuteChangePassword(r.Context(), input, orchestrators.ChangePasswordDeps{
		AdminStore: s.stores.AdminStore,
	}); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	http.Redirect(w, r, "/admin/admin", http.StatusSeeOther)
}
