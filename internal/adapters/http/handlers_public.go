package web

import (
	"net/http"
	"time"

	serviceStore "jecati/internal/adapters/storage/service"
	"jecati/internal/application/orchestrators"
	"jecati/internal/domain/transaction"
)

// handleLanding renders the landing page.
func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	// ServeMux treats "/" as a catch-all; anything else is a 404 here.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "landing.html", map[string]any{
		"Title": "Jecati Construction Services",
		"Copy":  landingCopy,
	})
}

func (s *Server) handleAboutUs(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "about_us.html", map[string]any{
		"Title": "About Us",
		"Copy":  aboutCopy,
	})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "services.html", map[string]any{
		"Title": "Our Services",
		"Copy":  servicesCopy,
	})
}

func (s *Server) handleContactUs(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "contact_us.html", map[string]any{
		"Title": "Contact Us",
		"Copy":  contactCopy,
	})
}

// handlePricing renders the public price list. Soft-deleted and
// not-available items are excluded.
func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	items, err := s.stores.ServiceStore.List(r.Context(), serviceStore.ListFilter{ListedOnly: true})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "pricing.html", map[string]any{
		"Title":    "Price List",
		"Services": items,
	})
}

// inquiryRequest is the JSON payload for POST /contact-us.
type inquiryRequest struct {
	ContactPerson string        `json:"contactPerson" validate:"required"`
	ContactNumber string        `json:"contactNumber" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Services      []inquiryLine `json:"services" validate:"required,min=1,dive"`
	DueDate       string        `json:"dueDate" validate:"required"`
	Location      string        `json:"location" validate:"required"`
}

type inquiryLine struct {
	Unit     string `json:"unit" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// handleSubmitInquiry records a customer inquiry from the contact page.
func (s *Server) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := strictDecode(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
		return
	}

	lines := make([]transaction.Line, 0, len(req.Services))
	for _, l := range req.Services {
		lines = append(lines, transaction.Line{Unit: l.Unit, Quantity: l.Quantity})
	}

	input := orchestrators.SubmitInquiryInput{
		ContactPerson: req.ContactPerson,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Services:      lines,
		DueDate:       dueDate,
		Location:      req.Location,
	}
	deps := orchestrators.SubmitInquiryDeps{
		TransactionStore: s.stores.TransactionStore,
		Sender:           s.sender,
		BusinessInbox:    s.cfg.BusinessInbox,
		EmailFrom:        s.cfg.EmailFrom,
		GenerateID:       generateID,
		Now:              timeNow,
	}

	t, err := orchestrators.ExecuteSubmitInquiry(r.Context(), input, deps)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": t.ID, "status": t.Status})
}

// handleGetData dumps all three collections as JSON. The route sits behind
// the session gate.
func (s *Server) handleGetData(w http.ResponseWriter, r *http.Request) {
	result, err := orchestrators.ExecuteDashboard(r.Context(), orchestrators.DashboardDeps{
		AdminStore:       s.stores.AdminStore,
		ServiceStore:     s.stores.ServiceStore,
		TransactionStore: s.stores.TransactionStore,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"admin":       result.Admins,
		"services":    result.Services,
		"transaction": result.Transactions,
	})
}
