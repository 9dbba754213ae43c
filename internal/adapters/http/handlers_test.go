package web

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	emailPkg "jecati/internal/adapters/email"
	"jecati/internal/adapters/http/middleware"
	serviceStorePkg "jecati/internal/adapters/storage/service"
	sessionStorePkg "jecati/internal/adapters/storage/session"
	"jecati/internal/config"
	adminDomain "jecati/internal/domain/admin"
	serviceDomain "jecati/internal/domain/service"
	transactionDomain "jecati/internal/domain/transaction"
)

// Mock implementations for testing

type mockAdminStore struct {
	admins map[string]adminDomain.Admin
}

func (m *mockAdminStore) GetByID(_ context.Context, id string) (adminDomain.Admin, error) {
	if a, ok := m.admins[id]; ok {
		return a, nil
	}
	return adminDomain.Admin{}, sql.ErrNoRows
}

func (m *mockAdminStore) GetByEmail(_ context.Context, email string) (adminDomain.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return adminDomain.Admin{}, sql.ErrNoRows
}

func (m *mockAdminStore) GetByVerificationToken(_ context.Context, token string) (adminDomain.Admin, error) {
	for _, a := range m.admins {
		if a.VerificationToken == token {
			return a, nil
		}
	}
	return adminDomain.Admin{}, sql.ErrNoRows
}

func (m *mockAdminStore) Save(_ context.Context, a adminDomain.Admin) error {
	if m.admins == nil {
		m.admins = make(map[string]adminDomain.Admin)
	}
	m.admins[a.ID] = a
	return nil
}

func (m *mockAdminStore) List(_ context.Context) ([]adminDomain.Admin, error) {
	var list []adminDomain.Admin
	for _, a := range m.admins {
		list = append(list, a)
	}
	return list, nil
}

func (m *mockAdminStore) Count(_ context.Context) (int, error) {
	return len(m.admins), nil
}

type mockServiceStore struct {
	services map[string]serviceDomain.Service
}

func (m *mockServiceStore) GetByID(_ context.Context, id string) (serviceDomain.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return serviceDomain.Service{}, sql.ErrNoRows
}

func (m *mockServiceStore) Save(_ context.Context, s serviceDomain.Service) error {
	if m.services == nil {
		m.services = make(map[string]serviceDomain.Service)
	}
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceStore) List(_ context.Context, filter serviceStorePkg.ListFilter) ([]serviceDomain.Service, error) {
	var list []serviceDomain.Service
	for _, s := range m.services {
		if filter.ListedOnly && !s.IsListed() {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

func (m *mockServiceStore) ListAll(ctx context.Context) ([]serviceDomain.Service, error) {
	return m.List(ctx, serviceStorePkg.ListFilter{})
}

type mockTransactionStore struct {
	transactions map[string]transactionDomain.Transaction
}

func (m *mockTransactionStore) GetByID(_ context.Context, id string) (transactionDomain.Transaction, error) {
	if t, ok := m.transactions[id]; ok {
		return t, nil
	}
	return transactionDomain.Transaction{}, sql.ErrNoRows
}

func (m *mockTransactionStore) Save(_ context.Context, t transactionDomain.Transaction) error {
	if m.transactions == nil {
		m.transactions = make(map[string]transactionDomain.Transaction)
	}
	m.transactions[t.ID] = t
	return nil
}

func (m *mockTransactionStore) List(_ context.Context) ([]transactionDomain.Transaction, error) {
	var list []transactionDomain.Transaction
	for _, t := range m.transactions {
		list = append(list, t)
	}
	return list, nil
}

// mockSessionStore is an in-memory session store for handler tests.
type mockSessionStore struct {
	sessions map[string]sessionStorePkg.Session
}

func (m *mockSessionStore) Create(_ context.Context, adminID, email string) (string, error) {
	if m.sessions == nil {
		m.sessions = make(map[string]sessionStorePkg.Session)
	}
	token := "tok-" + adminID
	m.sessions[token] = sessionStorePkg.Session{
		Token:     token,
		AdminID:   adminID,
		Email:     email,
		CreatedAt: time.Now(),
	}
	return token, nil
}

func (m *mockSessionStore) Get(_ context.Context, token string) (sessionStorePkg.Session, bool) {
	s, ok := m.sessions[token]
	return s, ok
}

func (m *mockSessionStore) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func newTestServer(t *testing.T) (*Server, *mockAdminStore, *mockServiceStore, *mockTransactionStore, *mockSessionStore) {
	t.Helper()
	admins := &mockAdminStore{admins: make(map[string]adminDomain.Admin)}
	services := &mockServiceStore{services: make(map[string]serviceDomain.Service)}
	transactions := &mockTransactionStore{transactions: make(map[string]transactionDomain.Transaction)}
	sessions := &mockSessionStore{sessions: make(map[string]sessionStorePkg.Session)}

	cfg := config.Config{
		Env:           "test",
		Addr:          ":5600",
		BaseURL:       "http://localhost:5600",
		UploadDir:     t.TempDir(),
		StaticDir:     t.TempDir(),
		EmailFrom:     "Jecati <noreply@jecati.ph>",
		BusinessInbox: "inquiries@jecati.ph",
	}
	srv := NewServer(cfg, &Stores{
		AdminStore:       admins,
		ServiceStore:     services,
		TransactionStore: transactions,
	}, sessions, emailPkg.NewNoopSender())
	return srv, admins, services, transactions, sessions
}

// withSession attaches a live session to the request context, the way the
// Auth middleware would after resolving the cookie.
func withSession(r *http.Request) *http.Request {
	sess := sessionStorePkg.Session{Token: "tok-a1", AdminID: "a1", Email: "a@b.com", CreatedAt: time.Now()}
	return r.WithContext(middleware.ContextWithSession(r.Context(), sess))
}

func TestRequireAdmin_RedirectsWithoutSession(t *testing.T) {
	srv, _, _, _, sessions := newTestServer(t)
	handler := middleware.Chain(
		middleware.RequireAdmin(http.HandlerFunc(srv.handleGetData)),
		middleware.Auth(sessions),
	)

	req := httptest.NewRequest("GET", "/getData", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("expected redirect to /admin/login, got %q", loc)
	}
}

func TestRequireAdmin_PassesWithSession(t *testing.T) {
	srv, admins, _, _, sessions := newTestServer(t)
	admins.admins["a1"] = adminDomain.Admin{ID: "a1", Email: "a@b.com"}
	token, err := sessions.Create(context.Background(), "a1", "a@b.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	handler := middleware.Chain(
		middleware.RequireAdmin(http.HandlerFunc(srv.handleGetData)),
		middleware.Auth(sessions),
	)

	req := httptest.NewRequest("GET", "/getData", nil)
	req.AddCookie(&http.Cookie{Name: "jecati_session", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	for _, key := range []string{"admin", "services", "transaction"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing %q in data dump", key)
		}
	}
}

func TestHandleUpsertService_MissingFile(t *testing.T) {
	srv, _, services, _, _ := newTestServer(t)
	services.services["s1"] = serviceDomain.Service{ID: "s1", Unit: "backhoe"}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("category", serviceDomain.CategoryEquipment)
	mw.WriteField("unit", "backhoe")
	mw.WriteField("price", "3500")
	mw.Close()

	// No id (create) and with id (edit) both reject a missing file.
	for _, target := range []string{"/admin/add-edit-service", "/admin/add-edit-service/s1"} {
		req := httptest.NewRequest("POST", target, bytes.NewReader(buf.Bytes()))
		req.Header.Set("Content-Type", mw.FormDataContentType())
		if strings.HasSuffix(target, "/s1") {
			req.SetPathValue("id", "s1")
		}
		rec := httptest.NewRecorder()
		srv.handleUpsertService(rec, withSession(req))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON body: %v", target, err)
		}
		if body["error"] != "Please upload a file." {
			t.Errorf("%s: unexpected error %q", target, body["error"])
		}
	}
	if got := services.services["s1"]; got.Image != "" {
		t.Errorf("expected edit not persisted, got %+v", got)
	}
}

func TestHandleUpsertService_CreateAndRedirect(t *testing.T) {
	srv, _, services, _, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("category", serviceDomain.CategoryEquipment)
	mw.WriteField("unit", "backhoe")
	mw.WriteField("price", "3500")
	fw, err := mw.CreateFormFile("image", "backhoe.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write([]byte("fake image bytes"))
	mw.Close()

	req := httptest.NewRequest("POST", "/admin/add-edit-service", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.handleUpsertService(rec, withSession(req))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/admin" {
		t.Errorf("expected redirect to /admin/admin, got %q", loc)
	}
	if len(services.services) != 1 {
		t.Fatalf("expected 1 service persisted, got %d", len(services.services))
	}
	for _, s := range services.services {
		if s.Image != "backhoe.jpg" {
			t.Errorf("expected original base filename kept, got %q", s.Image)
		}
		if s.Availability != serviceDomain.Available {
			t.Errorf("expected availability %q, got %q", serviceDomain.Available, s.Availability)
		}
	}
}

func TestHandleUpsertService_UnknownID(t *testing.T) {
	srv, _, _, _, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("category", serviceDomain.CategoryEquipment)
	mw.WriteField("unit", "backhoe")
	mw.WriteField("price", "3500")
	fw, _ := mw.CreateFormFile("image", "backhoe.jpg")
	fw.Write([]byte("fake image bytes"))
	mw.Close()

	req := httptest.NewRequest("POST", "/admin/add-edit-service/ghost", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()
	srv.handleUpsertService(rec, withSession(req))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleDropServices_AcksWithCount(t *testing.T) {
	srv, _, services, _, _ := newTestServer(t)
	services.services["s1"] = serviceDomain.Service{ID: "s1", Unit: "backhoe", Availability: serviceDomain.Available}
	services.services["s2"] = serviceDomain.Service{ID: "s2", Unit: "grader", Availability: serviceDomain.Available}

	payload := `{"unit": ["s1", "s2", "ghost"]}`
	req := httptest.NewRequest("POST", "/admin/drop-services", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.handleDropServices(rec, withSession(req))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["dropped"] != 2 {
		t.Errorf("expected dropped=2, got %d", body["dropped"])
	}
	if !services.services["s1"].Deleted || !services.services["s2"].Deleted {
		t.Error("expected both services soft-deleted")
	}
}

func TestHandleDropServices_RejectsEmptySelection(t *testing.T) {
	srv, _, _, _, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/admin/drop-services", strings.NewReader(`{"unit": []}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.handleDropServices(rec, withSession(req))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleVerify_PlainTextResponses(t *testing.T) {
	srv, admins, _, _, _ := newTestServer(t)
	admins.admins["a1"] = adminDomain.Admin{ID: "a1", Email: "a@b.com", VerificationToken: "tok-1"}

	req := httptest.NewRequest("GET", "/verify?token=tok-1", nil)
	rec := httptest.NewRecorder()
	srv.handleVerify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "Account verified successfully" {
		t.Errorf("unexpected body %q", got)
	}
	if !admins.admins["a1"].Verified {
		t.Error("expected account verified")
	}

	req = httptest.NewRequest("GET", "/verify?token=nope", nil)
	rec = httptest.NewRecorder()
	srv.handleVerify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "Invalid verification token" {
		t.Errorf("unexpected body %q", got)
	}
}

func TestHandleLogin_SetsCookieAndRedirects(t *testing.T) {
	srv, admins, _, _, sessions := newTestServer(t)
	acct := adminDomain.Admin{ID: "a1", Email: "a@b.com", Verified: true}
	if err := acct.SetPassword("pw12345"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	admins.admins["a1"] = acct

	form := url.Values{"email": {"a@b.com"}, "password": {"pw12345"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.handleLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/admin" {
		t.Errorf("expected redirect to /admin/admin, got %q", loc)
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "jecati_session" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie set")
	}
	if sessionCookie.MaxAge != int((3 * time.Hour).Seconds()) {
		t.Errorf("expected 3h MaxAge, got %d", sessionCookie.MaxAge)
	}
	if _, ok := sessions.Get(context.Background(), sessionCookie.Value); !ok {
		t.Error("expected server-side session created")
	}
}

func TestHandleLogout_ClearsSession(t *testing.T) {
	srv, _, _, _, sessions := newTestServer(t)
	token, _ := sessions.Create(context.Background(), "a1", "a@b.com")

	req := httptest.NewRequest("GET", "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: "jecati_session", Value: token})
	rec := httptest.NewRecorder()
	srv.handleLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("expected redirect to /admin/login, got %q", loc)
	}
	if _, ok := sessions.Get(context.Background(), token); ok {
		t.Error("expected server-side session deleted")
	}
}

func TestHandleSubmitInquiry_PersistsTransaction(t *testing.T) {
	srv, _, _, transactions, _ := newTestServer(t)

	payload := `{
		"contactPerson": "Ana Reyes",
		"contactNumber": "09171234567",
		"email": "ana@example.com",
		"location": "Tagum City",
		"dueDate": "2026-09-15",
		"services": [{"unit": "backhoe", "quantity": 2}]
	}`
	req := httptest.NewRequest("POST", "/contact-us", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.handleSubmitInquiry(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(transactions.transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions.transactions))
	}
	for _, tr := range transactions.transactions {
		if tr.Status != transactionDomain.StatusUnpaid {
			t.Errorf("expected status %q, got %q", transactionDomain.StatusUnpaid, tr.Status)
		}
	}
}

func TestHandleSubmitInquiry_RejectsBadPayload(t *testing.T) {
	srv, _, _, transactions, _ := newTestServer(t)

	cases := map[string]string{
		"missing contact": `{"contactNumber":"09171234567","email":"ana@example.com","location":"Tagum","dueDate":"2026-09-15","services":[{"unit":"backhoe","quantity":1}]}`,
		"no services":     `{"contactPerson":"Ana","contactNumber":"09171234567","email":"ana@example.com","location":"Tagum","dueDate":"2026-09-15","services":[]}`,
		"bad date":        `{"contactPerson":"Ana","contactNumber":"09171234567","email":"ana@example.com","location":"Tagum","dueDate":"next week","services":[{"unit":"backhoe","quantity":1}]}`,
		"unknown field":   `{"contactPerson":"Ana","contactNumber":"09171234567","email":"ana@example.com","location":"Tagum","dueDate":"2026-09-15","services":[{"unit":"backhoe","quantity":1}],"extra":true}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/contact-us", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.handleSubmitInquiry(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
	if len(transactions.transactions) != 0 {
		t.Errorf("expected nothing persisted, got %d", len(transactions.transactions))
	}
}
