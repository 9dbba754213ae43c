package orchestrators

import (
	"context"
	"errors"
	"time"

	"jecati/internal/adapters/email"
	adminDomain "jecati/internal/domain/admin"
	serviceDomain "jecati/internal/domain/service"
	transactionDomain "jecati/internal/domain/transaction"
)

var errNotFound = errors.New("not found")

// mockAdminStore is a map-backed admin store for orchestrator tests.
type mockAdminStore struct {
	admins map[string]adminDomain.Admin
}

func newMockAdminStore() *mockAdminStore {
	return &mockAdminStore{admins: make(map[string]adminDomain.Admin)}
}

func (m *mockAdminStore) GetByID(_ context.Context, id string) (adminDomain.Admin, error) {
	if a, ok := m.admins[id]; ok {
		return a, nil
	}
	return adminDomain.Admin{}, errNotFound
}

func (m *mockAdminStore) GetByEmail(_ context.Context, email string) (adminDomain.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return adminDomain.Admin{}, errNotFound
}

func (m *mockAdminStore) GetByVerificationToken(_ context.Context, token string) (adminDomain.Admin, error) {
	for _, a := range m.admins {
		if a.VerificationToken == token {
			return a, nil
		}
	}
	return adminDomain.Admin{}, errNotFound
}

func (m *mockAdminStore) Save(_ context.Context, a adminDomain.Admin) error {
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

// mockServiceStore is a map-backed service store for orchestrator tests.
type mockServiceStore struct {
	services map[string]serviceDomain.Service
	saveErr  error
}

func newMockServiceStore() *mockServiceStore {
	return &mockServiceStore{services: make(map[string]serviceDomain.Service)}
}

func (m *mockServiceStore) GetByID(_ context.Context, id string) (serviceDomain.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return serviceDomain.Service{}, errNotFound
}

func (m *mockServiceStore) Save(_ context.Context, s serviceDomain.Service) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceStore) ListAll(_ context.Context) ([]serviceDomain.Service, error) {
	var list []serviceDomain.Service
	for _, s := range m.services {
		list = append(list, s)
	}
	return list, nil
}

// mockTransactionStore is a map-backed transaction store for orchestrator tests.
type mockTransactionStore struct {
	transactions map[string]transactionDomain.Transaction
}

func newMockTransactionStore() *mockTransactionStore {
	return &mockTransactionStore{transactions: make(map[string]transactionDomain.Transaction)}
}

func (m *mockTransactionStore) Save(_ context.Context, t transactionDomain.Transaction) error {
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

// mockSender records every send and can be told to fail.
type mockSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.sendErr != nil {
		return email.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "mock-1", SentAt: time.Now()}, nil
}

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

func fixedToken() string { return "9f1c2e4a-7b6d-4e2f-8a3b-5c4d6e7f8a9b" }
