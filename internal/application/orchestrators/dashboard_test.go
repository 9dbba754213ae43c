package orchestrators

import (
	"context"
	"errors"
	"testing"

	"jecati/internal/domain/admin"
	"jecati/internal/domain/service"
	"jecati/internal/domain/transaction"
)

type failingAdminList struct{}

func (failingAdminList) List(context.Context) ([]admin.Admin, error) {
	return nil, errors.New("admin list down")
}

type failingServiceList struct{}

func (failingServiceList) ListAll(context.Context) ([]service.Service, error) {
	return nil, errors.New("service list down")
}

type failingTransactionList struct{}

func (failingTransactionList) List(context.Context) ([]transaction.Transaction, error) {
	return nil, errors.New("transaction list down")
}

func TestExecuteDashboard_AggregatesAllThree(t *testing.T) {
	admins := newMockAdminStore()
	admins.admins["a1"] = admin.Admin{ID: "a1", Email: "a@b.com"}
	services := newMockServiceStore()
	services.services["s1"] = service.Service{ID: "s1", Unit: "backhoe"}
	services.services["s2"] = service.Service{ID: "s2", Unit: "grader"}
	transactions := newMockTransactionStore()
	transactions.transactions["t1"] = transaction.Transaction{ID: "t1", ContactPerson: "Ana"}

	res, err := ExecuteDashboard(context.Background(), DashboardDeps{
		AdminStore:       admins,
		ServiceStore:     services,
		TransactionStore: transactions,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Admins) != 1 || len(res.Services) != 2 || len(res.Transactions) != 1 {
		t.Errorf("unexpected counts: admins=%d services=%d transactions=%d",
			len(res.Admins), len(res.Services), len(res.Transactions))
	}
}

// TestExecuteDashboard_FailsClosed tests that any single read failing
// produces an error and an empty result, never a partial page.
func TestExecuteDashboard_FailsClosed(t *testing.T) {
	admins := newMockAdminStore()
	admins.admins["a1"] = admin.Admin{ID: "a1"}
	services := newMockServiceStore()
	services.services["s1"] = service.Service{ID: "s1"}
	transactions := newMockTransactionStore()

	cases := map[string]DashboardDeps{
		"admins fail": {
			AdminStore:       failingAdminList{},
			ServiceStore:     services,
			TransactionStore: transactions,
		},
		"services fail": {
			AdminStore:       admins,
			ServiceStore:     failingServiceList{},
			TransactionStore: transactions,
		},
		"transactions fail": {
			AdminStore:       admins,
			ServiceStore:     services,
			TransactionStore: failingTransactionList{},
		},
	}

	for name, deps := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := ExecuteDashboard(context.Background(), deps)
			if err == nil {
				t.Fatal("expected error")
			}
			if len(res.Admins) != 0 || len(res.Services) != 0 || len(res.Transactions) != 0 {
				t.Errorf("expected empty result, got %+v", res)
			}
		})
	}
}
