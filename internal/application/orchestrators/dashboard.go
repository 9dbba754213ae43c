package orchestrators

import (
	"context"
	"sync"

	"jecati/internal/domain/admin"
	"jecati/internal/domain/service"
	"jecati/internal/domain/transaction"
)

// AdminStoreForDashboard defines the admin store interface needed by Dashboard.
type AdminStoreForDashboard interface {
	List(ctx context.Context) ([]admin.Admin, error)
}

// ServiceStoreForDashboard defines the service store interface needed by Dashboard.
type ServiceStoreForDashboard interface {
	ListAll(ctx context.Context) ([]service.Service, error)
}

// TransactionStoreForDashboard defines the transaction store interface needed by Dashboard.
type TransactionStoreForDashboard interface {
	List(ctx context.Context) ([]transaction.Transaction, error)
}

// DashboardDeps holds dependencies for Dashboard.
type DashboardDeps struct {
	AdminStore       AdminStoreForDashboard
	ServiceStore     ServiceStoreForDashboard
	TransactionStore TransactionStoreForDashboard
}

// DashboardResult aggregates the three collections the admin page renders.
type DashboardResult struct {
	Admins       []admin.Admin
	Transactions []transaction.Transaction
	Services     []service.Service
}

// ExecuteDashboard reads all three collections concurrently and joins
// before returning. The render waits for every read; a single failure
// fails the whole aggregation with one error, never a partial result.
// POST: Either all three lists are populated or an error is returned
func ExecuteDashboard(ctx context.Context, deps DashboardDeps) (DashboardResult, error) {
	var result DashboardResult
	var errs [3]error

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		result.Admins, errs[0] = deps.AdminStore.List(ctx)
	}()
	go func() {
		defer wg.Done()
		result.Transactions, errs[1] = deps.TransactionStore.List(ctx)
	}()
	go func() {
		defer wg.Done()
		result.Services, errs[2] = deps.ServiceStore.ListAll(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return DashboardResult{}, err
		}
	}
	return result, nil
}
