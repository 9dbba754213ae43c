package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jecati/internal/domain/service"
)

// ServiceStoreForUpsert defines the store interface needed by UpsertService.
type ServiceStoreForUpsert interface {
	GetByID(ctx context.Context, id string) (service.Service, error)
	Save(ctx context.Context, s service.Service) error
}

// UpsertServiceInput carries input for the upsert orchestrator. ID is empty
// for a create and set for an edit.
type UpsertServiceInput struct {
	ID            string
	Category      string
	Unit          string
	Price         float64
	ImageFilename string
}

// UpsertServiceDeps holds dependencies for UpsertService.
type UpsertServiceDeps struct {
	ServiceStore ServiceStoreForUpsert
	GenerateID   func() string
	Now          func() time.Time
}

// Upsert errors
var (
	ErrImageRequired   = errors.New("Please upload a file.")
	ErrServiceNotFound = errors.New("Service not found")
)

// ExecuteUpsertService creates or fully replaces a catalog item. An image
// upload is required on every call, edits included; availability is reset
// to available and the added date stamped to now on both paths, matching
// the form's full-replace semantics.
// PRE: ImageFilename names an already-persisted upload
// POST: Item created (no ID) or replaced (ID present); NotFound for an
// unknown ID
func ExecuteUpsertService(ctx context.Context, input UpsertServiceInput, deps UpsertServiceDeps) (service.Service, error) {
	if input.ImageFilename == "" {
		return service.Service{}, ErrImageRequired
	}

	item := service.Service{
		ID:           input.ID,
		Image:        input.ImageFilename,
		Category:     input.Category,
		Unit:         input.Unit,
		Price:        input.Price,
		Availability: service.Available,
		AddedDate:    deps.Now(),
	}

	if input.ID != "" {
		if _, err := deps.ServiceStore.GetByID(ctx, input.ID); err != nil {
			return service.Service{}, ErrServiceNotFound
		}
	} else {
		item.ID = deps.GenerateID()
	}

	if err := item.Validate(); err != nil {
		return service.Service{}, err
	}

	if err := deps.ServiceStore.Save(ctx, item); err != nil {
		return service.Service{}, err
	}

	if input.ID != "" {
		slog.Info("catalog_event", "event", "service_updated", "id", item.ID, "unit", item.Unit)
	} else {
		slog.Info("catalog_event", "event", "service_added", "id", item.ID, "unit", item.Unit)
	}
	return item, nil
}
