package orchestrators

import (
	"context"
	"log/slog"

	"jecati/internal/domain/service"
)

// ServiceStoreForDrop defines the store interface needed by DropServices.
type ServiceStoreForDrop interface {
	GetByID(ctx context.Context, id string) (service.Service, error)
	Save(ctx context.Context, s service.Service) error
}

// DropServicesDeps holds dependencies for DropServices.
type DropServicesDeps struct {
	ServiceStore ServiceStoreForDrop
}

// ExecuteDropServices soft-deletes every named catalog item: the rows stay
// in the collection flagged removed rather than being erased, so historic
// transactions can still resolve the unit names they reference. Unknown ids
// are skipped; the count of items actually dropped is returned.
// POST: Each known item has availability=removed and deleted=true
func ExecuteDropServices(ctx context.Context, ids []string, deps DropServicesDeps) (int, error) {
	dropped := 0
	for _, id := range ids {
		item, err := deps.ServiceStore.GetByID(ctx, id)
		if err != nil {
			slog.Warn("catalog_event", "event", "drop_skipped", "id", id, "reason", "not_found")
			continue
		}
		item.MarkRemoved()
		if err := deps.ServiceStore.Save(ctx, item); err != nil {
			return dropped, err
		}
		dropped++
	}

	slog.Info("catalog_event", "event", "services_dropped", "requested", len(ids), "dropped", dropped)
	return dropped, nil
}
