package interfaces

import (
	"context"

	"appraisal_desk/internal/domain/entities"
)

// PanelResult reports which panel actually served a read. The client-panel to
// master-panel fallback chain is silent in the stored data, so the flag makes
// the branch observable to callers and tests.
type PanelResult struct {
	Appraisers []entities.Appraiser
	// Source is "master" or "client:<client_id>".
	Source string
	// UsedFallback is true when a client-specific panel was configured but
	// could not be used (read failure or empty sheet).
	UsedFallback bool
}

// IPanelRepository abstracts the appraiser panel collections. The panel is
// administered externally; this service never writes it.

type IPanelRepository interface {
	// List loads the panel for a client, falling back to the master panel
	// when the client has no usable dedicated panel. clientID may be empty.
	List(ctx context.Context, clientID string) (PanelResult, error)
	// FindByID resolves one appraiser from the master panel. A zero-ID
	// appraiser with a nil error means not found.
	FindByID(ctx context.Context, appraiserID string) (entities.Appraiser, error)
}
