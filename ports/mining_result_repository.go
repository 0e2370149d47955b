package ports

import (
	"context"

	"gobasket/domain/core"
	"gobasket/domain/mining"
)

// MiningResultRepository persists orchestrated run output. It assigns
// identity and creation timestamp on Create; the orchestrator hands it a
// result carrying a placeholder identity.
type MiningResultRepository interface {
	Create(ctx context.Context, result *mining.MiningResult) error
	GetByID(ctx context.Context, id core.ResultID) (*mining.MiningResult, error)
	ListByOwner(ctx context.Context, ownerID core.UserID, limit, offset int) ([]*mining.MiningResult, error)
	Delete(ctx context.Context, id core.ResultID) error
}
