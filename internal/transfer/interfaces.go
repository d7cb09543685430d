package transfer

import (
	"github.com/google/uuid"

	"github.com/ytget/optionkit/internal/model"
)

// Store defines the interface consumed by the downloads page.
type Store interface {
	SetUpdateCallback(func(*model.Transfer))
	Get(id uuid.UUID) (model.Transfer, bool)
	All() []model.Transfer
	ActiveCount() int
	Stop(id uuid.UUID) error
	Remove(id uuid.UUID) error
}
