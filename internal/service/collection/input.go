package collection

import (
	"github.com/google/uuid"
)

// ArchiveCardInput holds the parameters for toggling a card's archive state.
type ArchiveCardInput struct {
	CardID uuid.UUID
}
