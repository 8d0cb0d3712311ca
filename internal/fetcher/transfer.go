package fetcher

import (
	"time"

	"github.com/google/uuid"
)

// Transfer is the in-memory record of one download. It lives for a single
// invocation; TransferredBytes only ever grows and never exceeds TotalBytes
// when the total is known.
type Transfer struct {
	ID               uuid.UUID
	Source           string
	Destination      string
	TotalBytes       int64 // -1 until (and unless) the server advertises a size
	TransferredBytes uint64
	StartedAt        time.Time
}

// NewTransfer creates a transfer record for a single invocation.
func NewTransfer(source, destination string) *Transfer {
	return &Transfer{
		ID:          uuid.New(),
		Source:      source,
		Destination: destination,
		TotalBytes:  -1,
		StartedAt:   time.Now(),
	}
}
