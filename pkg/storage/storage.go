package storage

import (
	"context"
	"strings"
	"time"
)

// DefaultProcessedEventTTL bounds how long a processed-event marker is kept. Markers only
// need to outlive the lookback window and the boundary rescan.
const DefaultProcessedEventTTL = 24 * time.Hour

// OperatorStore persists the poll loop's cross-cycle state: the next block to scan per
// contract and the set of events that have already been handled.
type OperatorStore interface {
	// Block cursor, keyed by contract address. GetCursor returns ErrNotFound before the
	// first SaveCursor.
	GetCursor(ctx context.Context, contractAddress string) (uint64, error)
	SaveCursor(ctx context.Context, contractAddress string, blockNumber uint64) error

	// Processed event tracking - prevents responding twice to the same log
	MarkEventProcessed(ctx context.Context, eventKey string) error
	IsEventProcessed(ctx context.Context, eventKey string) (bool, error)

	// Lifecycle management
	Close() error
}

// CursorRecord is the persisted form of a block cursor
type CursorRecord struct {
	ContractAddress string    `json:"contractAddress"`
	BlockNumber     uint64    `json:"blockNumber"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProcessedEvent represents an event that has been handled
type ProcessedEvent struct {
	EventKey    string    `json:"eventKey"`
	ProcessedAt time.Time `json:"processedAt"`
}

// NormalizeContractAddress is the key form used for cursors
func NormalizeContractAddress(contractAddress string) string {
	return strings.ToLower(strings.TrimSpace(contractAddress))
}
