package interfaces

import (
	"context"

	domaintypes "nanocamo/internal/domain/types"
	"nanocamo/internal/protocol/camo"
)

// LedgerClient publishes and lists payments. Implementations do not retry;
// the caller decides what to do with a failed call.
type LedgerClient interface {
	PublishPayment(ctx context.Context, payment camo.Payment) (domaintypes.LedgerEntry, error)
	// FetchPayments returns up to limit entries with Seq > after, in order.
	FetchPayments(
		ctx context.Context,
		after domaintypes.Sequence,
		limit int,
	) ([]domaintypes.LedgerEntry, error)
	URL() string
}
