package payment

import (
	"context"
	"fmt"
	"log/slog"

	"nanocamo/internal/domain"
	"nanocamo/internal/protocol/camo"
)

// Service pays camo addresses.
//
// For each payment it:
//   - Picks the version (the caller's, or the newest both sides support).
//   - Runs the sender side of the stealth protocol with a fresh ephemeral key.
//   - Publishes the resulting (version, P, R) record to the ledger.
//
// Nothing secret outlives a call: the ephemeral scalar is wiped inside
// camo.Pay.
type Service struct {
	ledger domain.LedgerClient
	local  camo.Versions
	log    *slog.Logger
}

// New constructs a payment service. local is the set of versions this
// sender is willing to use.
func New(ledger domain.LedgerClient, local camo.Versions, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{ledger: ledger, local: local, log: log}
}

// SendPayment derives a one-time destination for to and publishes it.
// Version negotiation happens before any key material is generated.
func (s *Service) SendPayment(ctx context.Context, to camo.Address, version camo.Version) (domain.LedgerEntry, error) {
	if version == 0 {
		v, err := camo.Preferred(s.local, to.Versions)
		if err != nil {
			return domain.LedgerEntry{}, err
		}
		version = v
	} else if !s.local.Contains(version) {
		return domain.LedgerEntry{}, fmt.Errorf("payment: %s not enabled locally: %w", version, camo.Negotiate(version, s.local))
	}

	p, err := camo.Pay(to, version)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	entry, err := s.ledger.PublishPayment(ctx, p)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("payment: publish: %w", err)
	}
	s.log.Info("payment published", "seq", entry.Seq, "id", p.ID(), "version", version)
	return entry, nil
}

// Compile-time assertion that Service implements domain.PaymentService.
var _ domain.PaymentService = (*Service)(nil)
