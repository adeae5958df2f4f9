package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"nanocamo/internal/crypto"
	"nanocamo/internal/domain"
	"nanocamo/internal/protocol/camo"
)

var (
	// ErrNotFound is returned by RecoverKey when no entry has the sequence.
	ErrNotFound = errors.New("scan: no ledger entry at that sequence")
	// ErrNotOurs is returned by RecoverKey when the entry does not pay to the account.
	ErrNotOurs = errors.New("scan: payment does not belong to this account")
)

// Options tunes a Service. Zero fields take defaults.
type Options struct {
	// Workers is the number of goroutines running detection. 0 means GOMAXPROCS.
	Workers int
	// Batch is the ledger page size. 0 means 200.
	Batch int
}

// Service scans the ledger for payments to a detector's address.
type Service struct {
	ledger  domain.LedgerClient
	cursors domain.CursorStore
	workers int
	batch   int
	log     *slog.Logger
}

// New constructs a scan service.
func New(ledger domain.LedgerClient, cursors domain.CursorStore, opts Options, log *slog.Logger) *Service {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Batch <= 0 {
		opts.Batch = 200
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{ledger: ledger, cursors: cursors, workers: opts.Workers, batch: opts.Batch, log: log}
}

// ScanPayments checks every ledger entry after the stored cursor.
//
// Steps per page:
//  1. Fetch up to Batch entries after the cursor.
//  2. Run keys.Detect on each entry across Workers goroutines.
//  3. Collect matches in ledger order.
//  4. Save the cursor as the last sequence of the page.
//
// Only an empty page ends the scan: the ledger may return fewer entries than
// asked for while more remain. The scan also stops on a ledger or cursor
// error, or when ctx is done. The result always reflects the pages that completed.
func (s *Service) ScanPayments(ctx context.Context, keys domain.PaymentDetector) (domain.ScanResult, error) {
	addr := keys.Address().String()
	cursor, err := s.cursors.LoadCursor(s.ledger.URL(), addr)
	if err != nil {
		return domain.ScanResult{}, err
	}
	res := domain.ScanResult{Cursor: cursor, Detected: []domain.DetectedPayment{}}
	log := s.log.With("ledger", s.ledger.URL(), "fingerprint", crypto.Fingerprint(keys.Address().Spend))
	log.Debug("scan started", "after", cursor)

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		entries, err := s.ledger.FetchPayments(ctx, res.Cursor, s.batch)
		if err != nil {
			return res, fmt.Errorf("scan: fetch after %d: %w", res.Cursor, err)
		}
		if len(entries) == 0 {
			break
		}

		start := time.Now()
		matched, err := s.detect(ctx, keys, entries)
		if err != nil {
			return res, err
		}
		batchDuration.Observe(time.Since(start).Seconds())

		found := 0
		for i, e := range entries {
			if matched[i] {
				found++
				res.Detected = append(res.Detected, domain.DetectedPayment{Entry: e, ID: e.Payment.ID()})
				log.Info("payment detected", "seq", e.Seq, "id", e.Payment.ID(), "version", e.Payment.Version)
			}
		}
		res.Scanned += len(entries)
		paymentsScanned.Add(float64(len(entries)))
		paymentsDetected.Add(float64(found))

		res.Cursor = entries[len(entries)-1].Seq
		if err := s.cursors.SaveCursor(s.ledger.URL(), addr, res.Cursor); err != nil {
			return res, err
		}
	}
	log.Debug("scan finished", "scanned", res.Scanned, "detected", len(res.Detected), "cursor", res.Cursor)
	return res, nil
}

// detect runs keys.Detect over entries. matched[i] belongs to entries[i].
func (s *Service) detect(ctx context.Context, keys domain.PaymentDetector, entries []domain.LedgerEntry) ([]bool, error) {
	matched := make([]bool, len(entries))
	idx := make(chan int)
	eg, ctx := errgroup.WithContext(ctx)

	for range min(s.workers, len(entries)) {
		eg.Go(func() error {
			for i := range idx {
				matched[i] = keys.Detect(entries[i].Payment)
			}
			return nil
		})
	}
	eg.Go(func() error {
		defer close(idx)
		for i := range entries {
			select {
			case idx <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return matched, nil
}

// RecoverKey fetches the entry at seq and returns the one-time private key
// if it pays to account. The caller must Destroy the key.
func (s *Service) RecoverKey(ctx context.Context, account *camo.Account, seq domain.Sequence) (*crypto.Scalar, camo.Payment, error) {
	if seq == 0 {
		return nil, camo.Payment{}, ErrNotFound
	}
	entries, err := s.ledger.FetchPayments(ctx, seq-1, 1)
	if err != nil {
		return nil, camo.Payment{}, fmt.Errorf("scan: fetch %d: %w", seq, err)
	}
	if len(entries) == 0 || entries[0].Seq != seq {
		return nil, camo.Payment{}, ErrNotFound
	}
	p := entries[0].Payment
	key, ok := account.Recover(p)
	if !ok {
		return nil, p, ErrNotOurs
	}
	return key, p, nil
}

// Compile-time assertion that Service implements domain.ScanService.
var _ domain.ScanService = (*Service)(nil)

// Compile-time assertions that both key kinds can drive a scan.
var (
	_ domain.PaymentDetector = (*camo.Account)(nil)
	_ domain.PaymentDetector = (*camo.ViewKeys)(nil)
)
