package ledger

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"nanocamo/internal/domain"
	"nanocamo/internal/protocol/camo"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// Server is an in-memory ledger. All state is lost when the process exits.
type Server struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
	log     *slog.Logger
	now     func() time.Time
}

// NewServer returns an empty ledger. A nil logger means slog.Default().
func NewServer(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, now: time.Now}
}

// Append stores payment under the next sequence number.
func (s *Server) Append(payment camo.Payment) domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := domain.LedgerEntry{
		Seq:       domain.Sequence(len(s.entries)).Next(),
		Payment:   payment,
		Timestamp: s.now().Unix(),
	}
	s.entries = append(s.entries, entry)
	paymentsStored.Set(float64(len(s.entries)))
	return entry
}

// After returns up to limit entries with Seq > after.
func (s *Server) After(after domain.Sequence, limit int) []domain.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if uint64(after) >= uint64(len(s.entries)) {
		return []domain.LedgerEntry{}
	}
	// Seq n lives at index n-1, so entries after `after` start at index after.
	rest := s.entries[after:]
	if len(rest) > limit {
		rest = rest[:limit]
	}
	out := make([]domain.LedgerEntry, len(rest))
	copy(out, rest)
	return out
}

// Handler returns the HTTP API with access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments", s.handlePublish)
	mux.HandleFunc("GET /payments", s.handleList)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.accessLog(mux)
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var p camo.Payment
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry := s.Append(p)
	s.log.Info("payment stored", "seq", entry.Seq, "id", p.ID(), "version", p.Version)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var after uint64
	if v := q.Get("after"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			http.Error(w, "bad after", http.StatusBadRequest)
			return
		}
		after = n
	}
	limit := defaultPageSize
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxPageSize)
	}
	writeJSON(w, http.StatusOK, s.After(domain.Sequence(after), limit))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", rec.status,
			"bytes", rec.bytes,
			"dur", time.Since(start),
		)
	})
}
