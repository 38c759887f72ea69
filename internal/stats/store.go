package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Key is the key-value slot holding the serialized aggregate.
const Key = "wordle-stats"

// ErrStatsLoad wraps every reason a stored aggregate could not be used.
var ErrStatsLoad = errors.New("stats unavailable")

// Backend is a key-value blob store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store keeps the aggregate in memory and writes it through to the backend
// on every mutation.
type Store struct {
	backend Backend
	log     zerolog.Logger
	agg     Aggregate
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// Load reads the aggregate from backend. A missing, unreadable or malformed
// blob yields the zero aggregate; Load never fails.
func Load(ctx context.Context, backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	agg, err := Read(ctx, backend)
	if err != nil {
		s.log.Debug().Err(err).Msg("starting with empty stats")
		agg = Zero()
	}
	s.agg = agg
	return s
}

// Read decodes the stored aggregate. A missing key is reported as the zero
// aggregate; everything else that prevents use wraps ErrStatsLoad.
func Read(ctx context.Context, backend Backend) (Aggregate, error) {
	raw, ok, err := backend.Get(ctx, Key)
	if err != nil {
		return Aggregate{}, fmt.Errorf("%w: %v", ErrStatsLoad, err)
	}
	if !ok {
		return Zero(), nil
	}
	var agg Aggregate
	if err := json.Unmarshal(raw, &agg); err != nil {
		return Aggregate{}, fmt.Errorf("%w: %v", ErrStatsLoad, err)
	}
	if err := agg.Validate(); err != nil {
		return Aggregate{}, fmt.Errorf("%w: %v", ErrStatsLoad, err)
	}
	return agg, nil
}

// Aggregate returns a copy of the current aggregate.
func (s *Store) Aggregate() Aggregate {
	return s.agg.Clone()
}

// RecordResult folds one finished game into the aggregate and persists it.
// The in-memory aggregate is updated even when the write fails.
func (s *Store) RecordResult(won bool, attempt int) error {
	if won && (attempt < 1 || attempt > len(s.agg.GuessDistribution)) {
		s.log.Warn().Int("attempt", attempt).Msg("winning attempt out of range")
	}
	s.agg = s.agg.Record(won, attempt)
	return s.save()
}

// Reset zeroes the aggregate and persists it.
func (s *Store) Reset() error {
	s.agg = Zero()
	return s.save()
}

func (s *Store) save() error {
	raw, err := json.Marshal(s.agg)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := s.backend.Put(context.Background(), Key, raw); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}
