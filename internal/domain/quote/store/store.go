// Package store persists quotation snapshots through a kv.Store.
// Records are immutable once written: there is no update or delete, and
// saved quotes accumulate without eviction.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
	"github.com/kruvl/gloria-proyect/internal/infra/kv"
)

var (
	// ErrStore wraps any read/write failure of the backing store.
	ErrStore = errors.New("almacenamiento de cotizaciones")
	// ErrNotFound reports a key with no saved quote behind it.
	ErrNotFound = errors.New("cotización no encontrada")
)

const keyPrefix = "quote:"

// SavedQuote is one persisted snapshot.
type SavedQuote struct {
	Key        string      `json:"key"`
	Date       string      `json:"date"`
	Reference  string      `json:"reference"`
	TaxPercent string      `json:"taxPercent"`
	Items      []SavedItem `json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// SavedItem keeps the raw text the user typed; parsed values are
// rebuilt on load.
type SavedItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type Store struct {
	kv  kv.Store
	now func() time.Time
}

func New(backend kv.Store) *Store {
	return &Store{kv: backend, now: time.Now}
}

// NewWithClock is for tests that need deterministic keys.
func NewWithClock(backend kv.Store, now func() time.Time) *Store {
	return &Store{kv: backend, now: now}
}

// Save writes a snapshot of the model under a fresh timestamp-derived
// key. Prior records are never touched; on failure nothing is written
// and the caller's model is unchanged.
func (s *Store) Save(ctx context.Context, m *quote.Model) (SavedQuote, error) {
	now := s.now().UTC()
	rec := SavedQuote{
		Key:        fmt.Sprintf("%s%d", keyPrefix, now.UnixMilli()),
		Date:       m.Date,
		Reference:  m.Reference,
		TaxPercent: m.TaxPercent,
		CreatedAt:  now,
	}
	for _, it := range m.Items {
		rec.Items = append(rec.Items, SavedItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return SavedQuote{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if err := s.kv.Set(ctx, rec.Key, string(raw)); err != nil {
		return SavedQuote{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return rec, nil
}

// ListAll returns every saved quote, most recent first. Failures are
// returned, not swallowed; callers decide how to surface them.
func (s *Store) ListAll(ctx context.Context) ([]SavedQuote, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	var ours []string
	for _, k := range keys {
		if strings.HasPrefix(k, keyPrefix) {
			ours = append(ours, k)
		}
	}
	if len(ours) == 0 {
		return nil, nil
	}

	values, err := s.kv.GetMulti(ctx, ours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	records := make([]SavedQuote, 0, len(values))
	for key, raw := range values {
		var rec SavedQuote
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("%w: registro %s: %v", ErrStore, key, err)
		}
		rec.Key = key
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		// keys embed the creation millis, so key order breaks ties
		return records[i].Key > records[j].Key
	})
	return records, nil
}

// LoadOne materializes one saved quote into a fresh model. An empty
// stored item list comes back as the single default blank row, the same
// state a new form starts in.
func (s *Store) LoadOne(ctx context.Context, key string) (*quote.Model, error) {
	values, err := s.kv.GetMulti(ctx, []string{key})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	raw, ok := values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	var rec SavedQuote
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("%w: registro %s: %v", ErrStore, key, err)
	}

	m := &quote.Model{
		Date:       rec.Date,
		Reference:  rec.Reference,
		TaxPercent: rec.TaxPercent,
	}
	for _, it := range rec.Items {
		m.AppendItem(it.Description, it.Quantity, it.UnitPrice)
	}
	if len(m.Items) == 0 {
		m.AddItem()
	}
	return m, nil
}
