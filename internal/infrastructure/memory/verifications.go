// Package memory provides the in-memory verification store. It is the
// default backend: a single map behind one coarse mutex, no persistence, no
// background sweep. Expired records fall out lazily when read.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/verification-api/internal/domain"
	"github.com/verification-api/internal/pkg/expiry"
	"github.com/verification-api/internal/pkg/id"
)

// VerificationRepo is a mutex-guarded map keyed by normalized username.
// Every operation holds the lock for its full duration; Fetch's
// delete-on-expiry therefore cannot race a concurrent Upsert or Delete.
type VerificationRepo struct {
	mu      sync.Mutex
	records map[string]domain.Verification
}

func NewVerificationRepo() *VerificationRepo {
	return &VerificationRepo{records: make(map[string]domain.Verification)}
}

func (r *VerificationRepo) Upsert(_ context.Context, record *domain.Verification) (*domain.Verification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	if existing, ok := r.records[record.UsernameKey]; ok {
		// Full overwrite; only the auto-assigned fields survive.
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = id.New()
		stored.CreatedAt = time.Now().UTC()
	}
	r.records[record.UsernameKey] = stored

	out := stored
	return &out, nil
}

func (r *VerificationRepo) UpdateJoinedGame(_ context.Context, key string, joined bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[key]
	if !ok {
		return fmt.Errorf("verification %q: %w", key, domain.ErrNotFound)
	}
	record.JoinedGame = joined
	r.records[key] = record
	return nil
}

func (r *VerificationRepo) Fetch(_ context.Context, key string, now time.Time) (*domain.Verification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[key]
	if !ok {
		return nil, fmt.Errorf("verification %q: %w", key, domain.ErrNotFound)
	}
	if expiry.Expired(record.TimeToVerify, now) {
		delete(r.records, key)
		return nil, fmt.Errorf("verification %q expired: %w", key, domain.ErrNotFound)
	}

	out := record
	return &out, nil
}

func (r *VerificationRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[key]; !ok {
		return fmt.Errorf("verification %q: %w", key, domain.ErrNotFound)
	}
	delete(r.records, key)
	return nil
}
