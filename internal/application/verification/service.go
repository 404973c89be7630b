package verification

import (
	"context"
	"time"

	"github.com/verification-api/internal/domain"
)

// Store is the contract every verification backend implements. Keys are
// pre-normalized by the service; implementations never see mixed-case keys.
// Fetch is not read-only: an expired record is deleted as a side effect of
// reading it, under the backend's own mutual exclusion.
type Store interface {
	// Upsert inserts the record or fully overwrites the one already stored
	// under record.UsernameKey. An existing key is the normal update branch,
	// not an error. Returns the stored record.
	Upsert(ctx context.Context, record *domain.Verification) (*domain.Verification, error)
	// UpdateJoinedGame sets only the joinedGame flag. domain.ErrNotFound on miss.
	UpdateJoinedGame(ctx context.Context, key string, joined bool) error
	// Fetch returns the record under key, deleting it first (and reporting
	// domain.ErrNotFound) if its expiry instant is strictly before now.
	Fetch(ctx context.Context, key string, now time.Time) (*domain.Verification, error)
	// Delete removes the record under key. domain.ErrNotFound when absent.
	Delete(ctx context.Context, key string) error
}

type Service interface {
	Upsert(ctx context.Context, req domain.UpsertVerificationRequest) (*domain.Verification, error)
	UpdateJoinedGame(ctx context.Context, username string, joined bool) error
	Fetch(ctx context.Context, username string) (*domain.Verification, error)
	Delete(ctx context.Context, username string) error
}

type service struct {
	repo Store
	now  func() time.Time
}

func NewService(repo Store) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Upsert(ctx context.Context, req domain.UpsertVerificationRequest) (*domain.Verification, error) {
	record := &domain.Verification{
		UsernameKey:     domain.NormalizeUsername(req.RobloxUsername),
		RobloxUsername:  req.RobloxUsername,
		RobloxID:        req.RobloxID,
		DiscordUsername: req.DiscordUsername,
		DiscordID:       req.DiscordID,
		TimeToVerify:    req.TimeToVerify,
		JoinedGame:      req.JoinedGame,
	}
	return s.repo.Upsert(ctx, record)
}

func (s *service) UpdateJoinedGame(ctx context.Context, username string, joined bool) error {
	return s.repo.UpdateJoinedGame(ctx, domain.NormalizeUsername(username), joined)
}

func (s *service) Fetch(ctx context.Context, username string) (*domain.Verification, error) {
	return s.repo.Fetch(ctx, domain.NormalizeUsername(username), s.now())
}

func (s *service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, domain.NormalizeUsername(username))
}
