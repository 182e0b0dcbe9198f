package repository

import (
	"context"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// DefaultConfigCacheTTL matches how long a study config may be served stale.
const DefaultConfigCacheTTL = 5 * time.Minute

type cachedConfig struct {
	cfg       *domain.StudyNotificationConfig
	expiresAt time.Time
}

// CachedNotificationConfigRepository keeps study configs in memory for a
// fixed TTL in front of another repository. Lookup errors are not cached.
type CachedNotificationConfigRepository struct {
	next    domain.NotificationConfigRepository
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]cachedConfig
}

func NewCachedNotificationConfigRepository(next domain.NotificationConfigRepository, ttl time.Duration) *CachedNotificationConfigRepository {
	return &CachedNotificationConfigRepository{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cachedConfig),
	}
}

func (r *CachedNotificationConfigRepository) GetNotificationConfig(ctx context.Context, studyID string) (*domain.StudyNotificationConfig, error) {
	if r.ttl > 0 {
		r.mu.RLock()
		e, ok := r.entries[studyID]
		r.mu.RUnlock()
		if ok && r.now().Before(e.expiresAt) {
			return e.cfg, nil
		}
	}

	cfg, err := r.next.GetNotificationConfig(ctx, studyID)
	if err != nil {
		return nil, err
	}

	if r.ttl > 0 {
		r.mu.Lock()
		r.entries[studyID] = cachedConfig{cfg: cfg, expiresAt: r.now().Add(r.ttl)}
		r.mu.Unlock()
	}

	return cfg, nil
}

// SaveNotificationConfig writes through and drops the cached copy.
func (r *CachedNotificationConfigRepository) SaveNotificationConfig(ctx context.Context, cfg *domain.StudyNotificationConfig) error {
	if err := r.next.SaveNotificationConfig(ctx, cfg); err != nil {
		return err
	}

	if cfg != nil {
		r.mu.Lock()
		delete(r.entries, cfg.StudyID)
		r.mu.Unlock()
	}

	return nil
}
