package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "hatch-egg-webapp/internal/common/errors"
	"hatch-egg-webapp/internal/platform/eggchain"
	rplatform "hatch-egg-webapp/internal/platform/redis"
)

// LookupCache — короткоживущий кэш ответов eggchain explorer. Снимает
// повторные обращения к апстриму при навигации по истории яиц; состояние
// приложения здесь не хранится.
type LookupCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewLookupCache(client *rplatform.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{client: client, ttl: ttl}
}

func (c *LookupCache) keyEgg(eggID string) string { return fmt.Sprintf("eggchain:egg:%s", eggID) }
func (c *LookupCache) keyProfile(username string) string {
	return fmt.Sprintf("eggchain:user:username:%s", username)
}

// SetEgg stores an egg record.
func (c *LookupCache) SetEgg(ctx context.Context, egg *eggchain.Egg) error {
	b, err := json.Marshal(egg)
	if err != nil {
		return apperrors.NewCacheError("marshal egg", err)
	}
	if err := c.client.Set(ctx, c.keyEgg(egg.EggID), b, c.ttl).Err(); err != nil {
		return apperrors.NewCacheError("set egg", err)
	}
	return nil
}

// GetEgg returns a cached egg record.
func (c *LookupCache) GetEgg(ctx context.Context, eggID string) (*eggchain.Egg, error) {
	v, err := c.client.Get(ctx, c.keyEgg(eggID)).Bytes()
	if err != nil {
		return nil, err
	}
	var egg eggchain.Egg
	if err := json.Unmarshal(v, &egg); err != nil {
		return nil, err
	}
	return &egg, nil
}

// SetProfile stores a user profile keyed by username.
func (c *LookupCache) SetProfile(ctx context.Context, p *eggchain.UserProfile) error {
	if p.Username == "" {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return apperrors.NewCacheError("marshal profile", err)
	}
	if err := c.client.Set(ctx, c.keyProfile(p.Username), b, c.ttl).Err(); err != nil {
		return apperrors.NewCacheError("set profile", err)
	}
	return nil
}

// GetProfile returns a cached profile by username.
func (c *LookupCache) GetProfile(ctx context.Context, username string) (*eggchain.UserProfile, error) {
	v, err := c.client.Get(ctx, c.keyProfile(username)).Bytes()
	if err != nil {
		return nil, err
	}
	var p eggchain.UserProfile
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
