package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

const (
	cacheKeyPattern = "recipient:email:%s"
)

var (
	ErrCacheMiss     = errors.New("recipient cache miss")
	ErrCacheDisabled = errors.New("recipient cache disabled")
)

//go:generate mockgen -package mockrepository -destination ./mock/mockcache.go . RecipientCacheProvider
type RecipientCacheProvider interface {
	Get(uid string) (string, error)
	Set(uid string, email string) error
}

var _ RecipientCacheProvider = (*RecipientCache)(nil)

// RecipientCache keeps resolved uid -> email pairs for a bounded time so that
// repeated mail to the same user skips the identity lookup. It is off unless
// CACHE_EXPIRED_TIME is positive; while an entry lives, a user deleted from the
// identity provider still receives mail.
type RecipientCache struct {
	engine      *ristretto.Cache[string, string]
	expiredTime time.Duration
}

type CacheParams struct {
	fx.In

	Config CacheConfig
}

func NewRecipientCache(lc fx.Lifecycle, params CacheParams) (*RecipientCache, error) {
	if params.Config.ExpiredTime <= 0 {
		return &RecipientCache{}, nil
	}

	engine, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: params.Config.NumCounters,
		MaxCost:     params.Config.MaxCost,
		BufferItems: params.Config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			engine.Close()
			return nil
		},
	})

	return &RecipientCache{
		engine:      engine,
		expiredTime: params.Config.ExpiredTime,
	}, nil
}

type CacheConfig struct {
	ExpiredTime time.Duration `envconfig:"CACHE_EXPIRED_TIME" default:"0s"`
	NumCounters int64         `envconfig:"CACHE_NUM_COUNTERS" default:"100000"`
	MaxCost     int64         `envconfig:"CACHE_MAX_COST" default:"10000"`
	BufferItems int64         `envconfig:"CACHE_BUFFER_ITEMS" default:"64"`
}

func NewCacheConfig() CacheConfig {
	var cfg CacheConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (c *RecipientCache) Get(uid string) (string, error) {
	if c.engine == nil {
		return "", ErrCacheDisabled
	}

	email, found := c.engine.Get(fmt.Sprintf(cacheKeyPattern, uid))
	if !found {
		return "", ErrCacheMiss
	}
	return email, nil
}

// Set stores the email for uid. Empty emails are never cached so that a user
// who later adds an address is picked up on the next lookup.
func (c *RecipientCache) Set(uid string, email string) error {
	if c.engine == nil {
		return ErrCacheDisabled
	}
	if uid == "" || email == "" {
		return fmt.Errorf("refusing to cache empty recipient uid=%q", uid)
	}

	c.engine.SetWithTTL(fmt.Sprintf(cacheKeyPattern, uid), email, 1, c.expiredTime)
	c.engine.Wait()
	return nil
}
