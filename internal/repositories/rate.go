package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

// RateCacheRepository keeps admin rate overrides in a Redis hash keyed by symbol.
type RateCacheRepository struct {
	client *redis.Client
	key    string
	exp    time.Duration // expiration of the whole hash, 0 keeps it forever
}

// NewRateCacheRepository creates a new repository instance with optional TTL
func NewRateCacheRepository(client *redis.Client, key string, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		key:    key,
		exp:    expiration,
	}
}

// GetAll returns every stored override. Entries that fail to decode are skipped.
func (r *RateCacheRepository) GetAll(ctx context.Context) (map[string]models.Rate, error) {
	vals, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		logger.Log.Infow("rate cache read",
			"key", r.key,
			"error", err,
		)
		return nil, err
	}

	rates := make(map[string]models.Rate, len(vals))
	for symbol, raw := range vals {
		var rate models.Rate
		if err := json.Unmarshal([]byte(raw), &rate); err != nil {
			logger.Log.Warnw("skipping malformed rate",
				"key", r.key,
				"symbol", symbol,
				"value", raw,
				"error", err,
			)
			continue
		}
		rate.Symbol = symbol
		rates[symbol] = rate
	}

	logger.Log.Infow("rate cache read",
		"key", r.key,
		"result", len(rates),
		"error", nil,
	)

	return rates, nil
}

// Set stores an override for rate.Symbol.
func (r *RateCacheRepository) Set(ctx context.Context, rate models.Rate) error {
	payload, err := json.Marshal(rate)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.key, rate.Symbol, payload)
	if r.exp > 0 {
		pipe.Expire(ctx, r.key, r.exp)
	}
	_, err = pipe.Exec(ctx)

	logger.Log.Infow("rate cache write",
		"key", r.key,
		"symbol", rate.Symbol,
		"rate", rate.Rate,
		"period", rate.Period,
		"error", err,
	)

	return err
}
