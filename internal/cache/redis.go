package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/product"
)

const (
	productIDsKey    = "products:ids"
	productKeyPrefix = "product:"
)

var errIncomplete = errors.New("cached catalog incomplete")

// NewRedisClient connects to addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Redis keeps the display order in a list of ids and each product under its own key.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func productKey(id string) string {
	return productKeyPrefix + id
}

func (c *Redis) Products(ctx context.Context) ([]product.Product, bool) {
	products, err := c.load(ctx)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromCtx(ctx).Warn("product cache read failed", zap.String("layer", "cache"), zap.Error(err))
		}
		return nil, false
	}
	return products, true
}

func (c *Redis) load(ctx context.Context) ([]product.Product, error) {
	ids, err := c.client.LRange(ctx, productIDsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, redis.Nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	results, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(results))
	for _, res := range results {
		raw, ok := res.(string)
		if !ok {
			// expired or evicted while the id list survived
			return nil, errIncomplete
		}
		var p product.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode cached product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (c *Redis) StoreProducts(ctx context.Context, products []product.Product) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, productIDsKey)
		if len(products) == 0 {
			return nil
		}

		ids := make([]interface{}, 0, len(products))
		for _, p := range products {
			raw, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("encode product %s: %w", p.ID, err)
			}
			pipe.Set(ctx, productKey(p.ID), raw, c.ttl)
			ids = append(ids, p.ID)
		}
		pipe.RPush(ctx, productIDsKey, ids...)
		pipe.Expire(ctx, productIDsKey, c.ttl)
		return nil
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("product cache write failed", zap.String("layer", "cache"), zap.Error(err))
	}
}

// Invalidate drops the id list, which is enough to force the next read to miss.
func (c *Redis) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productIDsKey).Err(); err != nil {
		logger.FromCtx(ctx).Warn("product cache invalidation failed", zap.String("layer", "cache"), zap.Error(err))
	}
}
