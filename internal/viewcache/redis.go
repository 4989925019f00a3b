package viewcache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps bodies under <prefix>page:<key>, tracks the keys of each
// view in the set <prefix>view:<view> and counts invalidations of a view in
// <prefix>version:<view>.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

func NewRedisStore(opt *redis.Options, prefix string, logger *slog.Logger) *RedisStore {
	return NewRedisStoreWithClient(redis.NewClient(opt), prefix, logger)
}

func NewRedisStoreWithClient(client redis.UniversalClient, prefix string, logger *slog.Logger) *RedisStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{client: client, prefix: prefix, logger: logger}
}

func (r *RedisStore) pageKey(key string) string {
	return r.prefix + "page:" + key
}

func (r *RedisStore) viewKey(view string) string {
	return r.prefix + "view:" + view
}

func (r *RedisStore) versionKey(view string) string {
	return r.prefix + "version:" + view
}

// Ping checks connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.pageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("view cache miss", "key", key)
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("view cache get failed", "key", key, "error", err)
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisStore) Version(ctx context.Context, view string) (uint64, error) {
	v, err := r.client.Get(ctx, r.versionKey(view)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("view cache version failed", "view", view, "error", err)
		return 0, err
	}
	return v, nil
}

// Set writes the page only if the view version is unchanged. The version key
// is watched, so an Invalidate racing the write aborts it.
func (r *RedisStore) Set(ctx context.Context, view, key string, body []byte, ttl time.Duration, version uint64) error {
	versionKey := r.versionKey(view)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, r.pageKey(key), body, ttl)
			p.SAdd(ctx, r.viewKey(view), key)
			return nil
		})
		return err
	}, versionKey)
	if errors.Is(err, redis.TxFailedErr) {
		r.logger.Debug("view cache set skipped, view invalidated", "view", view, "key", key)
		return nil
	}
	if err != nil {
		r.logger.Error("view cache set failed", "view", view, "key", key, "error", err)
	}
	return err
}

func (r *RedisStore) Invalidate(ctx context.Context, views ...string) error {
	var errs []error
	for _, v := range views {
		if err := r.client.Incr(ctx, r.versionKey(v)).Err(); err != nil {
			errs = append(errs, err)
			continue
		}
		keys, err := r.client.SMembers(ctx, r.viewKey(v)).Result()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		del := make([]string, 0, len(keys)+1)
		for _, k := range keys {
			del = append(del, r.pageKey(k))
		}
		del = append(del, r.viewKey(v))
		if err := r.client.Del(ctx, del...).Err(); err != nil {
			errs = append(errs, err)
			continue
		}
		r.logger.Debug("view invalidated", "view", v, "pages", len(keys))
	}
	return errors.Join(errs...)
}
