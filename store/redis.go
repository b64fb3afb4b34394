package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisPromptPrefix = "mjtrans:prompt:"
	redisPromptIndex  = "mjtrans:prompts"
)

// RedisStore is a Redis-backed PromptStore. Each prompt is stored as a
// JSON document under its own key, with a sorted-set index ordered by
// creation time for newest-first listing.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore for the given connection URL.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create stores a new prompt, assigning its id and timestamps.
func (s *RedisStore) Create(ctx context.Context, p *Prompt) error {
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	normalizePrompt(p)

	if err := s.write(ctx, p); err != nil {
		return err
	}
	return s.client.ZAdd(ctx, redisPromptIndex, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: p.ID,
	}).Err()
}

// GetByID returns the prompt with the given id.
func (s *RedisStore) GetByID(ctx context.Context, id string) (*Prompt, error) {
	data, err := s.client.Get(ctx, redisPromptPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p Prompt
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns prompts matching the filter, newest first. Filtering
// happens client-side over the index; the library is small by design.
func (s *RedisStore) List(ctx context.Context, f Filter) (*Page, error) {
	ids, err := s.client.ZRevRange(ctx, redisPromptIndex, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	matched := make([]Prompt, 0, len(ids))
	for _, id := range ids {
		p, err := s.GetByID(ctx, id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if matchesFilter(*p, f) {
			matched = append(matched, *p)
		}
	}

	return paginatePrompts(matched, f.Page, f.PageSize), nil
}

// Update applies the non-nil fields of u to the prompt.
func (s *RedisStore) Update(ctx context.Context, id string, u Update) (*Prompt, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(p, u)
	if err := s.write(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the prompt with the given id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, redisPromptPrefix+id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return s.client.ZRem(ctx, redisPromptIndex, id).Err()
}

// IncrementUsage bumps the prompt's usage counter.
func (s *RedisStore) IncrementUsage(ctx context.Context, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.UsageCount++
	p.UpdatedAt = time.Now()
	return s.write(ctx, p)
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) write(ctx context.Context, p *Prompt) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisPromptPrefix+p.ID, string(data), 0).Err()
}

// Verify RedisStore implements PromptStore
var _ PromptStore = (*RedisStore)(nil)
