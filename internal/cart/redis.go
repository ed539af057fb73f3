package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"henawys-art/internal/domain"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Store that keeps each session under two keys,
// cart:{sid}:items and cart:{sid}:customer, refreshed to ttl on every write.
func NewRedis(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func itemsKey(sessionID string) string    { return fmt.Sprintf("cart:%s:items", sessionID) }
func customerKey(sessionID string) string { return fmt.Sprintf("cart:%s:customer", sessionID) }

func (s *redisStore) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, itemsKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cart store: read items: %w", err)
	}
	return decodeItems(raw)
}

func (s *redisStore) AddItem(ctx context.Context, sessionID string, item domain.CartItem) error {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.writeItems(ctx, sessionID, append(items, item))
}

func (s *redisStore) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.writeItems(ctx, sessionID, removeByID(items, itemID))
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, itemsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart store: clear: %w", err)
	}
	return nil
}

func (s *redisStore) Customer(ctx context.Context, sessionID string) (domain.CustomerInfo, error) {
	raw, err := s.client.Get(ctx, customerKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.CustomerInfo{}, nil
		}
		return domain.CustomerInfo{}, fmt.Errorf("cart store: read customer: %w", err)
	}
	return decodeCustomer(raw)
}

func (s *redisStore) UpdateCustomer(ctx context.Context, sessionID string, patch domain.CustomerInfo) (domain.CustomerInfo, error) {
	current, err := s.Customer(ctx, sessionID)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	merged := mergeCustomer(current, patch)
	raw, err := encodeCustomer(merged)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	if err := s.client.Set(ctx, customerKey(sessionID), raw, s.ttl).Err(); err != nil {
		return domain.CustomerInfo{}, fmt.Errorf("cart store: write customer: %w", err)
	}
	return merged, nil
}

func (s *redisStore) writeItems(ctx context.Context, sessionID string, items []domain.CartItem) error {
	raw, err := encodeItems(items)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, itemsKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart store: write items: %w", err)
	}
	return nil
}
