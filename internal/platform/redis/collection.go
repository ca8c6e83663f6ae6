package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrNotFound = errors.New("redis: entry not found")
	ErrExists   = errors.New("redis: entry already exists")
)

// Collection stores values as JSON under <prefix>:<id> and keeps insertion order in
// the list <prefix>:ids.
type Collection[T any] struct {
	client *goredis.Client
	prefix string
}

func NewCollection[T any](client *goredis.Client, prefix string) *Collection[T] {
	return &Collection[T]{client: client, prefix: prefix}
}

func (c *Collection[T]) key(id string) string {
	return c.prefix + ":" + id
}

func (c *Collection[T]) indexKey() string {
	return c.prefix + ":ids"
}

func (c *Collection[T]) Find(ctx context.Context, id string) (*T, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Append stores value and pushes id to the end of the order list in one transaction,
// so an entry is never visible without its position in the list.
func (c *Collection[T]) Append(ctx context.Context, id string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key(id), err)
	}
	key := c.key(id)
	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrExists
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			pipe.RPush(ctx, c.indexKey(), id)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, goredis.TxFailedErr) {
		// The watched key changed under us: a concurrent Append won.
		return ErrExists
	}
	return err
}

// Replace overwrites an existing value; the order list is left alone.
func (c *Collection[T]) Replace(ctx context.Context, id string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key(id), err)
	}
	updated, err := c.client.SetXX(ctx, c.key(id), raw, 0).Result()
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// All returns every value in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]*T, error) {
	ids, err := c.client.LRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*T{}, nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, c.key(id))
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		decoded, err := decode[T]([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

// Remove deletes exactly one entry and its position in the order list.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	var del *goredis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LRem(ctx, c.indexKey(), 1, id)
		del = pipe.Del(ctx, c.key(id))
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func decode[T any](raw []byte) (*T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return &value, nil
}
