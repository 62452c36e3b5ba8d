package repository

import "context"

// IdempotencyRepository caches HTTP responses by client retry key.
type IdempotencyRepository interface {
	Get(ctx context.Context, key string) (status int, body []byte, found bool, err error)
	Save(ctx context.Context, key string, status int, body []byte) error
}
