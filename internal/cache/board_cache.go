package cache

import (
	"context"
	"errors"
)

// BoardCache holds the serialized, sorted category list so board reads skip
// the database. Category mutations must invalidate it.
type BoardCache interface {
	Get(ctx context.Context) ([]byte, error)

	Set(ctx context.Context, payload []byte) error

	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("board cache miss")
