package storage

import (
	"context"
	"fmt"
)

const (
	DriverBolt   = "bolt"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Options struct {
	Driver   string
	Path     string
	RedisURL string
}

// opens the lease store selected by opts.Driver
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Driver {
	case DriverBolt, "":
		b, err := OpenBoltDB(opts.Path)
		if err != nil {
			return nil, err
		}
		return New(DriverBolt, b), nil
	case DriverMemory:
		return New(DriverMemory, NewMemory()), nil
	case DriverRedis:
		r, err := DialRedis(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return New(DriverRedis, r), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
