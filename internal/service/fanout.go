package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/statusinvest-mcp/internal/logger"
)

// ErrInternal is wrapped by every *InternalError.
var ErrInternal = errors.New("internal error")

// InternalError reports an unexpected fault recovered while aggregating.
type InternalError struct {
	Op    string
	Cause any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: unexpected failure: %v", e.Op, e.Cause)
}

func (e *InternalError) Unwrap() error { return ErrInternal }

// recoverInternal turns a panic in the calling operation into an
// *InternalError stored in *err. Must be deferred.
func recoverInternal(op string, err *error) {
	if r := recover(); r != nil {
		logger.L().Error().
			Str("op", op).
			Str("panic", fmt.Sprintf("%v", r)).
			Bytes("stack", debug.Stack()).
			Msg("panic recovered")
		*err = &InternalError{Op: op, Cause: r}
	}
}

// fanOut runs fn once per non-blank symbol and concatenates the results in
// symbol order. With limit < 2 the calls run one after the other on the
// calling goroutine; otherwise at most limit run at once.
func fanOut[T any](ctx context.Context, op string, limit int, symbols []string, fn func(ctx context.Context, symbol string) []T) ([]T, error) {
	slots := make([][]T, len(symbols))

	call := func(ctx context.Context, i int, symbol string) (err error) {
		defer recoverInternal(op, &err)
		slots[i] = fn(ctx, symbol)
		return nil
	}

	if limit < 2 {
		for i, raw := range symbols {
			symbol := strings.TrimSpace(raw)
			if symbol == "" {
				continue
			}
			if err := call(ctx, i, symbol); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)
		for i, raw := range symbols {
			symbol := strings.TrimSpace(raw)
			if symbol == "" {
				continue
			}
			g.Go(func() error { return call(gctx, i, symbol) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]T, 0, len(symbols))
	for _, s := range slots {
		out = append(out, s...)
	}
	return out, nil
}
