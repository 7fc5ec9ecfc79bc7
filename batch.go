package morse

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodeBatch encodes every text concurrently. Results keep the order of
// texts. The first failure cancels the remaining work and is returned with
// the index of the failing text.
func EncodeBatch(ctx context.Context, texts []string, opts ...EncoderOption) ([][]byte, error) {
	enc := NewEncoder(opts...)
	out := make([][]byte, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := enc.Encode(text)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			out[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeBatch is the inverse of [EncodeBatch].
func DecodeBatch(ctx context.Context, srcs [][]byte) ([]string, error) {
	out := make([]string, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range srcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Decode(src)
			if err != nil {
				return fmt.Errorf("buffer %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
