package cmdutil

import (
	"context"
	"errors"
	"io"
)

// RunStream pulls items from next until io.EOF and hands each to visit.
// The context is checked between items. It returns the number of items
// visited and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	next func() (T, error),
	visit func(T) error,
) (int, error) {
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		item, err := next()
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if err := visit(item); err != nil {
			return total, err
		}
		total++
	}
}
