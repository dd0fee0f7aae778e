package cmd

import (
	"context"
	"io"
	"os"
)

type inputKey struct{}

// stdinArg is the special message argument that reads messages from the
// command input, one per line.
const stdinArg = "-"

// WithInput returns a new context.Context carrying the reader that message
// argument "-" reads from.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

// inputFrom returns the reader stored in ctx by WithInput, or [os.Stdin] if
// none was stored.
func inputFrom(ctx context.Context) io.Reader {
	r, ok := ctx.Value(inputKey{}).(io.Reader)
	if !ok || r == nil {
		return os.Stdin
	}

	return r
}
