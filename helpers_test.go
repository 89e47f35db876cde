package padezh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padezh/padezh/internal/testutil"
)

// newInflector loads the embedded data with a logger that writes to t.
func newInflector(t *testing.T, opts ...Option) *Inflector {
	t.Helper()
	opts = append([]Option{WithLogger(testutil.NewTestLogger(t))}, opts...)
	in, err := New(opts...)
	require.NoError(t, err)
	return in
}
