package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	testing.TB
	lines []string
}

func (r *recorder) Helper() {}

func (r *recorder) Log(args ...any) { r.lines = append(r.lines, fmt.Sprint(args...)) }

func TestNewTestLogger(t *testing.T) {
	rec := &recorder{TB: t}
	log := NewTestLogger(rec)

	log.Debug("rule chosen", "word", "директор")
	log.Info("phrase analyzed")

	require.Len(t, rec.lines, 2)
	assert.Contains(t, rec.lines[0], "level=DEBUG")
	assert.Contains(t, rec.lines[0], "word=директор")
	assert.NotContains(t, rec.lines[0], "\n")
	assert.Contains(t, rec.lines[1], `msg="phrase analyzed"`)
}
