package report

import (
	"strings"
	"testing"

	"github.com/philipparndt/photodist/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, points []int, connections []journal.Connection, opts Options) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Render(&b, points, connections, opts))
	return b.String()
}

func TestRender(t *testing.T) {
	connections := []journal.Connection{
		{StartID: 1, EndID: 2, Distance: 40},
		{StartID: 2, EndID: 2, Distance: 5},
	}

	out := render(t, []int{1, 2}, connections, Options{Top: 5})

	assert.Contains(t, out, "Measurement Report")
	assert.Contains(t, out, "Distance")
	assert.Contains(t, out, "40.00")
	assert.Contains(t, out, "Self lines")
	assert.Contains(t, out, "45.00 px")
	assert.Contains(t, out, "22.50 px")
	assert.Contains(t, out, "Longest 2")
	assert.Contains(t, out, " 1. 1-2 40.00 px")
	assert.Contains(t, out, "Shortest 2")
	assert.Contains(t, out, " 1. 2-2 5.00 px")
	assert.NotContains(t, out, "No connections recorded.")
	assert.NotContains(t, out, "Between")
}

func TestRenderLimitsLists(t *testing.T) {
	connections := []journal.Connection{
		{StartID: 1, EndID: 2, Distance: 10},
		{StartID: 2, EndID: 3, Distance: 30},
		{StartID: 3, EndID: 4, Distance: 20},
	}

	out := render(t, []int{1, 2, 3, 4}, connections, Options{Top: 1})

	assert.Contains(t, out, "Longest 1")
	assert.Contains(t, out, " 1. 2-3 30.00 px")
	assert.Contains(t, out, "Shortest 1")
	assert.Contains(t, out, " 1. 1-2 10.00 px")
	assert.NotContains(t, out, " 2. ")
}

func TestRenderLengthRange(t *testing.T) {
	connections := []journal.Connection{
		{StartID: 1, EndID: 2, Distance: 10},
		{StartID: 2, EndID: 3, Distance: 30},
		{StartID: 3, EndID: 4, Distance: 20},
	}

	out := render(t, []int{1, 2, 3, 4}, connections, Options{MinLength: 15, MaxLength: 30})

	assert.Contains(t, out, "Between 15.00 and 30.00 px:")
	assert.Contains(t, out, " 1. 2-3 30.00 px")
	assert.Contains(t, out, " 2. 3-4 20.00 px")
	assert.NotContains(t, out, "1-2 10.00 px")
}

func TestRenderEmpty(t *testing.T) {
	out := render(t, nil, nil, Options{Top: 5, MaxLength: 100})

	assert.Contains(t, out, "No connections recorded.")
	assert.Contains(t, out, "0.00 px")
	assert.NotContains(t, out, " 1. ")
	assert.NotContains(t, out, "Between")
}
