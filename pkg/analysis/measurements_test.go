package analysis

import (
	"testing"

	"github.com/philipparndt/photodist/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEdges() []EdgeInfo {
	return []EdgeInfo{
		{StartID: 1, EndID: 2, Length: 40},
		{StartID: 2, EndID: 3, Length: 10},
		{StartID: 3, EndID: 3, Length: 0},
		{StartID: 1, EndID: 3, Length: 30},
	}
}

func TestAnalyzeEdges(t *testing.T) {
	result := AnalyzeEdges(sampleEdges())

	assert.Equal(t, 4, result.EdgeCount)
	assert.Equal(t, 3, result.PointCount)
	assert.Equal(t, 1, result.SelfLoops)
	assert.InDelta(t, 80.0, result.TotalLength, 1e-10)
	assert.InDelta(t, 0.0, result.MinEdgeLength, 1e-10)
	assert.InDelta(t, 40.0, result.MaxEdgeLength, 1e-10)
	assert.InDelta(t, 20.0, result.AvgEdgeLength, 1e-10)
}

func TestAnalyzeEdgesEmpty(t *testing.T) {
	result := AnalyzeEdges(nil)

	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.MinEdgeLength)
	assert.Zero(t, result.MaxEdgeLength)
	assert.Zero(t, result.AvgEdgeLength)
	assert.Empty(t, result.AllEdges)
}

func TestAnalyzeEdgesCopiesInput(t *testing.T) {
	edges := sampleEdges()
	result := AnalyzeEdges(edges)
	edges[0].Length = 999

	assert.InDelta(t, 40.0, result.AllEdges[0].Length, 1e-10)
}

func TestFindLongestAndShortestEdges(t *testing.T) {
	result := AnalyzeEdges(sampleEdges())

	longest := FindLongestEdges(result, 2)
	require.Len(t, longest, 2)
	assert.Equal(t, EdgeInfo{StartID: 1, EndID: 2, Length: 40}, longest[0])
	assert.Equal(t, EdgeInfo{StartID: 1, EndID: 3, Length: 30}, longest[1])

	shortest := FindShortestEdges(result, 10)
	require.Len(t, shortest, 4)
	assert.Equal(t, 3, shortest[0].StartID)
	assert.Equal(t, 3, shortest[0].EndID)

	assert.Empty(t, FindShortestEdges(result, -1))
}

func TestFindEdgesByLength(t *testing.T) {
	result := AnalyzeEdges(sampleEdges())

	edges := FindEdgesByLength(result, 10, 30)
	require.Len(t, edges, 2)
	assert.Equal(t, 2, edges[0].StartID)
	assert.Equal(t, 1, edges[1].StartID)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "40.00 px", FormatMeasurement(40, ""))
	assert.Equal(t, "3.14 mm", FormatMeasurement(3.14159, "mm"))
	assert.Equal(t, "(1.00, 2.50)", FormatPoint(geometry.NewPoint(1, 2.5)))
}
