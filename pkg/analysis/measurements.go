package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/photodist/pkg/geometry"
)

// EdgeInfo contains information about a recorded connection
type EdgeInfo struct {
	StartID int
	EndID   int
	Length  float64
}

// MeasurementResult contains summary statistics over a set of connections
type MeasurementResult struct {
	EdgeCount     int
	PointCount    int
	TotalLength   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	SelfLoops     int
	AllEdges      []EdgeInfo
}

// AnalyzeEdges computes summary statistics for the given connections.
// Min and max are zero when there are no edges.
func AnalyzeEdges(edges []EdgeInfo) *MeasurementResult {
	result := &MeasurementResult{
		AllEdges: make([]EdgeInfo, len(edges)),
	}
	copy(result.AllEdges, edges)

	if len(edges) == 0 {
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	points := make(map[int]struct{})

	for _, edge := range edges {
		result.TotalLength += edge.Length
		if edge.Length < minLength {
			minLength = edge.Length
		}
		if edge.Length > maxLength {
			maxLength = edge.Length
		}
		if edge.StartID == edge.EndID {
			result.SelfLoops++
		}
		points[edge.StartID] = struct{}{}
		points[edge.EndID] = struct{}{}
	}

	result.EdgeCount = len(edges)
	result.PointCount = len(points)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = result.TotalLength / float64(result.EdgeCount)

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count < 0 {
		count = 0
	}
	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a distance with two decimals and a unit suffix
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "px"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
