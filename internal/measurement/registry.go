package measurement

import (
	"fmt"

	"github.com/philipparndt/photodist/pkg/geometry"
	"go.uber.org/zap"
)

// Registry is the ordered collection of numbered points.
// Points are never removed, so indices and ids stay stable for the session.
type Registry struct {
	points    []Point
	nextID    int
	threshold float64
	journal   PointJournal
	logger    *zap.Logger
}

// NewRegistry creates an empty registry that snaps within threshold pixels
func NewRegistry(threshold float64, journal PointJournal, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		points:    make([]Point, 0),
		nextID:    1,
		threshold: threshold,
		journal:   journal,
		logger:    logger,
	}
}

// Threshold returns the snapping radius
func (r *Registry) Threshold() float64 {
	return r.threshold
}

// FindNear returns the index of the first point, in insertion order, that
// lies within the threshold of pos. It is not a closest-point search.
func (r *Registry) FindNear(pos geometry.Point) (int, bool) {
	for i, p := range r.points {
		if geometry.AreClose(p.Position, pos, r.threshold) {
			return i, true
		}
	}
	return -1, false
}

// Insert registers a new point at pos and durably logs its id before returning it.
// On journal failure nothing is registered and the id is not consumed.
func (r *Registry) Insert(pos geometry.Point) (int, error) {
	id := r.nextID
	if r.journal != nil {
		if err := r.journal.AppendPoint(id); err != nil {
			return 0, fmt.Errorf("failed to record point %d: %w", id, err)
		}
	}

	r.points = append(r.points, Point{ID: id, Position: pos})
	r.nextID++

	r.logger.Debug("point created", zap.Int("id", id), zap.Stringer("position", pos))
	return id, nil
}

// Get returns the point stored at index (not id)
func (r *Registry) Get(index int) Point {
	return r.points[index]
}

// Len returns the number of registered points
func (r *Registry) Len() int {
	return len(r.points)
}
