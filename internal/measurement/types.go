package measurement

import (
	"github.com/philipparndt/photodist/pkg/geometry"
)

// Point is a registered, numbered position on the photograph
type Point struct {
	ID       int
	Position geometry.Point
}

// Line represents a finished connection between two registered points.
// Start and End are copied coordinates; End is the raw click position.
type Line struct {
	StartID  int
	EndID    int
	Start    geometry.Point
	End      geometry.Point
	Distance float64
}

// PointJournal durably records newly created point ids
type PointJournal interface {
	AppendPoint(id int) error
}

// ConnectionJournal durably records finished connections
type ConnectionJournal interface {
	AppendConnection(startID, endID int, distance float64) error
}

// Journal records both points and connections
type Journal interface {
	PointJournal
	ConnectionJournal
}

// InteractionState is the state of the click state machine
type InteractionState int

const (
	// Idle means no start point is pending
	Idle InteractionState = iota
	// Pending means a start point was chosen and the next click completes a line
	Pending
)

// String returns a readable state name
func (s InteractionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}
