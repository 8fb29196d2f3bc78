package measurement

import (
	"fmt"

	"github.com/philipparndt/photodist/pkg/geometry"
	"go.uber.org/zap"
)

// Session owns every piece of interaction state: the point registry,
// the connection log, the pending start point and the cursor.
// It is driven by one goroutine and performs no locking.
type Session struct {
	Points      *Registry
	Connections *ConnectionLog

	pendingIndex int
	hasPending   bool
	cursor       geometry.Point
	hasCursor    bool
	logger       *zap.Logger
}

// NewSession creates an idle session logging through journal
func NewSession(threshold float64, journal Journal, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		Points:      NewRegistry(threshold, journal, logger),
		Connections: NewConnectionLog(journal, logger),
		logger:      logger,
	}
}

// Handle dispatches a single event to completion.
// It returns false once the session has been closed.
func (s *Session) Handle(ev Event) (bool, error) {
	switch e := ev.(type) {
	case CursorMoved:
		s.MoveCursor(e.Pos)
	case Clicked:
		if err := s.Click(); err != nil {
			return true, err
		}
	case FrameTick:
		// Drawing is done by the caller; nothing changes here
	case Closed:
		return false, nil
	default:
		panic(fmt.Sprintf("measurement: unhandled event %T", ev))
	}
	return true, nil
}

// MoveCursor records the latest cursor position
func (s *Session) MoveCursor(pos geometry.Point) {
	s.cursor = pos
	s.hasCursor = true
}

// Click interprets a left click at the current cursor position.
// Clicks before the first cursor move are ignored.
func (s *Session) Click() error {
	if !s.hasCursor {
		return nil
	}
	if s.hasPending {
		return s.completeLine(s.cursor)
	}
	return s.beginLine(s.cursor)
}

// beginLine selects or creates the start point
func (s *Session) beginLine(pos geometry.Point) error {
	if index, ok := s.Points.FindNear(pos); ok {
		s.setPending(index)
		return nil
	}

	if _, err := s.Points.Insert(pos); err != nil {
		return err
	}
	s.setPending(s.Points.Len() - 1)
	return nil
}

// completeLine resolves the end point and records the connection.
// The distance is measured to the raw click position, not to the snapped point.
func (s *Session) completeLine(pos geometry.Point) error {
	start := s.Points.Get(s.pendingIndex)
	distance := geometry.Distance(start.Position, pos)

	var endID int
	if index, ok := s.Points.FindNear(pos); ok {
		endID = s.Points.Get(index).ID
	} else {
		id, err := s.Points.Insert(pos)
		if err != nil {
			return err
		}
		endID = id
	}

	line := Line{
		StartID:  start.ID,
		EndID:    endID,
		Start:    start.Position,
		End:      pos,
		Distance: distance,
	}
	if err := s.Connections.Record(line); err != nil {
		return err
	}

	if start.ID == endID {
		s.logger.Debug("line resolved back to its start point", zap.Int("id", endID))
	}

	s.hasPending = false
	return nil
}

func (s *Session) setPending(index int) {
	s.pendingIndex = index
	s.hasPending = true
	s.logger.Debug("line started", zap.Int("start", s.Points.Get(index).ID))
}

// State reports whether a start point is pending
func (s *Session) State() InteractionState {
	if s.hasPending {
		return Pending
	}
	return Idle
}

// Pending returns the pending start point
func (s *Session) Pending() (Point, bool) {
	if !s.hasPending {
		return Point{}, false
	}
	return s.Points.Get(s.pendingIndex), true
}

// Cursor returns the last known cursor position
func (s *Session) Cursor() (geometry.Point, bool) {
	return s.cursor, s.hasCursor
}

// Lines returns all finished lines
func (s *Session) Lines() []Line {
	return s.Connections.Lines()
}

// Preview returns the in-progress line from the pending start point to the
// cursor. It is recomputed on every call and never recorded.
func (s *Session) Preview() (Line, bool) {
	start, ok := s.Pending()
	if !ok || !s.hasCursor {
		return Line{}, false
	}
	return Line{
		StartID:  start.ID,
		Start:    start.Position,
		End:      s.cursor,
		Distance: geometry.Distance(start.Position, s.cursor),
	}, true
}
