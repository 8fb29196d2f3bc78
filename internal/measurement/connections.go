package measurement

import (
	"fmt"

	"go.uber.org/zap"
)

// ConnectionLog is the append-only list of finished lines
type ConnectionLog struct {
	lines   []Line
	journal ConnectionJournal
	logger  *zap.Logger
}

// NewConnectionLog creates an empty connection log
func NewConnectionLog(journal ConnectionJournal, logger *zap.Logger) *ConnectionLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConnectionLog{
		lines:   make([]Line, 0),
		journal: journal,
		logger:  logger,
	}
}

// Record durably appends the connection and then keeps it for rendering.
// A journal failure leaves the in-memory list untouched.
func (c *ConnectionLog) Record(line Line) error {
	if c.journal != nil {
		if err := c.journal.AppendConnection(line.StartID, line.EndID, line.Distance); err != nil {
			return fmt.Errorf("failed to record connection %d-%d: %w", line.StartID, line.EndID, err)
		}
	}

	c.lines = append(c.lines, line)

	c.logger.Info("connection recorded",
		zap.Int("start", line.StartID),
		zap.Int("end", line.EndID),
		zap.Float64("distance", line.Distance))
	return nil
}

// Lines returns a copy of all recorded lines in creation order
func (c *ConnectionLog) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of recorded lines
func (c *ConnectionLog) Len() int {
	return len(c.lines)
}

// Last returns the most recently recorded line
func (c *ConnectionLog) Last() (Line, bool) {
	if len(c.lines) == 0 {
		return Line{}, false
	}
	return c.lines[len(c.lines)-1], true
}
