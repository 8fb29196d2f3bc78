// Package replay drives a measurement session from a plain-text script.
//
// A script has one command per line:
//
//	move X Y   cursor moved to (X, Y)
//	click      left mouse button pressed
//	close      window closed
//
// Blank lines and lines starting with '#' are ignored.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/photodist/internal/measurement"
	"github.com/philipparndt/photodist/pkg/geometry"
)

// ErrSyntax is returned for script lines that cannot be parsed
var ErrSyntax = errors.New("invalid replay script")

// Parse reads a script into the events it describes
func Parse(r io.Reader) ([]measurement.Event, error) {
	var events []measurement.Event
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read replay script: %w", err)
	}

	return events, nil
}

func parseLine(line string) (measurement.Event, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "move":
		if len(fields) != 3 {
			return nil, fmt.Errorf("move needs 2 coordinates, got %d", len(fields)-1)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x coordinate %q", fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y coordinate %q", fields[2])
		}
		return measurement.CursorMoved{Pos: geometry.NewPoint(x, y)}, nil
	case "click":
		if len(fields) != 1 {
			return nil, fmt.Errorf("click takes no arguments")
		}
		return measurement.Clicked{}, nil
	case "close":
		return measurement.Closed{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", fields[0])
	}
}

// Run feeds events to the session until they run out or a Closed event is seen.
// It returns the number of events handled.
func Run(session *measurement.Session, events []measurement.Event) (int, error) {
	for i, ev := range events {
		running, err := session.Handle(ev)
		if err != nil {
			return i + 1, err
		}
		if !running {
			return i + 1, nil
		}
	}
	return len(events), nil
}
