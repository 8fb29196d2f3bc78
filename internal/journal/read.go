package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a log line cannot be parsed
var ErrMalformedLine = errors.New("malformed log line")

// Connection is a parsed connections.txt entry
type Connection struct {
	StartID  int
	EndID    int
	Distance float64
}

// ReadPoints reads all point ids from a points log.
// A missing log is empty: logs are only created by their first append.
func ReadPoints(path string) ([]int, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ParsePoints(file)
}

// ParsePoints parses point ids, one per line. Blank lines are skipped.
func ParsePoints(r io.Reader) ([]int, error) {
	var ids []int
	err := scanLines(r, func(lineNo int, line string) error {
		id, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("line %d %q: %w", lineNo, line, ErrMalformedLine)
		}
		ids = append(ids, id)
		return nil
	})
	return ids, err
}

// ReadConnections reads all entries from a connections log.
// A missing log is empty.
func ReadConnections(path string) ([]Connection, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ParseConnections(file)
}

// ParseConnections parses "<start> <end> <distance>" lines. Blank lines are skipped.
func ParseConnections(r io.Reader) ([]Connection, error) {
	var connections []Connection
	err := scanLines(r, func(lineNo int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("line %d %q: %w", lineNo, line, ErrMalformedLine)
		}

		startID, err1 := strconv.Atoi(fields[0])
		endID, err2 := strconv.Atoi(fields[1])
		distance, err3 := strconv.ParseFloat(fields[2], 64)
		if err := errors.Join(err1, err2, err3); err != nil {
			return fmt.Errorf("line %d %q: %w", lineNo, line, ErrMalformedLine)
		}

		connections = append(connections, Connection{StartID: startID, EndID: endID, Distance: distance})
		return nil
	})
	return connections, err
}

func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
