// Package journal persists points and connections to two append-only text files.
//
// points.txt holds one decimal point id per line. connections.txt holds one
// "<start_id> <end_id> <distance>" line per connection with the distance
// formatted to two decimals. Every append opens, writes, syncs and closes the
// file so the logs match the in-memory session whenever an append returns.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// DefaultPointsFile is the default points log name
	DefaultPointsFile = "points.txt"
	// DefaultConnectionsFile is the default connections log name
	DefaultConnectionsFile = "connections.txt"
)

// Files appends to the points and connections logs
type Files struct {
	PointsPath      string
	ConnectionsPath string
	logger          *zap.Logger
}

// New creates a journal writing to the given paths
func New(pointsPath, connectionsPath string, logger *zap.Logger) *Files {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Files{
		PointsPath:      pointsPath,
		ConnectionsPath: connectionsPath,
		logger:          logger,
	}
}

// InDir creates a journal using the default file names inside dir
func InDir(dir string, logger *zap.Logger) *Files {
	return New(filepath.Join(dir, DefaultPointsFile), filepath.Join(dir, DefaultConnectionsFile), logger)
}

// Reset removes both logs so the session starts fresh.
// Failures are ignored; a missing file is the normal case.
func (f *Files) Reset() {
	for _, path := range []string{f.ConnectionsPath, f.PointsPath} {
		err := os.Remove(path)
		switch {
		case err == nil:
			f.logger.Debug("removed previous log", zap.String("path", path))
		case errors.Is(err, fs.ErrNotExist):
		default:
			f.logger.Debug("could not remove previous log", zap.String("path", path), zap.Error(err))
		}
	}
}

// AppendPoint appends a point id to the points log
func (f *Files) AppendPoint(id int) error {
	return appendLine(f.PointsPath, fmt.Sprintf("%d\n", id))
}

// AppendConnection appends a connection to the connections log
func (f *Files) AppendConnection(startID, endID int, distance float64) error {
	return appendLine(f.ConnectionsPath, FormatConnection(startID, endID, distance)+"\n")
}

// FormatConnection formats a connection log entry without the trailing newline
func FormatConnection(startID, endID int, distance float64) string {
	return fmt.Sprintf("%d %d %.2f", startID, endID, distance)
}

func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
