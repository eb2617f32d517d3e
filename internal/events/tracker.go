// ABOUTME: Event tracking that records config file changes made by syscolor
// ABOUTME: commands so fallback and format edits can be reviewed later
package events

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Change types recorded for a file operation
const (
	ChangeTypeCreate   = "create"
	ChangeTypeUpdate   = "update"
	ChangeTypeDelete   = "delete"
	ChangeTypeNoChange = "no-change"
	ChangeTypeUnknown  = "unknown"
)

// FileOperation represents a single file modification event
type FileOperation struct {
	Timestamp  time.Time         `json:"timestamp"`
	Operation  string            `json:"operation"`  // "config set-fallback", "config reset", etc.
	File       string            `json:"file"`       // Absolute path
	ChangeType string            `json:"changeType"` // create/update/delete
	Before     *Snapshot         `json:"before,omitempty"`
	After      *Snapshot         `json:"after,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Snapshot represents the state of a file at a point in time
type Snapshot struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// EventWriter writes and queries file operation events
type EventWriter interface {
	Write(event *FileOperation) error
	Query(filters EventFilters) ([]*FileOperation, error)
}

// EventFilters for querying events
type EventFilters struct {
	File      string
	Operation string
	Since     time.Time
	Limit     int
}

// Tracker records file operations
type Tracker struct {
	enabled bool
	writer  EventWriter
}

// NewTracker creates a new event tracker
func NewTracker(writer EventWriter, enabled bool) *Tracker {
	return &Tracker{
		enabled: enabled && writer != nil,
		writer:  writer,
	}
}

// LogPath returns the operations log inside a syscolor home
func LogPath(home string) string {
	return filepath.Join(home, "events", "operations.log")
}

// ForHome returns a tracker writing to the operations log in home.
// The tracker is disabled if the log directory cannot be created.
func ForHome(home string) *Tracker {
	writer, err := NewJSONLWriter(LogPath(home))
	if err != nil {
		return NewTracker(nil, false)
	}
	return NewTracker(writer, true)
}

// SetEnabled enables or disables the tracker
func (t *Tracker) SetEnabled(enabled bool) {
	t.enabled = enabled && t.writer != nil
}

// IsEnabled returns whether the tracker is enabled
func (t *Tracker) IsEnabled() bool {
	return t.enabled
}

// Query returns recorded events, most recent first
func (t *Tracker) Query(filters EventFilters) ([]*FileOperation, error) {
	if t.writer == nil {
		return []*FileOperation{}, nil
	}
	return t.writer.Query(filters)
}

// RecordFileWrite wraps a file write operation with event tracking
func (t *Tracker) RecordFileWrite(operation, file string, details map[string]string, fn func() error) error {
	if !t.enabled {
		return fn()
	}

	before := snapshot(file)
	err := fn()
	after := snapshot(file)

	event := &FileOperation{
		Timestamp:  time.Now(),
		Operation:  operation,
		File:       file,
		ChangeType: inferChangeType(before, after),
		Before:     before,
		After:      after,
		Details:    details,
	}
	if err != nil {
		event.Error = err.Error()
	}

	// A failed log write never fails the operation itself
	_ = t.writer.Write(event)

	return err
}

// snapshot creates a snapshot of a file's current state
func snapshot(path string) *Snapshot {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	hash, err := hashFile(path)
	if err != nil {
		return &Snapshot{Size: info.Size()}
	}

	return &Snapshot{
		Hash: hash,
		Size: info.Size(),
	}
}

// hashFile computes SHA-256 hash of a file
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// inferChangeType determines the type of change based on before/after snapshots
func inferChangeType(before, after *Snapshot) string {
	switch {
	case before == nil && after != nil:
		return ChangeTypeCreate
	case before != nil && after == nil:
		return ChangeTypeDelete
	case before != nil && after != nil:
		if before.Hash != after.Hash {
			return ChangeTypeUpdate
		}
		return ChangeTypeNoChange
	}
	return ChangeTypeUnknown
}
