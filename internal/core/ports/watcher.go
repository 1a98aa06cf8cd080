package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change made to a watched source file.
type WatchOp uint8

// Changes reported by a Watcher. Permission changes are never reported.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

var watchOpNames = [...]string{
	OpCreate: "create",
	OpWrite:  "write",
	OpRemove: "remove",
	OpRename: "rename",
}

// String returns the lower case name of op.
func (op WatchOp) String() string {
	if int(op) < len(watchOpNames) {
		return watchOpNames[op]
	}
	return "unknown"
}

// WatchEvent is one change to a file under the watched project.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes to the sources of a project so compiled bundles can be
// invalidated while the preview server runs.
type Watcher interface {
	// Start watches root and every directory below it, including directories created later.
	Start(ctx context.Context, root string) error
	// Stop releases the watcher. Events ends once it is stopped.
	Stop() error
	// Events yields changes until ctx of Start is done or Stop is called.
	Events() iter.Seq[WatchEvent]
}
