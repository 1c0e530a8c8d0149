// Package observability provides hooks for instrumenting layout runs.
//
// The layout engine is a pure function; this package is the one seam where
// callers can observe what it does without changing what it produces.
// Consumers register hooks at startup to receive events about render
// passes and box composition.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for render events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the layout core dependency-free from observability backends
//   - Allows different backends (logging, metrics, tracing)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(observability.NewLogHooks(logger))
//	    // ... render documents
//	}
//
// Each render pass is identified by a span ID so that events from
// concurrent renders can be correlated.
package observability

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RenderHooks receives events from layout render passes.
//
// Implementations must be safe for concurrent use: independent renders may
// run on independent goroutines.
type RenderHooks interface {
	// OnRenderStart records the start of a render pass. lineLength is the
	// wrap width, or a negative value when wrapping is disabled. atoms is
	// the normalized stream length.
	OnRenderStart(spanID string, lineLength, atoms int)

	// OnRenderComplete records the end of a render pass with the measured
	// content width, the number of emitted lines, and the elapsed time.
	OnRenderComplete(spanID string, lineLength, width, height int, elapsed time.Duration)

	// OnBoxCompose records one box laid out by the compositor at the given
	// width, producing depth sub-lines.
	OnBoxCompose(spanID string, width, depth int)
}

// NewSpanID returns a fresh identifier correlating the events of one
// render pass.
func NewSpanID() string {
	return uuid.NewString()
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string, int, int) {}

func (NoopRenderHooks) OnRenderComplete(string, int, int, int, time.Duration) {}

func (NoopRenderHooks) OnBoxCompose(string, int, int) {}

var (
	mu          sync.RWMutex
	renderHooks RenderHooks = NoopRenderHooks{}
)

// SetRenderHooks registers the hooks implementation used by subsequent
// renders that do not supply their own. Passing nil restores the no-op
// default.
func SetRenderHooks(h RenderHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		renderHooks = NoopRenderHooks{}
		return
	}
	renderHooks = h
}

// Render returns the currently registered hooks. It never returns nil.
func Render() RenderHooks {
	mu.RLock()
	defer mu.RUnlock()
	return renderHooks
}

// LogHooks is a RenderHooks implementation that emits debug-level events
// through a charmbracelet logger.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log every render event to l at debug
// level.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnRenderStart(spanID string, lineLength, atoms int) {
	h.logger.Debug("render start", "span", spanID, "lineLength", lineLength, "atoms", atoms)
}

func (h *LogHooks) OnRenderComplete(spanID string, lineLength, width, height int, elapsed time.Duration) {
	h.logger.Debug("render complete", "span", spanID, "lineLength", lineLength,
		"width", width, "height", height, "elapsed", elapsed)
}

func (h *LogHooks) OnBoxCompose(spanID string, width, depth int) {
	h.logger.Debug("box composed", "span", spanID, "width", width, "depth", depth)
}
