package raillog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ib-77/railcheck/pkg/rail"
)

const indentStep = "  "

// Indents maps tags to indentation levels so repeated diagnostics for the
// same logical flow align visually. It is an explicit object owned by the
// call site, created per logical operation or per process. Levels are
// monotonic per tag and are not reset between chains reusing a tag; callers
// wanting a reset create a fresh Indents. Safe for concurrent use.
type Indents struct {
	mu     sync.Mutex
	levels map[string]int
}

func NewIndents() *Indents {
	return &Indents{levels: make(map[string]int)}
}

// next returns the current level for tag and advances it for the next call.
func (i *Indents) next(tag string) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	level := i.levels[tag]
	i.levels[tag] = level + 1
	return level
}

// Level returns the current indentation level for tag without advancing it.
func (i *Indents) Level(tag string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.levels[tag]
}

// LogResult renders a result as structured log records. A success emits one
// informational record and, when onSuccess is non-nil, hands the unwrapped
// value to it for caller-specific enrichment. A failure emits one warning
// record per node of the error tree, depth-first, indented by the node's
// depth on top of the tag's level in ind. A cancel emits one error record.
// The result is never mutated.
func LogResult[T any](ctx context.Context, log *slog.Logger, r rail.Result[T],
	ind *Indents, onSuccess func(ctx context.Context, v T)) {

	level := ind.next(r.Tag())

	switch {
	case r.IsSuccess():
		log.InfoContext(ctx, pad(level)+"success",
			slog.String("tag", r.Tag()))
		if onSuccess != nil {
			onSuccess(ctx, r.Result())
		}
	case r.IsCancel():
		log.ErrorContext(ctx, pad(level)+"cancelled",
			slog.String("tag", r.Tag()),
			slog.Any("error", r.Err()))
	default:
		logErrorTree(ctx, log, r.ErrorValue(), level, 0)
	}
}

func logErrorTree(ctx context.Context, log *slog.Logger, e *rail.Error, level, depth int) {
	if e == nil {
		return
	}

	log.WarnContext(ctx, pad(level+depth)+e.Message(),
		slog.String("tag", e.Tag()),
		slog.Int("depth", depth))

	for _, cause := range e.Causes() {
		logErrorTree(ctx, log, cause, level, depth+1)
	}
}

func pad(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(indentStep, level)
}
