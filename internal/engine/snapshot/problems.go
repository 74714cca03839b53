package snapshot

import (
	"fmt"
	"sync/atomic"

	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/core/ports"
	"go.trai.ch/zerr"
)

// problems counts non-fatal issues found while storing. It is shared by
// concurrent task encoders.
type problems struct {
	max    int64
	count  atomic.Int64
	logger ports.Logger
}

func newProblems(maxProblems int, logger ports.Logger) *problems {
	return &problems{max: int64(maxProblems), logger: logger}
}

// missingValue reports a required property without a value. It fails once the
// number of problems exceeds the configured maximum.
func (p *problems) missingValue(task *domain.Task, property string) error {
	n := p.count.Add(1)
	p.logger.Warn(fmt.Sprintf("task %s: required property '%s' has no value and is not stored", task.Path(), property))
	if n > p.max {
		return zerr.With(zerr.Wrap(domain.ErrTooManyProblems, "store"), "max_problems", p.max)
	}
	return nil
}

// Count returns the number of problems reported so far.
func (p *problems) Count() int {
	return int(p.count.Load())
}
