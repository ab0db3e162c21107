package progress

import (
	"context"
	"time"

	"github.com/act3-ai/gitkit/pkg/gittypes"
)

//go:generate go tool mockgen -package progressmock -destination ./progressmock/evaluatormock.gen.go . Evaluator

// Inspired by https://github.com/machinebox/progress/blob/master/progress.go.

// Evaluator facilitates progress monitoring.
type Evaluator interface {
	// Progress returns a total, a delta since it's last call, and any error
	// encountered since the last call to Progress.
	Progress() (int, int, error)
}

// Progress is an message reporting a cumulative total and change since the last
// Progress message.
type Progress struct {
	// Total is the cumulative total.
	Total int
	// Delta is the difference between Total and the previous message's Total.
	Delta int
	// Err is the error the Evaluator reported, if any. It is set on the
	// last message only.
	Err error
}

// NewTicker sends an [Evaluator]'s [Progress] on ch every d until ctx is
// done or the evaluator reports an error. ch is closed when ticking stops.
func NewTicker(ctx context.Context, eval Evaluator, d time.Duration, ch chan<- Progress) {
	t := time.NewTicker(d)

	go func() {
		defer close(ch)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				total, delta, err := eval.Progress()
				p := Progress{
					Total: total,
					Delta: delta,
					Err:   err,
				}

				select {
				case ch <- p:
				case <-ctx.Done():
					return
				}
				if err != nil { // io.EOF, or other issues
					return
				}
			}
		}
	}()
}

// Report forwards an [Evaluator]'s progress to fn as op, measured against
// total, every d. The first report carries [gittypes.OpBegin] and the last
// [gittypes.OpEnd]. The returned channel is closed once the final report was
// delivered, which happens when eval reports an error (io.EOF included) or
// ctx is done.
func Report(ctx context.Context, eval Evaluator, d time.Duration, op gittypes.OpCode, total gittypes.ProgressValue, fn gittypes.ProgressFunc) <-chan struct{} {
	ch := make(chan Progress)
	done := make(chan struct{})
	NewTicker(ctx, eval, d, ch)

	go func() {
		defer close(done)
		stage := gittypes.OpBegin
		var last Progress
		for p := range ch {
			last = p
			if p.Err != nil {
				break
			}
			fn.Report(op|stage, gittypes.Count(p.Total), total, "")
			stage = 0
		}
		fn.Report(op|stage|gittypes.OpEnd, gittypes.Count(last.Total), total, "done.")
	}()

	return done
}
