// Package blob stores file content as blob objects.
package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/act3-ai/gitkit/internal/progress"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

// DefaultInterval is how often [Write] reports progress by default.
const DefaultInterval = 500 * time.Millisecond

// Writer writes blobs into an object storage.
type Writer struct {
	s storer.EncodedObjectStorer

	// Interval between progress reports, [DefaultInterval] if zero.
	Interval time.Duration
	// Progress receives [gittypes.OpWriting] reports counted in bytes. May
	// be nil.
	Progress gittypes.ProgressFunc
}

// NewWriter returns a [Writer] storing into s.
func NewWriter(s storer.EncodedObjectStorer) *Writer {
	return &Writer{s: s}
}

// Write stores the size bytes read from r as a blob and returns its hash. r
// is closed.
func (w *Writer) Write(ctx context.Context, r io.ReadCloser, size int64) (plumbing.Hash, error) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	obj := w.s.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(size)
	ow, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("opening blob writer: %w", err)
	}

	erc := progress.NewEvalReadCloser(r)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := progress.Report(ctx, erc, interval, gittypes.OpWriting, gittypes.Count(size), w.Progress)
	fail := func(err error) (plumbing.Hash, error) {
		cancel()
		<-done
		return plumbing.ZeroHash, err
	}

	n, err := io.Copy(ow, erc)
	if err != nil {
		_ = erc.Close()
		_ = ow.Close()
		return fail(fmt.Errorf("copying blob content: %w", err))
	}
	if err := erc.Close(); err != nil {
		return fail(fmt.Errorf("closing blob source: %w", err))
	}
	if err := ow.Close(); err != nil {
		return fail(fmt.Errorf("closing blob writer: %w", err))
	}
	if n != size {
		return fail(fmt.Errorf("%w: read %d of %d bytes", io.ErrUnexpectedEOF, n, size))
	}
	// the final report follows the next tick
	<-done

	h, err := w.s.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("storing blob: %w", err)
	}
	slog.DebugContext(ctx, "stored blob", "hash", h.String(), "size", size)
	return h, nil
}
