// Package progress reports the progress of long running Git operations
// through [gittypes.ProgressFunc].
package progress

import (
	"io"
	"sync"
)

// Inspired by https://github.com/machinebox/progress/blob/master/reader.go.

// EvalReadCloser is an [io.ReadCloser] reporting the bytes read through it.
type EvalReadCloser interface {
	io.ReadCloser
	Evaluator
}

// readCloser maintains progress information on the bytes read through it.
// Implements [Evaluator].
type readCloser struct {
	rc io.ReadCloser

	mu    sync.Mutex
	total int
	delta int
	err   error
}

// NewEvalReadCloser wraps an [io.ReadCloser] with capabilities to report bytes read
// so far and bytes read since the last check.
func NewEvalReadCloser(rc io.ReadCloser) EvalReadCloser {
	return &readCloser{
		rc: rc,
	}
}

// Read wraps [io.Reader.Read] with internal progress updates.
func (r *readCloser) Read(p []byte) (n int, err error) {
	n, err = r.rc.Read(p)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total += n
	r.delta += n
	if r.err == nil {
		r.err = err
	}
	return
}

// Progress returns the total number of bytes that have been read so far as
// well as bytes read since the last call to Progress.
func (r *readCloser) Progress() (soFar, sinceLast int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	soFar = r.total
	sinceLast = r.delta
	r.delta = 0
	err = r.err
	return
}

// Close wraps an [io.ReadCloser.Close] method. Closing ends progress
// reporting with io.EOF if no other error was seen.
func (r *readCloser) Close() error {
	r.mu.Lock()
	if r.err == nil {
		r.err = io.EOF
	}
	r.mu.Unlock()
	return r.rc.Close()
}
