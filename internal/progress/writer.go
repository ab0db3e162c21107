package progress

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/act3-ai/gitkit/pkg/gittypes"
)

var (
	// "Receiving objects:  50% (1/2), 1.00 KiB | 1.00 MiB/s"
	percentLine = regexp.MustCompile(`^([\w ]+):\s+(\d+)% \((\d+)/(\d+)\)(.*)$`)
	// "Enumerating objects: 5, done."
	countLine = regexp.MustCompile(`^([\w ]+):\s+(\d+)(.*)$`)
)

// Writer decodes the progress text git servers send on the sideband
// channel, as written by go-git to [github.com/go-git/go-git/v5.CloneOptions]
// Progress, and forwards each line to a [gittypes.ProgressFunc].
//
// Lines that are not progress of a known operation are reported with a
// zero [gittypes.OpCode] and the line as message.
type Writer struct {
	fn gittypes.ProgressFunc

	mu     sync.Mutex
	buf    []byte
	active gittypes.OpCode // operations that have begun but not ended
}

// NewWriter returns a [Writer] reporting to fn.
func NewWriter(fn gittypes.ProgressFunc) *Writer {
	return &Writer{fn: fn}
}

// Write buffers p and reports every complete line. Lines end with '\n' or
// '\r'; git rewrites a progress line in place with '\r'.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexAny(w.buf, "\r\n")
		if i < 0 {
			break
		}
		w.handleLine(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close reports any buffered partial line.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.handleLine(string(w.buf))
		w.buf = nil
	}
	return nil
}

func (w *Writer) handleLine(line string) {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "remote:"))
	if line == "" {
		return
	}

	var label, rest string
	var cur, total gittypes.ProgressValue
	if m := percentLine.FindStringSubmatch(line); m != nil {
		label, rest = m[1], m[5]
		cur, total = parseCount(m[3]), parseCount(m[4])
	} else if m := countLine.FindStringSubmatch(line); m != nil {
		label, rest = m[1], m[3]
		cur = parseCount(m[2])
	}

	op := gittypes.OperationForLabel(label)
	if op == 0 {
		w.fn.Report(0, nil, nil, line)
		return
	}

	stage := gittypes.OpCode(0)
	if w.active&op == 0 {
		stage |= gittypes.OpBegin
		w.active |= op
	}
	message := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ","))
	if strings.HasSuffix(message, "done.") {
		stage |= gittypes.OpEnd
		w.active &^= op
	}
	w.fn.Report(op|stage, cur, total, message)
}

func parseCount(s string) gittypes.ProgressValue {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return gittypes.Text(s)
	}
	return gittypes.Count(n)
}
