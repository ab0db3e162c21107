package gittypes

import (
	"fmt"
	"strconv"
	"strings"
)

// OpCode identifies the operation and stage of a progress report. An OpCode
// combines one operation with zero or more stage flags.
type OpCode uint16

// Stage flags.
const (
	// OpBegin marks the first report of an operation.
	OpBegin OpCode = 1 << iota
	// OpEnd marks the last report of an operation.
	OpEnd
)

// Operations.
const (
	OpCounting OpCode = 1 << (iota + 2)
	OpCompressing
	OpWriting
	OpReceiving
	OpResolving
	OpFindingSources
	OpCheckingOut
	OpEnumerating
)

// StageMask selects the stage flags of an [OpCode].
const StageMask = OpBegin | OpEnd

// Operations lists every operation.
var Operations = []OpCode{
	OpCounting,
	OpCompressing,
	OpWriting,
	OpReceiving,
	OpResolving,
	OpFindingSources,
	OpCheckingOut,
	OpEnumerating,
}

// Operation returns op without its stage flags.
func (op OpCode) Operation() OpCode {
	return op &^ StageMask
}

// Stage returns the stage flags of op.
func (op OpCode) Stage() OpCode {
	return op & StageMask
}

// String renders op as its label followed by any stage flags, e.g.
// "Receiving objects|begin".
func (op OpCode) String() string {
	label, err := operationLabel(op.Operation())
	if err != nil {
		return "OpCode(" + strconv.Itoa(int(op)) + ")"
	}
	var b strings.Builder
	b.WriteString(label)
	if op&OpBegin != 0 {
		b.WriteString("|begin")
	}
	if op&OpEnd != 0 {
		b.WriteString("|end")
	}
	return b.String()
}

// Label returns the text git prints for op's operation, e.g.
// "Counting objects". Unknown operations have no label.
func (op OpCode) Label() string {
	label, err := operationLabel(op.Operation())
	if err != nil {
		return ""
	}
	return label
}

// OperationForLabel returns the operation git reports as label, or 0.
func OperationForLabel(label string) OpCode {
	label = strings.TrimSpace(label)
	for _, op := range Operations {
		if strings.EqualFold(op.Label(), label) {
			return op
		}
	}
	return 0
}

func operationLabel(op OpCode) (string, error) {
	switch op {
	case 0:
		return "", nil
	case OpCounting:
		return "Counting objects", nil
	case OpCompressing:
		return "Compressing objects", nil
	case OpWriting:
		return "Writing objects", nil
	case OpReceiving:
		return "Receiving objects", nil
	case OpResolving:
		return "Resolving deltas", nil
	case OpFindingSources:
		return "Finding sources", nil
	case OpCheckingOut:
		return "Updating files", nil
	case OpEnumerating:
		return "Enumerating objects", nil
	default:
		return "", Never(op)
	}
}

// ProgressValue is one of [Count], [Ratio] or [Text].
type ProgressValue interface {
	fmt.Stringer
	progressValue()
}

// Count is an integral progress value, e.g. a number of objects or bytes.
type Count int64

// Ratio is a fractional progress value.
type Ratio float64

// Text is a progress value git only reported as text, e.g. "1.00 MiB".
type Text string

func (c Count) String() string { return strconv.FormatInt(int64(c), 10) }
func (r Ratio) String() string { return strconv.FormatFloat(float64(r), 'f', -1, 64) }
func (t Text) String() string  { return string(t) }

func (Count) progressValue() {}
func (Ratio) progressValue() {}
func (Text) progressValue()  {}

// ProgressFunc receives progress reports. cur is the current value, total is
// the expected final value or nil when unknown, and message holds any extra
// text such as a transfer rate.
//
// A nil ProgressFunc disables reporting.
type ProgressFunc func(op OpCode, cur ProgressValue, total ProgressValue, message string)

// Report calls fn if it is non-nil.
func (fn ProgressFunc) Report(op OpCode, cur ProgressValue, total ProgressValue, message string) {
	if fn != nil {
		fn(op, cur, total, message)
	}
}

// FormatProgress renders a progress report the way git prints it, e.g.
// "Receiving objects:  50% (1/2), 1.00 KiB". Reports without an operation
// render as message alone.
func FormatProgress(op OpCode, cur ProgressValue, total ProgressValue, message string) string {
	label := op.Label()
	if label == "" {
		return message
	}
	var b strings.Builder
	b.WriteString(label + ":")

	switch c := cur.(type) {
	case nil:
	case Count:
		if m, ok := total.(Count); ok && m > 0 {
			fmt.Fprintf(&b, " %3d%% (%d/%d)", int64(c)*100/int64(m), c, m)
		} else {
			fmt.Fprintf(&b, " %d", c)
		}
	case Ratio:
		fmt.Fprintf(&b, " %3.0f%%", float64(c)*100)
	case Text:
		fmt.Fprintf(&b, " %s", c)
	default:
		MustNever(cur)
	}

	if message != "" {
		b.WriteString(", " + message)
	}
	return b.String()
}
