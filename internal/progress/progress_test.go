package progress

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/act3-ai/gitkit/internal/progress/progressmock"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

func TestNewTicker(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			t.Helper()

			ctrl := gomock.NewController(t)
			evaluatorMock := progressmock.NewMockEvaluator(ctrl)

			expectedTotal := 10
			expectedDelta := 5
			evaluatorMock.EXPECT().
				Progress().
				Return(expectedTotal, expectedDelta, nil).
				MinTimes(1)

			ch := make(chan Progress)
			done := make(chan struct{})
			go func() {
				for p := range ch {
					assert.Equal(t, expectedTotal, p.Total)
					assert.Equal(t, expectedDelta, p.Delta)
					assert.NoError(t, p.Err)
				}
				close(done)
			}()

			ctx, cancel := context.WithCancel(t.Context())
			NewTicker(ctx, evaluatorMock, time.Nanosecond, ch)

			time.Sleep(time.Nanosecond * 5)
			synctest.Wait()
			cancel()
			<-done
		})
	})

	t.Run("Error", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			t.Helper()

			ctrl := gomock.NewController(t)
			evaluatorMock := progressmock.NewMockEvaluator(ctrl)

			expectedErr := errors.New("progress error")
			evaluatorMock.EXPECT().
				Progress().
				Return(10, 5, expectedErr).
				Times(1)

			ch := make(chan Progress)
			NewTicker(t.Context(), evaluatorMock, time.Nanosecond, ch)

			var got []Progress
			for p := range ch {
				got = append(got, p)
			}
			// the ticker stops after reporting the error
			assert.Equal(t, []Progress{{Total: 10, Delta: 5, Err: expectedErr}}, got)
		})
	})
}

type report struct {
	op    gittypes.OpCode
	cur   gittypes.ProgressValue
	total gittypes.ProgressValue
	msg   string
}

type recorder struct {
	mu      sync.Mutex
	reports []report
}

func (r *recorder) fn(op gittypes.OpCode, cur, total gittypes.ProgressValue, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report{op, cur, total, msg})
}

func TestReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			evaluatorMock := progressmock.NewMockEvaluator(ctrl)
			gomock.InOrder(
				evaluatorMock.EXPECT().Progress().Return(4, 4, nil),
				evaluatorMock.EXPECT().Progress().Return(8, 4, nil),
				evaluatorMock.EXPECT().Progress().Return(8, 0, io.EOF),
			)

			rec := &recorder{}
			done := Report(t.Context(), evaluatorMock, time.Second, gittypes.OpWriting, gittypes.Count(8), rec.fn)
			<-done

			assert.Equal(t, []report{
				{gittypes.OpWriting | gittypes.OpBegin, gittypes.Count(4), gittypes.Count(8), ""},
				{gittypes.OpWriting, gittypes.Count(8), gittypes.Count(8), ""},
				{gittypes.OpWriting | gittypes.OpEnd, gittypes.Count(8), gittypes.Count(8), "done."},
			}, rec.reports)
		})
	})

	t.Run("Immediate End", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			evaluatorMock := progressmock.NewMockEvaluator(ctrl)
			evaluatorMock.EXPECT().Progress().Return(3, 3, io.EOF)

			rec := &recorder{}
			<-Report(t.Context(), evaluatorMock, time.Second, gittypes.OpWriting, nil, rec.fn)

			assert.Equal(t, []report{
				{gittypes.OpWriting | gittypes.OpBegin | gittypes.OpEnd, gittypes.Count(3), nil, "done."},
			}, rec.reports)
		})
	})

	t.Run("Nil Func", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			evaluatorMock := progressmock.NewMockEvaluator(ctrl)
			evaluatorMock.EXPECT().Progress().Return(1, 1, io.EOF)

			<-Report(t.Context(), evaluatorMock, time.Second, gittypes.OpWriting, nil, nil)
		})
	})
}
