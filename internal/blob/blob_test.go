package blob

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/act3-ai/gitkit/internal/mocks/iomock"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

func TestWriter_Write(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			const content = "hello, blob\n"
			s := memory.NewStorage()

			var mu sync.Mutex
			var ops []gittypes.OpCode
			var last gittypes.ProgressValue
			w := NewWriter(s)
			w.Interval = time.Second
			w.Progress = func(op gittypes.OpCode, cur, total gittypes.ProgressValue, _ string) {
				mu.Lock()
				defer mu.Unlock()
				ops = append(ops, op)
				last = cur
				assert.Equal(t, gittypes.Count(len(content)), total)
			}

			h, err := w.Write(t.Context(), io.NopCloser(strings.NewReader(content)), int64(len(content)))
			require.NoError(t, err)
			assert.Equal(t, plumbing.ComputeHash(plumbing.BlobObject, []byte(content)), h)

			obj, err := s.EncodedObject(plumbing.BlobObject, h)
			require.NoError(t, err)
			assert.Equal(t, int64(len(content)), obj.Size())

			assert.Equal(t, []gittypes.OpCode{gittypes.OpWriting | gittypes.OpBegin | gittypes.OpEnd}, ops)
			assert.Equal(t, gittypes.Count(len(content)), last)
		})
	})

	t.Run("Short Read", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			s := memory.NewStorage()
			_, err := NewWriter(s).Write(t.Context(), io.NopCloser(strings.NewReader("abc")), 10)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
			assert.Empty(t, s.Objects)
		})
	})

	t.Run("Read Error", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rcMock := iomock.NewMockReadCloser(ctrl)
			expectedErr := errors.New("read error")
			rcMock.EXPECT().Read(gomock.Any()).Return(0, expectedErr)
			rcMock.EXPECT().Close().Return(nil)

			_, err := NewWriter(memory.NewStorage()).Write(t.Context(), rcMock, 5)
			assert.ErrorIs(t, err, expectedErr)
		})
	})
}
