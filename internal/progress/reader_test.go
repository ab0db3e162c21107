package progress

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/act3-ai/gitkit/internal/mocks/iomock"
)

func TestNewEvalReadCloser(t *testing.T) {
	t.Run("Full Read", func(t *testing.T) {
		const content = "hello, blob"
		erc := NewEvalReadCloser(io.NopCloser(strings.NewReader(content)))

		data, err := io.ReadAll(erc)
		assert.NoError(t, err)
		assert.Equal(t, content, string(data))

		soFar, sinceLast, err := erc.Progress()
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, len(content), soFar)
		assert.Equal(t, len(content), sinceLast)

		// delta resets between calls
		_, sinceLast, _ = erc.Progress()
		assert.Zero(t, sinceLast)
	})
}

func Test_readCloser_Read(t *testing.T) {
	buf := make([]byte, 8)
	tests := []struct {
		name    string
		n       int
		readErr error
	}{
		{"Success", 8, nil},
		{"Short Read", 3, nil},
		{"Error", 2, errors.New("read error")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rcMock := iomock.NewMockReadCloser(ctrl)
			rcMock.EXPECT().
				Read(buf).
				Return(tt.n, tt.readErr)

			rc := &readCloser{rc: rcMock}

			n, err := rc.Read(buf)
			assert.Equal(t, tt.readErr, err)
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.n, rc.total)
			assert.Equal(t, tt.n, rc.delta)
			assert.Equal(t, tt.readErr, rc.err)
		})
	}

	t.Run("First Error Kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rcMock := iomock.NewMockReadCloser(ctrl)
		firstErr := errors.New("first")
		rcMock.EXPECT().Read(buf).Return(0, firstErr)
		rcMock.EXPECT().Read(buf).Return(0, io.EOF)

		rc := &readCloser{rc: rcMock}
		_, _ = rc.Read(buf)
		_, _ = rc.Read(buf)
		assert.Equal(t, firstErr, rc.err)
	})
}

func Test_readCloser_Close(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rcMock := iomock.NewMockReadCloser(ctrl)
		rcMock.EXPECT().
			Close().
			Return(nil)

		rc := &readCloser{rc: rcMock, total: 4}

		err := rc.Close()
		assert.NoError(t, err)

		soFar, _, err := rc.Progress()
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, 4, soFar)
	})

	t.Run("Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rcMock := iomock.NewMockReadCloser(ctrl)

		expectedErr := errors.New("close error")
		rcMock.EXPECT().
			Close().
			Return(expectedErr)

		rc := &readCloser{rc: rcMock}

		err := rc.Close()
		assert.ErrorIs(t, err, expectedErr)
	})
}
