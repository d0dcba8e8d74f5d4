package csv_test

//go:generate mockgen -destination=mock_bytesource_test.go -package=csv_test github.com/shapestone/shape-csvcursor/pkg/source ByteSource

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-csvcursor/pkg/csv"
	"github.com/shapestone/shape-csvcursor/pkg/source"
)

// reads returns a Read stub serving data on the first call and io.EOF after.
func reads(data string) func([]byte) (int, error) {
	served := false
	return func(p []byte) (int, error) {
		if served {
			return 0, io.EOF
		}
		served = true
		return copy(p, data), nil
	}
}

func TestNotSeekableSource(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	src := NewMockByteSource(mockCtrl)
	src.EXPECT().Seekable().Return(false)

	r, err := csv.NewReader(src, csv.ReaderOptions{})
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, csv.ErrNotSeekable))
}

func TestSourceReadFailureIsSticky(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	src := NewMockByteSource(mockCtrl)
	src.EXPECT().Seekable().Return(true)
	src.EXPECT().EOF().Return(false).AnyTimes()

	injected := errors.New("injected failure")
	gomock.InOrder(
		src.EXPECT().Rewind().Return(nil),
		src.EXPECT().Read(gomock.Any()).Return(4, nil),
		src.EXPECT().Read(gomock.Any()).Return(0, injected),
	)

	r, err := csv.NewReader(src, csv.ReaderOptions{})
	require.NoError(t, err)

	_, err = r.Current()
	assert.True(t, errors.Is(err, csv.ErrSourceUnavailable))
	assert.True(t, errors.Is(err, injected))
	assert.False(t, r.Valid())

	// no further source calls until Rewind
	_, _, err = r.Key()
	assert.True(t, errors.Is(err, injected))
	assert.True(t, errors.Is(r.Next(), injected))

	gomock.InOrder(
		src.EXPECT().Rewind().Return(nil),
		src.EXPECT().Read(gomock.Any()).DoAndReturn(reads("x,y\n")).Times(2),
	)
	require.NoError(t, r.Rewind())
	rec, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, csv.Row{"x", "y"}, rec.Fields())
}

func TestSourceRewindFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	src := NewMockByteSource(mockCtrl)
	src.EXPECT().Seekable().Return(true)
	src.EXPECT().Rewind().Return(&source.UnavailableError{Op: "seek", Err: errors.New("disk gone")})

	r, err := csv.NewReader(src, csv.ReaderOptions{HasHeader: true})
	require.NoError(t, err)

	_, err = r.Headers()
	assert.True(t, errors.Is(err, csv.ErrSourceUnavailable))
	_, err = r.Current()
	assert.True(t, errors.Is(err, csv.ErrSourceUnavailable))
}

func TestCountRestoresOffset(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	src := NewMockByteSource(mockCtrl)
	src.EXPECT().Seekable().Return(true)
	src.EXPECT().EOF().Return(false).AnyTimes()

	gomock.InOrder(
		src.EXPECT().Tell().Return(int64(42), nil),
		src.EXPECT().Rewind().Return(nil),
		src.EXPECT().Read(gomock.Any()).DoAndReturn(reads("h\n1\n2\n")).Times(2),
		src.EXPECT().Seek(int64(42)).Return(nil),
	)

	r, err := csv.NewReader(src, csv.ReaderOptions{HasHeader: true})
	require.NoError(t, err)
	n, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// cached: no further source calls
	n, err = r.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
