package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProgress_SequentialOrder(t *testing.T) {
	progress := NewUploadProgress([]string{"a.pdf", "b.pdf", "c.pdf"})

	next, ok := progress.Next()
	require.True(t, ok)
	assert.Equal(t, 0, next)

	progress.Start(next)

	// no second file may start while one is uploading
	_, ok = progress.Next()
	assert.False(t, ok)

	progress.Complete(next)

	next, ok = progress.Next()
	require.True(t, ok)
	assert.Equal(t, 1, next)
}

func TestUploadProgress_FailureDoesNotBlockRemaining(t *testing.T) {
	progress := NewUploadProgress([]string{"a.pdf", "b.pdf"})

	i, _ := progress.Next()
	progress.Start(i)
	progress.Fail(i)

	next, ok := progress.Next()
	require.True(t, ok)
	assert.Equal(t, 1, next)

	progress.Start(next)
	progress.Complete(next)

	assert.True(t, progress.Done())
	items := progress.Items()
	assert.Equal(t, UploadError, items[0].Status)
	assert.Equal(t, UploadComplete, items[1].Status)
}

func TestUploadProgress_Summary(t *testing.T) {
	progress := NewUploadProgress([]string{"a.pdf", "b.pdf"})
	assert.Equal(t, "0/2 files processed", progress.String())

	i, _ := progress.Next()
	progress.Start(i)
	progress.Complete(i)
	assert.Equal(t, "1/2 files processed", progress.String())
	assert.False(t, progress.Done())
}
