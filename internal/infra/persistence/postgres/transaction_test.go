package postgres

import (
	"context"
	"testing"
	"time"

	"leyenda/config"
	"leyenda/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStorageExecTimeout_Default(t *testing.T) {
	assert.Equal(t, 5*time.Second, storageExecTimeout(nil))
	assert.Equal(t, 5*time.Second, storageExecTimeout(&config.Config{}))
	assert.Equal(t, 5*time.Second, storageExecTimeout(&config.Config{Storage: &config.StorageConfig{}}))
}

func TestStorageExecTimeout_Configured(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{ExecTimeout: 250 * time.Millisecond}}

	assert.Equal(t, 250*time.Millisecond, storageExecTimeout(cfg))
}

func TestDeadlineExceeded_DirectAndWrapped(t *testing.T) {
	ctx := context.Background()

	assert.True(t, deadlineExceeded(ctx, context.DeadlineExceeded))
	assert.True(t, deadlineExceeded(ctx, errors.Wrap(context.DeadlineExceeded, "query aborted")))
}

func TestDeadlineExceeded_ExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	// A driver may surface its own error once the deadline has fired; the
	// bounding context still marks the outcome as a timeout.
	assert.True(t, deadlineExceeded(ctx, errors.New("driver: bad connection")))
}

func TestDeadlineExceeded_BusinessErrorPassesThrough(t *testing.T) {
	ctx := context.Background()

	assert.False(t, deadlineExceeded(ctx, errors.New("hotel not found")))
	assert.False(t, deadlineExceeded(ctx, nil))
}
