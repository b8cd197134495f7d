package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu          sync.Mutex
	processed   []uuid.UUID
	reprocessed []uuid.UUID
}

func (p *recordingProcessor) Process(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, id)
	return nil
}

func (p *recordingProcessor) Reprocess(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reprocessed = append(p.reprocessed, id)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueDrainsAllJobsOnShutdown(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(2), WithQueueSize(64))

	want := 20
	for i := 0; i < want; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Len(t, proc.processed, want)
	assert.Empty(t, proc.reprocessed)
}

func TestQueueRoutesReprocessJobs(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1))

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id, Reprocess: true}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	require.Len(t, proc.reprocessed, 1)
	assert.Equal(t, id, proc.reprocessed[0])
	assert.Empty(t, proc.processed)
}

func TestEnqueueAfterShutdownIsDropped(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.processed)
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&recordingProcessor{}, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
