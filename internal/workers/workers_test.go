// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker counts starts and blocks until its context is done.
type blockingWorker struct {
	started  atomic.Int32
	finished atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
	b.finished.Add(1)
}

func TestWorkers_RunsAllConcurrently(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewWorkers(w1, w2).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int32(1), w1.finished.Load())
	assert.Equal(t, int32(1), w2.finished.Load())
}

func TestWorkers_Empty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewWorkers().Run(ctx)
	(&Workers{}).Run(ctx)
}
