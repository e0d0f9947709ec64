// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	cache       ClientCacheService
	interval    time.Duration
	logger      *logger.Logger

	notify chan int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that refreshes through syncService every
// interval and whenever Notify announces a newer remote revision. cache may
// be nil; when set, expired mirror entries are purged after each tick.
func NewClientSyncJob(syncService ClientSyncService, cache ClientCacheService, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		cache:       cache,
		interval:    interval,
		logger:      logger,
		notify:      make(chan int64, 1),
	}
}

// Start implements ClientSyncJob. A zero or negative interval falls back to
// the configured one, then to 5 minutes.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.interval
	}
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, "scheduled")
				j.purge(jobCtx)
			case revision := <-j.notify:
				if revision <= j.syncService.Snapshot().Revision {
					continue
				}
				j.refresh(jobCtx, "notified")
			}
		}
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) Run(ctx context.Context) {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
}

// Notify never blocks. While a notification is pending a newer one replaces it.
func (j *clientSyncJob) Notify(revision int64) {
	for {
		select {
		case j.notify <- revision:
			return
		default:
		}

		select {
		case pending := <-j.notify:
			if pending > revision {
				revision = pending
			}
		default:
		}
	}
}

func (j *clientSyncJob) refresh(ctx context.Context, trigger string) {
	report, err := j.syncService.Refresh(ctx)
	switch {
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Str("trigger", trigger).Msg("refresh skipped, cycle in progress")
	case err != nil:
		j.logger.Err(err).Str("func", "clientSyncJob.refresh").Str("trigger", trigger).Msg("refresh failed")
	default:
		j.logger.Debug().
			Str("trigger", trigger).
			Str("status", string(report.Status)).
			Int64("revision", report.Revision).
			Msg("refresh finished")
	}
}

func (j *clientSyncJob) purge(ctx context.Context) {
	if j.cache == nil {
		return
	}
	if _, err := j.cache.PurgeExpired(ctx, time.Now()); err != nil {
		j.logger.Warn().Err(err).Msg("cache purge failed")
	}
}
