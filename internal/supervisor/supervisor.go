/**
 * Supervisor.
 *
 * Wires the store, one CaptureWorker per interface, and the
 * ThrottleAggregator together, and drives them until the context is
 * canceled. SPEC_FULL.md §4.6: the process is meant to be restarted by an
 * external supervisor rather than to self-heal a lost pcap handle, so a
 * worker that exits just shrinks the running set instead of restarting.
 */

package supervisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fieldwatcher/fieldwatcher/internal/aggregator"
	"github.com/fieldwatcher/fieldwatcher/internal/capture"
	"github.com/fieldwatcher/fieldwatcher/internal/logging"
	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/model"
	"github.com/fieldwatcher/fieldwatcher/internal/storage"
	"github.com/fieldwatcher/fieldwatcher/internal/vendor"
)

// workerWarnBaseDelay/workerWarnMaxDelay bound how often a single noisy
// interface can repeat a warning (channel-full, parse noise) before it
// starts backing off exponentially.
const (
	workerWarnBaseDelay = 2 * time.Second
	workerWarnMaxDelay  = time.Minute
)

// channelCapacity bounds the in-flight record backlog, per spec.md §5.
const channelCapacity = 1000

// channelSink adapts the shared channel to capture.Sink's non-blocking
// Offer contract.
type channelSink struct {
	ch chan<- model.DiscoveryRecord
}

func (s channelSink) Offer(rec model.DiscoveryRecord) bool {
	select {
	case s.ch <- rec:
		return true
	default:
		return false
	}
}

// Supervisor owns the store, the capture workers, and the aggregator for
// the lifetime of one run.
type Supervisor struct {
	store   storage.Store
	workers []*capture.Worker
	agg     *aggregator.Aggregator
	log     *zap.SugaredLogger
}

// New opens the store and spins up a Worker for every interface, each with
// its own throttled warning logger so one noisy interface's backoff
// doesn't delay another's warnings. If every interface fails to start,
// the store is closed and an error is returned; a partial failure is
// logged and the surviving workers still run.
func New(interfaces []string, dbPath string, log *zap.SugaredLogger) (*Supervisor, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("supervisor: open store: %w", err)
	}

	records := make(chan model.DiscoveryRecord, channelCapacity)
	resolver := vendor.NewResolver()
	sink := channelSink{ch: records}

	var workers []*capture.Worker
	for _, name := range interfaces {
		workerLog := logging.NewThrottled(log, workerWarnBaseDelay, workerWarnMaxDelay)
		w, err := capture.NewWorker(name, resolver, sink, workerLog)
		if err != nil {
			log.Errorf("supervisor: starting worker on %s: %v", name, err)
			continue
		}
		workers = append(workers, w)
	}

	if len(workers) == 0 {
		store.Close()
		return nil, fmt.Errorf("supervisor: no capture worker could be started on any of %v", interfaces)
	}

	metrics.Get().CaptureWorkersUp.Set(float64(len(workers)))

	aggLog := logging.NewThrottled(log, workerWarnBaseDelay, workerWarnMaxDelay)
	return &Supervisor{
		store:   store,
		workers: workers,
		agg:     aggregator.New(records, store, aggLog),
		log:     log,
	}, nil
}

// Run blocks until ctx is canceled or every worker has exited, then stops
// every worker and lets the aggregator drain its in-flight write before
// returning. If every worker exited while ctx was still live, Run returns
// an error.
func (s *Supervisor) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, w := range s.workers {
		wg.Add(1)
		go func(w *capture.Worker) {
			defer wg.Done()
			defer metrics.Get().CaptureWorkersUp.Dec()
			if err := w.Run(runCtx); err != nil && err != context.Canceled {
				s.log.Warnf("supervisor: worker exited: %v", err)
			}
		}(w)
	}
	go func() {
		wg.Wait()
		cancel()
	}()

	s.agg.Run(runCtx)

	for _, w := range s.workers {
		w.Stop()
	}
	wg.Wait()

	if err := s.store.Close(); err != nil {
		return err
	}
	if ctx.Err() == nil {
		return fmt.Errorf("supervisor: every capture worker has exited")
	}
	return nil
}

// Store exposes the supervisor's inventory store.
func (s *Supervisor) Store() storage.Store {
	return s.store
}
