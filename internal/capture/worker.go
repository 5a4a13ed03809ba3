/**
 * Capture worker.
 *
 * One Worker per interface. Opens a pcap handle in promiscuous, immediate
 * mode with a 1024-byte snap length, restricts the kernel-level view to
 * the discovery set with a BPF filter, and feeds every frame through
 * internal/parser before handing the resulting record to the aggregator.
 */

package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"

	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/model"
	"github.com/fieldwatcher/fieldwatcher/internal/parser"
	"github.com/fieldwatcher/fieldwatcher/internal/vendor"
)

// discoveryBPFFilter restricts the kernel-level view to exactly the
// traffic the parser's decoder rules can turn into a record.
const discoveryBPFFilter = "arp or (udp port 67 or 68 or 53 or 5353 or 5355 or 137) or " +
	"(icmp6 and (ip6[40] in {134,135,136})) or ether proto 0x88cc or ether proto 0x2000"

const (
	snapLen    = 1024
	bufferSize = 2 * 1024 * 1024
)

// Sink receives discovery records and reports whether it accepted one;
// false means the downstream channel was full and the record was dropped.
type Sink interface {
	Offer(rec model.DiscoveryRecord) bool
}

// Logger is the narrow logging surface a Worker needs; internal/logging
// satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Worker owns one pcap handle for one interface.
type Worker struct {
	ifaceName string
	handle    *pcap.Handle
	resolver  *vendor.Resolver
	sink      Sink
	log       Logger

	packetsSeen    uint64
	recordsEmitted uint64
	recordsDropped uint64
}

// NewWorker validates the interface and opens an active pcap handle with
// the BPF filter applied. It does not start reading until Run is called.
func NewWorker(ifaceName string, resolver *vendor.Resolver, sink Sink, log Logger) (*Worker, error) {
	if err := validateInterface(ifaceName); err != nil {
		return nil, err
	}

	inactive, err := pcap.NewInactiveHandle(ifaceName)
	if err != nil {
		return nil, fmt.Errorf("capture: open inactive handle on %s: %w", ifaceName, err)
	}
	defer inactive.CleanUp()

	if err := inactive.SetSnapLen(snapLen); err != nil {
		return nil, fmt.Errorf("capture: set snaplen on %s: %w", ifaceName, err)
	}
	if err := inactive.SetPromisc(true); err != nil {
		return nil, fmt.Errorf("capture: set promiscuous mode on %s: %w", ifaceName, err)
	}
	if err := inactive.SetImmediateMode(true); err != nil {
		return nil, fmt.Errorf("capture: set immediate mode on %s: %w", ifaceName, err)
	}
	if err := inactive.SetTimeout(time.Millisecond * 100); err != nil {
		return nil, fmt.Errorf("capture: set timeout on %s: %w", ifaceName, err)
	}
	if err := inactive.SetBufferSize(bufferSize); err != nil {
		return nil, fmt.Errorf("capture: set buffer size on %s: %w", ifaceName, err)
	}

	handle, err := inactive.Activate()
	if err != nil {
		return nil, fmt.Errorf("capture: activate handle on %s: %w", ifaceName, err)
	}

	if err := handle.SetBPFFilter(discoveryBPFFilter); err != nil {
		handle.Close()
		return nil, fmt.Errorf("capture: set BPF filter on %s: %w", ifaceName, err)
	}

	return &Worker{
		ifaceName: ifaceName,
		handle:    handle,
		resolver:  resolver,
		sink:      sink,
		log:       log,
	}, nil
}

// Run reads frames until ctx is canceled or the handle errors out, parsing
// each one and offering any resulting record to the sink. It never blocks
// the capture loop on a full sink: a drop is logged and capture continues.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Infof("capture worker started on %s", w.ifaceName)
	source := gopacket.NewPacketSource(w.handle, w.handle.LinkType())
	source.DecodeOptions = gopacket.DecodeOptions{Lazy: true, NoCopy: true}
	packets := source.Packets()

	for {
		select {
		case <-ctx.Done():
			w.log.Infof("capture worker on %s stopping: %v", w.ifaceName, ctx.Err())
			return ctx.Err()

		case packet, ok := <-packets:
			if !ok {
				return nil
			}
			if packet == nil {
				continue
			}
			w.packetsSeen++
			metrics.Get().FramesCaptured.WithLabelValues(w.ifaceName).Inc()

			rec, err := parser.Parse(packet.Data())
			if err != nil {
				w.log.Warnf("capture worker on %s: %v", w.ifaceName, err)
				continue
			}
			if rec == nil {
				continue
			}

			rec.Vendor = w.resolver.Lookup(rec.MAC)
			rec.ObservedAt = time.Now()
			metrics.Get().RecordsParsed.WithLabelValues(string(rec.Method)).Inc()

			if w.sink.Offer(*rec) {
				w.recordsEmitted++
			} else {
				w.recordsDropped++
				metrics.Get().ChannelFull.WithLabelValues(w.ifaceName).Inc()
				w.log.Warnf("capture worker on %s: aggregator channel full, dropping record for %s", w.ifaceName, rec.MAC)
			}
		}
	}
}

// Stop closes the pcap handle, unblocking any in-progress ReadPacketData.
func (w *Worker) Stop() {
	if w.handle != nil {
		w.handle.Close()
	}
}

// Stats reports the worker's lifetime counters.
func (w *Worker) Stats() (packetsSeen, recordsEmitted, recordsDropped uint64) {
	return w.packetsSeen, w.recordsEmitted, w.recordsDropped
}
