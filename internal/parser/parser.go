/**
 * Packet parser.
 *
 * Parse turns a raw captured frame into at most one model.DiscoveryRecord.
 * SPEC_FULL.md §4.2 numbers its decoder rules in priority order; the first
 * rule that claims the frame wins, even if it then drops the record (an
 * ARP frame from a public address is still an ARP frame, and no later
 * rule gets a chance to also look at it).
 */

package parser

import (
	"errors"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

var errNotEthernet = errors.New("parser: frame too short to carry an Ethernet header")

type decodeRule func(df *decodedFrame) (rec *model.DiscoveryRecord, matched bool)

var decodeRules = []decodeRule{
	decodeARP,
	decodeNDP,
	decodeUDPApplication,
	decodeLinkTopology,
}

// Parse decodes frame and returns the discovery record it represents, or
// nil if no rule claims it (invariant: non-matching traffic yields no
// record, not an error). An error is returned only when the frame cannot
// be parsed as Ethernet at all.
func Parse(frame []byte) (*model.DiscoveryRecord, error) {
	df := decodeEthernet(frame)
	if df == nil {
		return nil, errNotEthernet
	}

	for _, rule := range decodeRules {
		if rec, matched := rule(df); matched {
			return rec, nil
		}
	}
	return nil, nil
}
