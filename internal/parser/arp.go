/**
 * ARP decoding.
 *
 * SPEC_FULL.md §4.2 rule 2: a private-range IPv4 ARP sender becomes an
 * ARP discovery record. The historical byte-offset framing ("sender
 * protocol address occupies bytes [28..32]") is honored as a minimum
 * frame-length guard applied after gopacket has decoded the ARP layer and
 * before its sender address is used; the address itself comes from the
 * decoded layer, so a VLAN-tagged ARP frame (whose payload offsets shift)
 * still decodes correctly.
 */

package parser

import (
	"net"

	"github.com/google/gopacket/layers"

	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

const minARPFrameLen = 42

// decodeARP recognizes an ARP frame (rule 2). matched is true whenever the
// frame is ARP at all, even if the sender address is not a private IPv4
// and the record is dropped — no other rule can also claim an ARP frame.
// ARP is detected by the decoded layer's presence rather than the raw
// outer EtherType, since a VLAN-tagged frame's EtherType field names the
// 802.1Q tag (0x8100), not whatever is nested inside it.
func decodeARP(df *decodedFrame) (rec *model.DiscoveryRecord, matched bool) {
	arpLayer, ok := df.packet.Layer(layers.LayerTypeARP).(*layers.ARP)
	if !ok {
		return nil, false
	}
	if len(df.packet.Data()) < minARPFrameLen {
		metrics.Get().RecordsDropped.WithLabelValues("short_frame").Inc()
		return nil, true
	}

	ip := net.IP(arpLayer.SourceProtAddress)
	if ip.To4() == nil || !isPrivateIPv4(ip) {
		metrics.Get().RecordsDropped.WithLabelValues("non_private_ip").Inc()
		return nil, true
	}

	return &model.DiscoveryRecord{
		MAC:    df.srcMAC,
		IP:     ip.String(),
		Method: model.MethodARP,
		VLANID: df.vlanID,
	}, true
}
