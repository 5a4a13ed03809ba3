/**
 * IPv6 Neighbor Discovery decoding.
 *
 * SPEC_FULL.md §4.2 rule 3: Neighbor Solicitation, Neighbor Advertisement,
 * and Router Advertisement ICMPv6 messages from a private-range IPv6
 * source become NDP discovery records. The ICMPv6 payload is handed to
 * github.com/mdlayher/ndp to confirm it actually decodes as one of those
 * three message types, rather than trusting the type byte alone.
 */

package parser

import (
	"github.com/google/gopacket/layers"
	"github.com/mdlayher/ndp"

	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

func decodeNDP(df *decodedFrame) (rec *model.DiscoveryRecord, matched bool) {
	ip6Layer, ok := df.packet.Layer(layers.LayerTypeIPv6).(*layers.IPv6)
	if !ok {
		return nil, false
	}

	icmp6Layer, ok := df.packet.Layer(layers.LayerTypeICMPv6).(*layers.ICMPv6)
	if !ok {
		return nil, false
	}

	switch icmp6Layer.TypeCode.Type() {
	case layers.ICMPv6TypeNeighborSolicitation,
		layers.ICMPv6TypeNeighborAdvertisement,
		layers.ICMPv6TypeRouterAdvertisement:
	default:
		return nil, false
	}

	raw := append(append([]byte{}, icmp6Layer.Contents...), icmp6Layer.Payload...)
	msg, err := ndp.ParseMessage(raw)
	if err != nil {
		metrics.Get().RecordsDropped.WithLabelValues("malformed_ndp").Inc()
		return nil, true
	}
	switch msg.(type) {
	case *ndp.NeighborSolicitation, *ndp.NeighborAdvertisement, *ndp.RouterAdvertisement:
	default:
		metrics.Get().RecordsDropped.WithLabelValues("malformed_ndp").Inc()
		return nil, true
	}

	if !isPrivateIPv6(ip6Layer.SrcIP) {
		metrics.Get().RecordsDropped.WithLabelValues("non_private_ip").Inc()
		return nil, true
	}

	return &model.DiscoveryRecord{
		MAC:    df.srcMAC,
		IP:     ip6Layer.SrcIP.String(),
		Method: model.MethodNDP,
		VLANID: df.vlanID,
	}, true
}
