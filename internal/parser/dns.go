/**
 * UDP-application decoding: DHCP, DNS, mDNS, LLMNR, NBNS.
 *
 * SPEC_FULL.md §4.2 rule 4 dispatches on destination/source UDP port.
 * NBNS and DHCP records carry no hostname. Hostname extraction for
 * mDNS/LLMNR uses the best-effort heuristic:
 * skip the 12-byte header, read the first length-prefixed label, and keep
 * it only if it is at least 3 ASCII [A-Za-z0-9-] characters. Plain DNS
 * additionally runs the payload through github.com/miekg/dns so a
 * compressed QNAME is decoded properly before the same heuristic gate is
 * applied to its first label.
 */

package parser

import (
	"strings"

	"github.com/google/gopacket/layers"
	"github.com/miekg/dns"

	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

const (
	portDHCPServer = 67
	portDHCPClient = 68
	portDNS        = 53
	portMDNS       = 5353
	portLLMNR      = 5355
	portNBNS       = 137
)

// decodeUDPApplication recognizes the DHCP/DNS/mDNS/LLMNR/NBNS port rules.
// matched is true whenever the UDP layer is present and one of the known
// ports is in play, even if the payload is malformed and yields no record.
func decodeUDPApplication(df *decodedFrame) (rec *model.DiscoveryRecord, matched bool) {
	ip4Layer, haveIPv4 := df.packet.Layer(layers.LayerTypeIPv4).(*layers.IPv4)
	if !haveIPv4 {
		return nil, false
	}

	udpLayer, ok := df.packet.Layer(layers.LayerTypeUDP).(*layers.UDP)
	if !ok {
		return nil, false
	}

	srcPort := uint16(udpLayer.SrcPort)
	dstPort := uint16(udpLayer.DstPort)
	payload := udpLayer.Payload

	switch {
	case srcPort == portDHCPServer || dstPort == portDHCPServer ||
		srcPort == portDHCPClient || dstPort == portDHCPClient:
		if !isWellFormedDHCP(payload) {
			metrics.Get().RecordsDropped.WithLabelValues("malformed_dhcp").Inc()
			return nil, true
		}
		return buildUDPRecord(df, ip4Layer, model.MethodDHCP, "")

	case dstPort == portDNS || srcPort == portDNS:
		return buildUDPRecord(df, ip4Layer, model.MethodDNS, extractDNSQueryName(payload))

	case dstPort == portMDNS || srcPort == portMDNS:
		return buildUDPRecord(df, ip4Layer, model.MethodMDNS, extractHostnameHeuristic(payload))

	case dstPort == portLLMNR || srcPort == portLLMNR:
		return buildUDPRecord(df, ip4Layer, model.MethodLLMNR, extractHostnameHeuristic(payload))

	case dstPort == portNBNS || srcPort == portNBNS:
		return buildUDPRecord(df, ip4Layer, model.MethodNBNS, "")

	default:
		return nil, false
	}
}

func buildUDPRecord(df *decodedFrame, ip4 *layers.IPv4, method model.Method, hostname string) (*model.DiscoveryRecord, bool) {
	if !isPrivateIPv4(ip4.SrcIP) {
		metrics.Get().RecordsDropped.WithLabelValues("non_private_ip").Inc()
		return nil, true
	}
	return &model.DiscoveryRecord{
		MAC:      df.srcMAC,
		IP:       ip4.SrcIP.String(),
		Method:   method,
		Hostname: hostname,
		VLANID:   df.vlanID,
	}, true
}

// isQualifyingLabel reports whether every byte of label is an ASCII
// letter, digit, or hyphen.
func isQualifyingLabel(label []byte) bool {
	for _, b := range label {
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		case b == '-':
		default:
			return false
		}
	}
	return true
}

// extractHostnameHeuristic implements the best-effort mDNS/LLMNR name
// extraction: it reads only the first length-prefixed label after the
// 12-byte header, and only ever returns that one label. A zero-length
// label (empty name) or a label that fails the qualifying test yields no
// hostname at all; it does not read further labels, so compressed or
// multi-label names ("printer.local") correctly stop at "printer".
func extractHostnameHeuristic(payload []byte) string {
	if len(payload) < 13 {
		return ""
	}
	pos := 12
	length := int(payload[pos])
	if length == 0 {
		return ""
	}
	pos++
	if pos+length > len(payload) {
		return ""
	}
	label := payload[pos : pos+length]
	if length < 3 || !isQualifyingLabel(label) {
		return ""
	}
	return string(label)
}

// extractDNSQueryName pulls the first qualifying label out of a plain DNS
// query's QNAME, using github.com/miekg/dns to handle name compression
// properly rather than trusting raw label offsets. This is additive
// enrichment beyond the literal heuristic: it is gated by the identical
// length/character rule so it can never surface more than that heuristic
// would have allowed.
func extractDNSQueryName(payload []byte) string {
	msg := new(dns.Msg)
	if err := msg.Unpack(payload); err != nil || len(msg.Question) == 0 {
		return ""
	}
	name := strings.TrimSuffix(msg.Question[0].Name, ".")
	label := name
	if idx := strings.IndexByte(name, '.'); idx >= 0 {
		label = name[:idx]
	}
	if len(label) < 3 || !isQualifyingLabel([]byte(label)) {
		return ""
	}
	return label
}
