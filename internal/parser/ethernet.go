/**
 * Ethernet & VLAN extraction.
 *
 * Pulls the source MAC and outer VLAN tag out of a frame. Untagged
 * frames get VLAN 1; 802.1Q and QinQ frames get the outer tag's id.
 */

package parser

import (
	"net"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

// ethernetTypeCDP is Cisco Discovery Protocol's EtherType as prescribed by
// SPEC_FULL.md §4.2 rule 5. It has no standard gopacket layer, so it is
// recognized purely by EtherType.
const ethernetTypeCDP = layers.EthernetType(0x2000)

// decodedFrame holds the link-layer facts every decoder rule needs,
// extracted once per frame.
type decodedFrame struct {
	packet    gopacket.Packet
	eth       *layers.Ethernet
	srcMAC    string
	vlanID    uint16
	innerType layers.EthernetType
}

// decodeEthernet parses the Ethernet header and outer VLAN tag. It
// returns nil if the frame has no Ethernet layer at all.
func decodeEthernet(frame []byte) *decodedFrame {
	packet := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.NoCopy)

	ethLayer := packet.Layer(layers.LayerTypeEthernet)
	if ethLayer == nil {
		return nil
	}
	eth, ok := ethLayer.(*layers.Ethernet)
	if !ok {
		return nil
	}

	vlanID := model.UntaggedVLAN
	innerType := eth.EthernetType
	outerSeen := false
	for _, l := range packet.Layers() {
		if dot1q, ok := l.(*layers.Dot1Q); ok {
			if !outerSeen {
				vlanID = dot1q.VLANIdentifier
				outerSeen = true
			}
			innerType = dot1q.Type
		}
	}

	return &decodedFrame{
		packet:    packet,
		eth:       eth,
		srcMAC:    strings.ToUpper(eth.SrcMAC.String()),
		vlanID:    vlanID,
		innerType: innerType,
	}
}

// isPrivateIPv4 reports whether ip falls in an RFC1918 block or the
// link-local 169.254/16 range.
func isPrivateIPv4(ip net.IP) bool {
	ip4 := ip.To4()
	if ip4 == nil {
		return false
	}
	switch {
	case ip4[0] == 10:
		return true
	case ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31:
		return true
	case ip4[0] == 192 && ip4[1] == 168:
		return true
	case ip4[0] == 169 && ip4[1] == 254:
		return true
	default:
		return false
	}
}

// isPrivateIPv6 reports whether ip is unique-local (fc00::/7) or
// link-local (fe80::/10), per SPEC_FULL.md §4.2's symmetric resolution of
// the IPv6 private-address open question.
func isPrivateIPv6(ip net.IP) bool {
	ip16 := ip.To16()
	if ip16 == nil || ip.To4() != nil {
		return false
	}
	if ip16[0]&0xfe == 0xfc { // fc00::/7
		return true
	}
	if ip16[0] == 0xfe && ip16[1]&0xc0 == 0x80 { // fe80::/10
		return true
	}
	return false
}
