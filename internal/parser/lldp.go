/**
 * LLDP/CDP topology decoding.
 *
 * SPEC_FULL.md §4.2 rule 5: link-layer topology advertisements carry no
 * useful IP address, so their record uses model.LinkOnlyIP and is exempt
 * from the private-IP predicate. LLDP decodes through gopacket's native
 * layer; CDP has none, so it is recognized purely by EtherType.
 */

package parser

import (
	"net"
	"strings"

	"github.com/google/gopacket/layers"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

func decodeLinkTopology(df *decodedFrame) (rec *model.DiscoveryRecord, matched bool) {
	if lldpLayer, ok := df.packet.Layer(layers.LayerTypeLinkLayerDiscovery).(*layers.LinkLayerDiscovery); ok {
		return &model.DiscoveryRecord{
			MAC:    chassisMAC(lldpLayer, df.srcMAC),
			IP:     model.LinkOnlyIP,
			Method: model.MethodLLDP,
			VLANID: df.vlanID,
		}, true
	}

	if df.innerType == ethernetTypeCDP {
		return &model.DiscoveryRecord{
			MAC:    df.srcMAC,
			IP:     model.LinkOnlyIP,
			Method: model.MethodCDP,
			VLANID: df.vlanID,
		}, true
	}

	return nil, false
}

// chassisMAC prefers the LLDP chassis ID when it is a MAC address, since
// that identifies the advertising device itself rather than whatever sent
// the frame on its behalf; it falls back to the frame's source MAC.
func chassisMAC(lldp *layers.LinkLayerDiscovery, fallback string) string {
	if lldp.ChassisID.Subtype == layers.LLDPChassisIDSubTypeMACAddr && len(lldp.ChassisID.ID) == 6 {
		return strings.ToUpper(net.HardwareAddr(lldp.ChassisID.ID).String())
	}
	return fallback
}
