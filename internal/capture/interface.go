/**
 * Network interface discovery and validation.
 *
 * SPEC_FULL.md §4.3: an interface is checked twice before a Worker
 * activates its pcap handle — once through libpcap's own device list, and
 * once (on Linux) through github.com/vishvananda/netlink, which can tell
 * an operationally-down link apart from one libpcap simply doesn't see.
 */

package capture

import (
	"fmt"
	"net"
	"runtime"

	"github.com/google/gopacket/pcap"
	"github.com/vishvananda/netlink"
)

// Interface describes one capture-capable network device.
type Interface struct {
	Name        string
	Description string
	Addresses   []string
	IsUp        bool
	IsLoopback  bool
}

// ListInterfaces queries libpcap for every device capable of packet
// capture and annotates each with OS-level interface flags.
func ListInterfaces() ([]Interface, error) {
	devices, err := pcap.FindAllDevs()
	if err != nil {
		return nil, fmt.Errorf("capture: list devices: %w", err)
	}

	out := make([]Interface, 0, len(devices))
	for _, device := range devices {
		iface := Interface{
			Name:        device.Name,
			Description: device.Description,
			Addresses:   make([]string, 0, len(device.Addresses)),
		}
		for _, addr := range device.Addresses {
			if addr.IP != nil {
				iface.Addresses = append(iface.Addresses, addr.IP.String())
			}
		}
		if netIface, err := net.InterfaceByName(device.Name); err == nil {
			iface.IsUp = netIface.Flags&net.FlagUp != 0
			iface.IsLoopback = netIface.Flags&net.FlagLoopback != 0
		}
		out = append(out, iface)
	}
	return out, nil
}

// FindInterface locates a named interface in libpcap's device list.
func FindInterface(name string) (*Interface, error) {
	interfaces, err := ListInterfaces()
	if err != nil {
		return nil, err
	}
	for i := range interfaces {
		if interfaces[i].Name == name {
			return &interfaces[i], nil
		}
	}
	return nil, fmt.Errorf("capture: interface %q not found", name)
}

// validateInterface runs the two-layer check SPEC_FULL.md §4.3 describes:
// libpcap's device list first, then (on Linux) netlink's operational link
// state, which surfaces "operationally down" as a distinct diagnostic from
// "no such device".
func validateInterface(name string) error {
	if _, err := FindInterface(name); err != nil {
		return err
	}

	if runtime.GOOS != "linux" {
		return nil
	}

	link, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("capture: netlink lookup of %q: %w", name, err)
	}
	if link.Attrs().OperState == netlink.OperDown {
		return fmt.Errorf("capture: interface %q is operationally down", name)
	}
	return nil
}
