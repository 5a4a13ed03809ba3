/**
 * fieldwatcher-doctor: a pre-flight diagnostic for capture permissions and
 * interface availability, adapted from the netscope project's
 * verify_install tool.
 */

package main

import (
	"fmt"
	"os"

	"github.com/google/gopacket/pcap"

	"github.com/fieldwatcher/fieldwatcher/internal/capture"
)

func main() {
	fmt.Printf("libpcap version: %s\n", pcap.Version())

	interfaces, err := capture.ListInterfaces()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error listing interfaces: %v\n"+
			"possible causes: libpcap/Npcap not installed, missing capture privileges\n", err)
		os.Exit(1)
	}

	if len(interfaces) == 0 {
		fmt.Println("no capture-capable interfaces found")
		os.Exit(1)
	}

	fmt.Printf("found %d interface(s):\n", len(interfaces))
	for _, iface := range interfaces {
		status := "down"
		if iface.IsUp {
			status = "up"
		}
		fmt.Printf("  %-16s %-6s %s\n", iface.Name, status, iface.Description)
	}
}
