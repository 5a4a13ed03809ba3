// Package model defines the inventory entity and the messages that flow
// between the capture, aggregation, and storage stages of the pipeline.
package model

import "time"

// Method tags the protocol that produced a discovery.
type Method string

// Discovery methods recognized by the packet parser, in the order the
// parser's decoder rules evaluate them.
const (
	MethodARP   Method = "ARP"
	MethodNDP   Method = "NDP"
	MethodDHCP  Method = "DHCP"
	MethodDNS   Method = "DNS"
	MethodMDNS  Method = "mDNS"
	MethodLLMNR Method = "LLMNR"
	MethodNBNS  Method = "NBNS"
	MethodLLDP  Method = "LLDP"
	MethodCDP   Method = "CDP"
)

// LinkOnlyIP is used for discoveries that carry no IP address, such as
// LLDP/CDP topology advertisements.
const LinkOnlyIP = "0.0.0.0"

// UntaggedVLAN is the VLAN id assigned to frames with no 802.1Q tag.
const UntaggedVLAN uint16 = 1

// Asset is the inventory entity, keyed by MAC address. IP is ephemeral;
// hostname and vendor are sticky (never overwritten by a null value once
// known); first_seen is monotonic.
type Asset struct {
	MACAddress      string
	IPAddress       string
	Hostname        string // empty means unknown
	Vendor          string // empty means unknown
	VLANID          uint16
	DiscoveryMethod Method
	FirstSeenAt     time.Time
	LastSeenAt      time.Time
}

// DiscoveryRecord is a transient message emitted by the packet parser,
// enriched by the CaptureWorker with vendor and timestamp, carried across
// the capture channel, and consumed by the aggregator. Vendor and
// ObservedAt are attached by the CaptureWorker (SPEC_FULL.md §4.3); the
// parser itself never touches a clock or the vendor resolver so it stays
// a pure function of the frame bytes.
type DiscoveryRecord struct {
	MAC        string
	IP         string
	Method     Method
	Hostname   string // empty means not observed on this frame
	VLANID     uint16
	Vendor     string // empty means unresolved
	ObservedAt time.Time
}

// ThrottleEntry is the aggregator's per-MAC cache value used to decide
// whether a record represents meaningful change.
type ThrottleEntry struct {
	LastSyncAt   time.Time
	LastIP       string
	LastHostname string // empty means no hostname known yet
	LastMethod   Method
}
