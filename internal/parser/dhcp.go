/**
 * DHCP decoding.
 *
 * SPEC_FULL.md §4.2 rule 4 (ports 67/68): the UDP payload is parsed with
 * github.com/insomniacslk/dhcp/dhcpv4 purely to confirm it is a
 * well-formed DHCP message; a malformed payload on the DHCP ports yields
 * no record per the parser's error policy.
 */

package parser

import "github.com/insomniacslk/dhcp/dhcpv4"

func isWellFormedDHCP(payload []byte) bool {
	_, err := dhcpv4.FromBytes(payload)
	return err == nil
}
