package capture

import "testing"

func TestDiscoveryBPFFilterCoversAllMethods(t *testing.T) {
	want := []string{"arp", "67", "68", "53", "5353", "5355", "137", "icmp6", "0x88cc", "0x2000"}
	for _, token := range want {
		if !contains(discoveryBPFFilter, token) {
			t.Errorf("BPF filter %q missing expected token %q", discoveryBPFFilter, token)
		}
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
