package selection

import "testing"

func TestValidateAddress_Plain(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    bool
	}{
		{"valid address", "192.168.1.10", true},
		{"valid low address", "0.0.0.0", true},
		{"valid high address", "255.255.255.255", true},
		{"octet out of range", "256.1.1.1", false},
		{"octet far out of range", "1.2.3.999", false},
		{"too few octets", "192.168.1", false},
		{"too many octets", "192.168.1.10.5", false},
		{"empty string", "", false},
		{"letters", "a.b.c.d", false},
		{"trailing dot", "192.168.1.10.", false},
		{"leading zero octet", "192.168.01.10", false},
		{"embedded whitespace", "192.168.1.10 ", false},
		{"unexpected cidr suffix", "10.0.0.5/24", false},
		{"ipv6 literal", "::1", false},
		{"ipv4-mapped ipv6", "::ffff:192.168.1.10", false},
		{"negative octet", "-1.2.3.4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateAddress(tt.literal, false); got != tt.want {
				t.Errorf("ValidateAddress(%q, false) = %v, want %v", tt.literal, got, tt.want)
			}
		})
	}
}

func TestValidateAddress_CIDR(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    bool
	}{
		{"valid cidr", "10.0.0.5/24", true},
		{"valid zero prefix", "10.0.0.5/0", true},
		{"valid max prefix", "10.0.0.5/32", true},
		{"missing prefix", "10.0.0.5", false},
		{"prefix out of range", "10.0.0.5/33", false},
		{"prefix far out of range", "10.0.0.5/128", false},
		{"empty prefix", "10.0.0.5/", false},
		{"leading zero prefix", "10.0.0.5/04", false},
		{"negative prefix", "10.0.0.5/-1", false},
		{"non-numeric prefix", "10.0.0.5/abc", false},
		{"double slash", "10.0.0.5/24/7", false},
		{"invalid address part", "256.0.0.5/24", false},
		{"empty string", "", false},
		{"bare slash", "/24", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateAddress(tt.literal, true); got != tt.want {
				t.Errorf("ValidateAddress(%q, true) = %v, want %v", tt.literal, got, tt.want)
			}
		})
	}
}
