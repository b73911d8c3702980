package selection

import (
	"net"
	"strconv"
	"strings"
)

// ValidateAddress reports whether literal is a well-formed IPv4 address.
// With wantCIDR the literal must carry a "/<prefix>" suffix with a prefix
// length of 0-32; without it any suffix is rejected. The check is strict:
// exactly four dot-separated decimal octets 0-255, nothing surrounding them.
// Pure function; the boolean result is the sole channel.
func ValidateAddress(literal string, wantCIDR bool) bool {
	if wantCIDR {
		addr, prefix, found := strings.Cut(literal, "/")
		if !found {
			return false
		}
		return validIPv4(addr) && validPrefixLength(prefix)
	}
	return validIPv4(literal)
}

func validIPv4(s string) bool {
	// net.ParseIP would admit IPv4-mapped IPv6 forms like ::ffff:1.2.3.4
	if strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

func validPrefixLength(s string) bool {
	if s == "" || len(s) > 2 {
		return false
	}
	if len(s) == 2 && s[0] == '0' {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 32
}
