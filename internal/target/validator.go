package target

import (
	"fmt"
	"strconv"
	"strings"

	"pingtool/internal/models"
)

// InvalidTargetError reports a string that is neither an IPv4 literal nor a
// valid hostname. It carries the original input for display.
type InvalidTargetError struct {
	Input string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid IP address or domain name: %q", e.Input)
}

// Classify validates a user-supplied string and tags it as an IPv4 literal
// or a domain name. Validation is purely syntactic, no DNS lookup happens.
func Classify(input string) (models.Target, error) {
	host := strings.TrimSpace(input)
	if host == "" {
		return models.Target{}, &InvalidTargetError{Input: input}
	}

	if isIPv4(host) {
		return models.Target{Host: host, Kind: models.KindIPv4}, nil
	}

	if isHostname(host) {
		return models.Target{Host: host, Kind: models.KindDomain}, nil
	}

	return models.Target{}, &InvalidTargetError{Input: input}
}

// isIPv4 checks for exactly four dot-separated decimal octets in [0,255].
// Leading zeros are accepted as long as the value stays in range.
func isIPv4(s string) bool {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return false
	}
	for _, octet := range octets {
		if octet == "" {
			return false
		}
		for _, r := range octet {
			if r < '0' || r > '9' {
				return false
			}
		}
		n, err := strconv.Atoi(octet)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}

// isHostname checks the hostname grammar: dot-separated labels of letters,
// digits and hyphens, 1-63 chars each, no leading/trailing hyphen, total
// length at most 253, final label alphabetic with at least two characters.
// The TLD rule keeps out-of-range dotted quads like 999.999.999.999 from
// sneaking through as domains. "localhost" passes as a single-label domain.
func isHostname(s string) bool {
	if s == "localhost" {
		return true
	}
	if len(s) > 253 {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isLabel(label) {
			return false
		}
	}
	return isAlphaTLD(labels[len(labels)-1])
}

func isAlphaTLD(label string) bool {
	if len(label) < 2 {
		return false
	}
	for _, r := range label {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
