package domain

import "strings"

// defaultDialingPrefix is the country code prepended to local numbers.
const defaultDialingPrefix = "+972"

// NormalizePhone canonicalizes a user-supplied phone number to international
// format. Numbers already carrying a "+" prefix are returned unchanged;
// anything else has its leading zeros stripped and the default dialing prefix
// prepended. The function never fails — malformed digits pass through after
// prefixing.
func NormalizePhone(raw string) string {
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	return defaultDialingPrefix + strings.TrimLeft(raw, "0")
}
