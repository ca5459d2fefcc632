package phone

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number carries no country code.
const DefaultRegion = "US"

// e164Loose is the fallback shape check: "+" followed by 1-14 digits.
var e164Loose = regexp.MustCompile(`^\+[0-9]{1,14}$`)

// Normalize converts raw phone input into canonical E.164 form using the
// default region. The second return value is false when the input cannot be
// interpreted as a phone number.
func Normalize(raw string) (string, bool) {
	return NormalizeWithRegion(raw, DefaultRegion)
}

// NormalizeWithRegion is Normalize with an explicit two-letter region code
// used when the input has no country prefix. It never fails with an error;
// invalid input yields ("", false).
func NormalizeWithRegion(raw, region string) (string, bool) {
	cleaned := clean(raw)
	if cleaned == "" {
		return "", false
	}
	if region == "" {
		region = DefaultRegion
	}

	// Plausibility (length for the region), not strict assignment validity:
	// imports carry plenty of placeholder and test numbers that strict
	// metadata would reject.
	if num, err := phonenumbers.Parse(cleaned, region); err == nil {
		if phonenumbers.IsPossibleNumber(num) {
			return phonenumbers.Format(num, phonenumbers.E164), true
		}
	}

	// Numbers the metadata rejects are still accepted when they already look
	// like E.164; imports carry plenty of test lines and short codes.
	if e164Loose.MatchString(cleaned) {
		return cleaned, true
	}
	return "", false
}

// clean strips everything except digits and a leading plus sign. The plus
// survives as long as it appears before the first digit, so formatting like
// "(+44) ..." keeps its country-code marker.
func clean(raw string) string {
	var b strings.Builder
	plus := false
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			plus = true
		}
	}
	if b.Len() == 0 {
		return ""
	}
	if plus {
		return "+" + b.String()
	}
	return b.String()
}
