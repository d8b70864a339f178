package render

import "regexp"

// TimestampPlaceholder replaces the generation date in MaskTimestamp.
const TimestampPlaceholder = "<timestamp>"

var timestampLine = regexp.MustCompile(`(?m)^(// (?:Code generated|Created) by osstatus-generator on )([^.\n]*)(\.)`)

// MaskTimestamp replaces the generation date in rendered output so two
// renders of the same input compare equal. Only the first stamp is masked.
func MaskTimestamp(text string) string {
	loc := timestampLine.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[4]] + TimestampPlaceholder + text[loc[5]:]
}
