package main

import (
	"strings"
)

// Fallback "When" construction from the raw labels the host typed, plus
// the policy that decides whether the computed line or the literal text
// wins. No date parsing happens here; the point of the fallback is to
// keep the host's own phrasing when the structured fields are missing or
// suspect.

// buildFallbackRange composes a best-effort range line from the raw
// start/end labels. Empty string means nothing usable was entered.
func buildFallbackRange(startLabel, endLabel string) string {
	start := strings.TrimSpace(startLabel)
	if start == "" {
		return ""
	}
	end := strings.TrimSpace(endLabel)
	if end == "" {
		return start
	}

	startTok := firstTimeToken(start)
	endTok := firstTimeToken(end)

	switch {
	case startTok != "" && endTok != "":
		datePart := stripTrailingTimeSegment(start)
		// Keep anything the end label says beyond its time; dropping
		// "Jan 6, 11:00 PM" down to "11:00 PM" would lose the date.
		tail := endTok
		if rest := labelWithoutToken(end, endTok); rest != "" && normalizeTimeText(rest) != normalizeTimeText(datePart) {
			tail = end
		}
		if datePart == "" {
			return startTok + rangeSep + tail
		}
		return datePart + ", " + startTok + rangeSep + tail
	case startTok != "":
		datePart := stripTrailingTimeSegment(start)
		if datePart == "" {
			return startTok
		}
		return datePart + ", " + startTok
	default:
		return start + rangeSep + end
	}
}

// stripTrailingTimeSegment drops a trailing comma-segment that contains a
// time token, leaving the date portion of a label like "Jan 5, 3:00 PM".
func stripTrailingTimeSegment(label string) string {
	segs := strings.Split(label, ",")
	if firstTimeToken(segs[len(segs)-1]) == "" {
		return strings.TrimSpace(label)
	}
	return strings.TrimSpace(strings.Join(segs[:len(segs)-1], ","))
}

// labelWithoutToken removes the first occurrence of tok and trims the
// leftover separators.
func labelWithoutToken(label, tok string) string {
	rest := strings.Replace(label, tok, "", 1)
	return strings.Trim(rest, " ,\t")
}

// reconcileWhen chooses the final display line. Structured timestamps can
// silently disagree with what the host typed (a misconfigured timezone
// upstream shifts every computed time); when the first/last computed
// times don't match the typed ones, the typed text is what the host meant
// to say, so the fallback wins.
func reconcileWhen(computed, fallback, rawStartLabel, rawEndLabel string) string {
	if strings.TrimSpace(computed) == "" {
		return fallback
	}

	var compStart, compEnd string
	if toks := extractTimeTokens(computed); len(toks) > 0 {
		compStart = toks[0]
		compEnd = toks[len(toks)-1]
	}
	rawStart := firstTimeToken(rawStartLabel)
	rawEnd := firstTimeToken(rawEndLabel)

	if (rawStart != "" && !equivalentTimes(rawStart, compStart)) ||
		(rawEnd != "" && !equivalentTimes(rawEnd, compEnd)) {
		return fallback
	}
	return computed
}
