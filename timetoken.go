package main

import (
	"regexp"
	"strconv"
	"strings"
)

// Clock-time substrings in free text: "2pm", "2:30 PM", "7 p.m.", "19:45".
// The 12-hour alternative comes first so a meridiem is consumed with its
// digits. A fresh find-all runs per call; no scan state is shared.
var timeTokenRe = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*[ap]\.?m\.?|\b\d{1,2}:\d{2}\b`)

var (
	twelveHourRe     = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\.?$`)
	twentyFourHourRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// extractTimeTokens returns every recognized clock-time substring in
// left-to-right order.
func extractTimeTokens(text string) []string {
	if text == "" {
		return nil
	}
	return timeTokenRe.FindAllString(text, -1)
}

func firstTimeToken(text string) string {
	if text == "" {
		return ""
	}
	return timeTokenRe.FindString(text)
}

// normalizeTimeToken converts a token to minutes since midnight. Tokens
// outside the grammar (hour 24+, minute 60+, meridiem hour outside 1-12)
// report !ok and get compared textually instead.
func normalizeTimeToken(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, false
	}
	if m := twelveHourRe.FindStringSubmatch(tok); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return 0, false
		}
		minute := 0
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				return 0, false
			}
		}
		hour %= 12
		if m[3] == "p" || m[3] == "P" {
			hour += 12
		}
		return hour*60 + minute, true
	}
	if m := twentyFourHourRe.FindStringSubmatch(tok); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, false
		}
		return hour*60 + minute, true
	}
	return 0, false
}

// normalizeTimeText is the escape hatch for tokens that resist numeric
// parsing: lowercase, dots stripped, whitespace collapsed.
func normalizeTimeText(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

// equivalentTimes reports whether two time expressions refer to the same
// moment. Independently entered and independently computed times disagree
// by truncated seconds, so the numeric path tolerates one minute of
// drift. Either side empty is never a match.
func equivalentTimes(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	am, aok := normalizeTimeToken(a)
	bm, bok := normalizeTimeToken(b)
	if aok && bok {
		d := am - bm
		if d < 0 {
			d = -d
		}
		return d <= 1
	}
	return normalizeTimeText(a) == normalizeTimeText(b)
}
