// Package parse converts the semi-structured text columns of the source
// datasets into typed values: star-rating strings, vote counts, duration
// strings, python-style genre list literals, prices and dates.
//
// Every parser returns (value, ok) and fails soft. Malformed input degrades
// to the zero value with ok=false; nothing here returns an error or panics,
// so a bad row never aborts a corpus load.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	starsRe  = regexp.MustCompile(`(\d(?:\.\d+)?)\s*out of 5 stars`)
	votesRe  = regexp.MustCompile(`([\d,]+)\s*rating`)
	hoursRe  = regexp.MustCompile(`(\d+)\s*hr`)
	minsRe   = regexp.MustCompile(`(\d+)\s*min`)
	yearRe   = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)
	numberRe = regexp.MustCompile(`-?[\d,]+(?:\.\d+)?`)
)

// Stars extracts the rating and vote count from a combined star string such
// as "4.5 out of 5 stars41 ratings". "Not rated yet" and anything else
// without a recognizable rating report ok=false.
func Stars(s string) (rating float64, votes int, ok bool) {
	m := starsRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	rating, err := strconv.ParseFloat(m[1], 64)
	if err != nil || rating < 0 || rating > 5 {
		return 0, 0, false
	}
	if v, vok := Votes(s); vok {
		votes = v
	}
	return rating, votes, true
}

// Votes extracts a vote count from strings like "41 ratings" or "1,543 ratings".
func Votes(s string) (int, bool) {
	m := votesRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Duration converts strings like "6 hrs and 30 mins", "2 hrs", or
// "45 mins" into total minutes.
func Duration(s string) (minutes int, ok bool) {
	if h := hoursRe.FindStringSubmatch(s); h != nil {
		n, err := strconv.Atoi(h[1])
		if err != nil {
			return 0, false
		}
		minutes += n * 60
		ok = true
	}
	if m := minsRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		minutes += n
		ok = true
	}
	return minutes, ok
}

// Genres parses a python-style list literal such as "['Fiction', 'Fantasy']"
// into its elements. Anything unrecognizable yields an empty list.
func Genres(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s[1:len(s)-1], ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `'"`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Number extracts the first numeric value from a string, tolerating
// thousands separators and surrounding text ("1,256.00", "$12.99").
func Number(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Price parses a price column. "Free" is a valid zero price; otherwise the
// first number in the string is used.
func Price(s string) (float64, bool) {
	if strings.EqualFold(strings.TrimSpace(s), "free") {
		return 0, true
	}
	v, ok := Number(s)
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}

// Author cleans an author column, stripping the "Writtenby:" prefix found
// in the audiobook export.
func Author(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ":"); i >= 0 && strings.EqualFold(strings.ReplaceAll(s[:i], " ", ""), "writtenby") {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// Narrator cleans a narrator column, stripping the "Narratedby:" prefix.
func Narrator(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ":"); i >= 0 && strings.EqualFold(strings.ReplaceAll(s[:i], " ", ""), "narratedby") {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// Date layouts seen across the exports: ISO, US short and dashed short.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/06",
	"02-01-06",
	"January 2, 2006",
	"2006",
}

// Year extracts a publication year from assorted date formats. A bare
// four-digit year anywhere in the string is the fallback.
func Year(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	if m := yearRe.FindString(s); m != "" {
		y, err := strconv.Atoi(m)
		if err == nil {
			return y, true
		}
	}
	return 0, false
}
