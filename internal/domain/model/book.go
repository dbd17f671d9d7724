// Package model contains domain records passed between layers.
package model

import (
	"encoding/json"
	"math"
)

// Maybe is a nullable numeric column. The zero value is "absent".
// Parsers that fail produce an absent Maybe instead of NaN or an error,
// so malformed rows degrade instead of aborting a corpus load.
type Maybe struct {
	Value float64
	Valid bool
}

// Some returns a present value. NaN and infinities are rejected and
// collapse to absent so they can never reach display or sort.
func Some(v float64) Maybe {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Maybe{}
	}
	return Maybe{Value: v, Valid: true}
}

// None returns an absent value.
func None() Maybe { return Maybe{} }

// Or returns the value when present, def otherwise.
func (m Maybe) Or(def float64) float64 {
	if m.Valid {
		return m.Value
	}
	return def
}

// MarshalJSON encodes an absent value as null.
func (m Maybe) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON decodes null as absent.
func (m *Maybe) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Maybe{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Some(v)
	return nil
}

// Book is one catalog entry (book or audiobook). Descriptive attributes are
// pass-through data; only AvgRating and RatingCount participate in scoring.
type Book struct {
	ID        string
	Title     string
	Authors   string
	Narrator  string
	Publisher string
	Series    string
	Language  string
	Format    string
	Genres    []string
	CoverURL  string

	AvgRating    Maybe // in [0,5]; absent when unrated
	RatingCount  int   // number of ratings backing AvgRating, never negative
	LikedPercent Maybe
	Price        Maybe
	Pages        Maybe
	DurationMin  Maybe
	PubYear      Maybe

	// Derived during a scoring pass. Source fields above are immutable
	// inputs; the engine writes only these two.
	WeightedScore Maybe
	PowerScore    float64
}

// Rated reports whether the book carries a usable rating.
func (b *Book) Rated() bool { return b.AvgRating.Valid }
