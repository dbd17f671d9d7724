// Package filter provides composable predicates over catalog entries.
//
// Each constructor returns one independent Predicate; a query combines them
// with And. Unconstrained inputs (zero thresholds, empty selections, empty
// search strings) yield a predicate that matches everything, so selecting
// nothing in a multi-select filter means "no constraint applied".
package filter

import (
	"strings"

	"github.com/okian/shelfrank/internal/domain/model"
)

// Predicate reports whether a catalog entry passes one filter.
type Predicate func(*model.Book) bool

// matchAll is the neutral element of And.
func matchAll(*model.Book) bool { return true }

// And combines predicates by logical conjunction.
func And(preds ...Predicate) Predicate {
	return func(b *model.Book) bool {
		for _, p := range preds {
			if !p(b) {
				return false
			}
		}
		return true
	}
}

// MinRating requires the average rating to reach min. A missing rating
// counts as zero, so any positive threshold excludes unrated items.
func MinRating(min float64) Predicate {
	if min <= 0 {
		return matchAll
	}
	return func(b *model.Book) bool {
		return b.AvgRating.Or(0) >= min
	}
}

// MinVotes requires at least min ratings behind the average.
func MinVotes(min int) Predicate {
	if min <= 0 {
		return matchAll
	}
	return func(b *model.Book) bool {
		return b.RatingCount >= min
	}
}

// MinLiked requires the liked percentage to reach min.
func MinLiked(min float64) Predicate {
	if min <= 0 {
		return matchAll
	}
	return func(b *model.Book) bool {
		return b.LikedPercent.Or(0) >= min
	}
}

// between builds a range predicate over one optional numeric column.
// Items missing the column fail any constrained range.
func between(get func(*model.Book) model.Maybe, lo, hi model.Maybe) Predicate {
	if !lo.Valid && !hi.Valid {
		return matchAll
	}
	return func(b *model.Book) bool {
		v := get(b)
		if !v.Valid {
			return false
		}
		if lo.Valid && v.Value < lo.Value {
			return false
		}
		if hi.Valid && v.Value > hi.Value {
			return false
		}
		return true
	}
}

// PagesBetween constrains the page count to [lo, hi]; absent bounds are open.
func PagesBetween(lo, hi model.Maybe) Predicate {
	return between(func(b *model.Book) model.Maybe { return b.Pages }, lo, hi)
}

// DurationBetween constrains the duration in minutes to [lo, hi].
func DurationBetween(lo, hi model.Maybe) Predicate {
	return between(func(b *model.Book) model.Maybe { return b.DurationMin }, lo, hi)
}

// PriceBetween constrains the price to [lo, hi].
func PriceBetween(lo, hi model.Maybe) Predicate {
	return between(func(b *model.Book) model.Maybe { return b.Price }, lo, hi)
}

// YearBetween constrains the publication year to [lo, hi].
func YearBetween(lo, hi model.Maybe) Predicate {
	return between(func(b *model.Book) model.Maybe { return b.PubYear }, lo, hi)
}

// normalize lowercases and trims a selection into a set.
func normalize(selected []string) map[string]struct{} {
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// Languages passes items whose language is one of the selected values.
// An empty selection matches everything.
func Languages(selected []string) Predicate {
	set := normalize(selected)
	if len(set) == 0 {
		return matchAll
	}
	return func(b *model.Book) bool {
		_, ok := set[strings.ToLower(b.Language)]
		return ok
	}
}

// Formats passes items whose format is one of the selected values.
func Formats(selected []string) Predicate {
	set := normalize(selected)
	if len(set) == 0 {
		return matchAll
	}
	return func(b *model.Book) bool {
		_, ok := set[strings.ToLower(b.Format)]
		return ok
	}
}

// GenresAny passes items whose genre set intersects the selection
// (ANY-of-selected semantics). An empty selection matches everything.
func GenresAny(selected []string) Predicate {
	set := normalize(selected)
	if len(set) == 0 {
		return matchAll
	}
	return func(b *model.Book) bool {
		for _, g := range b.Genres {
			if _, ok := set[strings.ToLower(g)]; ok {
				return true
			}
		}
		return false
	}
}

// Search passes items containing q as a case-insensitive substring of the
// title, authors, publisher or series (OR across fields).
func Search(q string) Predicate {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return matchAll
	}
	return func(b *model.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Authors), q) ||
			strings.Contains(strings.ToLower(b.Publisher), q) ||
			strings.Contains(strings.ToLower(b.Series), q)
	}
}
