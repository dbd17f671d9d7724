// Package rank produces total orders over catalog entries.
//
// Every sort key yields a deterministic total order: absent values sort
// after present ones under a descending order and before them ascending,
// and remaining ties always fall back to the item id, so repeated sorts of
// the same snapshot agree.
package rank

import (
	"sort"
	"strings"

	"github.com/okian/shelfrank/internal/domain/model"
)

// Key names one sortable column.
type Key string

// Sort keys accepted by queries.
const (
	KeyRecommended Key = "recommended" // rating desc, then votes desc
	KeyWeighted    Key = "weighted_score"
	KeyPower       Key = "power_score"
	KeyRating      Key = "rating"
	KeyVotes       Key = "votes"
	KeyPages       Key = "pages"
	KeyDuration    Key = "duration"
	KeyPrice       Key = "price"
	KeyYear        Key = "year"
	KeyLiked       Key = "liked"
	KeyTitle       Key = "title"
)

// Order is an explicit sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseKey resolves a key name; an empty name selects the recommended
// ordering. Unknown names report false.
func ParseKey(s string) (Key, bool) {
	switch Key(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return KeyRecommended, true
	case KeyRecommended, KeyWeighted, KeyPower, KeyRating, KeyVotes,
		KeyPages, KeyDuration, KeyPrice, KeyYear, KeyLiked, KeyTitle:
		return Key(strings.ToLower(strings.TrimSpace(s))), true
	}
	return "", false
}

// ParseOrder resolves an explicit direction; empty means the key's natural
// direction. Unknown names report false.
func ParseOrder(s string) (Order, bool) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", true
	case OrderAsc:
		return OrderAsc, true
	case OrderDesc:
		return OrderDesc, true
	}
	return "", false
}

// Natural returns the default direction for a key: ascending for titles,
// descending for scores, counts, ratings and the other numeric columns.
func Natural(key Key) Order {
	if key == KeyTitle {
		return OrderAsc
	}
	return OrderDesc
}

// extractor returns the sortable value of one numeric key.
func extractor(key Key) func(*model.Book) model.Maybe {
	switch key {
	case KeyWeighted:
		return func(b *model.Book) model.Maybe { return b.WeightedScore }
	case KeyPower:
		return func(b *model.Book) model.Maybe { return model.Some(b.PowerScore) }
	case KeyRecommended, KeyRating:
		return func(b *model.Book) model.Maybe { return b.AvgRating }
	case KeyVotes:
		return func(b *model.Book) model.Maybe { return model.Some(float64(b.RatingCount)) }
	case KeyPages:
		return func(b *model.Book) model.Maybe { return b.Pages }
	case KeyDuration:
		return func(b *model.Book) model.Maybe { return b.DurationMin }
	case KeyPrice:
		return func(b *model.Book) model.Maybe { return b.Price }
	case KeyYear:
		return func(b *model.Book) model.Maybe { return b.PubYear }
	case KeyLiked:
		return func(b *model.Book) model.Maybe { return b.LikedPercent }
	}
	return func(b *model.Book) model.Maybe { return b.AvgRating }
}

// Sort orders items in place by key. An empty order applies the key's
// natural direction.
func Sort(items []model.Book, key Key, order Order) {
	if order == "" {
		order = Natural(key)
	}
	less := lessFunc(key, order)
	sort.Slice(items, func(i, j int) bool {
		return less(&items[i], &items[j])
	})
}

func lessFunc(key Key, order Order) func(a, b *model.Book) bool {
	if key == KeyTitle {
		return func(a, b *model.Book) bool {
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if ta != tb {
				if order == OrderAsc {
					return ta < tb
				}
				return ta > tb
			}
			return a.ID < b.ID
		}
	}

	get := extractor(key)
	secondaryVotes := key == KeyRecommended

	return func(a, b *model.Book) bool {
		av, bv := get(a), get(b)

		// Absent keys sort last under descending, first under ascending.
		if av.Valid != bv.Valid {
			if order == OrderDesc {
				return av.Valid
			}
			return !av.Valid
		}

		if av.Valid && av.Value != bv.Value {
			if order == OrderDesc {
				return av.Value > bv.Value
			}
			return av.Value < bv.Value
		}

		if secondaryVotes && a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}

		return a.ID < b.ID
	}
}
