package dataset

import "strings"

// column identifies one canonical field of the corpus.
type column int

const (
	colID column = iota
	colTitle
	colAuthors
	colNarrator
	colPublisher
	colSeries
	colLanguage
	colFormat
	colGenres
	colCover
	colRating
	colVotes
	colStars
	colPages
	colDuration
	colPubDate
	colFirstPubDate
	colLiked
	colPrice
)

// columnAliases maps normalized CSV header names to canonical columns.
// Both corpus schemas are covered: the audiobook export
// (name/author/narrator/time/releasedate/stars/price) and the books export
// (title/author/rating/numRatings/pages/genres/...).
var columnAliases = map[string]column{
	"bookid":        colID,
	"book_id":       colID,
	"isbn13":        colID,
	"isbn":          colID,
	"title":         colTitle,
	"name":          colTitle,
	"author":        colAuthors,
	"authors":       colAuthors,
	"narrator":      colNarrator,
	"publisher":     colPublisher,
	"series":        colSeries,
	"language":      colLanguage,
	"language_code": colLanguage,
	"bookformat":    colFormat,
	"format":        colFormat,
	"genres":        colGenres,
	"coverimg":      colCover,
	"cover_url":     colCover,
	"rating":        colRating,
	"average_rating": colRating,
	"numratings":    colVotes,
	"ratings_count": colVotes,
	"votes":         colVotes,
	"stars":         colStars,
	"pages":         colPages,
	"num_pages":     colPages,
	"time":          colDuration,
	"duration":      colDuration,
	"publishdate":   colPubDate,
	"publication_date": colPubDate,
	"releasedate":      colPubDate,
	"firstpublishdate": colFirstPubDate,
	"first_publication_date": colFirstPubDate,
	"likedpercent": colLiked,
	"liked_percent": colLiked,
	"price": colPrice,
}

// normalizeHeader strips BOM markers and whitespace and lowercases a
// header cell before alias lookup.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, "\uFEFF")
	return strings.ToLower(h)
}

// mapHeader resolves a header row into canonical column indexes. Unknown
// columns are ignored; the first alias hit per column wins.
func mapHeader(header []string) map[column]int {
	idx := make(map[column]int)
	for i, h := range header {
		c, ok := columnAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, taken := idx[c]; !taken {
			idx[c] = i
		}
	}
	return idx
}
