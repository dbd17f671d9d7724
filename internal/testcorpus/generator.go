package testcorpus

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/okian/shelfrank/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	archetypeCount     = 6
)

// Archetype cases. Each produces a distinct rating/vote profile so the
// generated corpus stresses both ends of the damping formula.
const (
	caseBestseller = 0 // high rating, huge vote count
	caseAcclaimed  = 1 // high rating, moderate votes
	caseNiche      = 2 // very high rating, tiny vote count
	casePolarizing = 3 // mid rating, large vote count
	caseBackList   = 4 // mid rating, few votes
	caseUnrated    = 5 // no rating at all
)

var titleWords = []string{
	"Voyage", "Harbor", "Empire", "Garden", "Shadow", "Winter", "Crown",
	"River", "Silence", "Echo", "Horizon", "Letters", "Atlas", "Orchard",
}

var authorNames = []string{
	"Jane Doe", "John Roe", "M. K. Ashford", "Elena Petrova", "Sam Okafor",
	"Li Wei", "Aoife Byrne", "Carlos Mendez",
}

var genreSets = []string{
	"['Fiction', 'Classics']",
	"['Fantasy', 'Adventure']",
	"['Romance']",
	"['Science Fiction', 'Dystopia']",
	"['History', 'Nonfiction']",
	"['Mystery', 'Thriller']",
}

var languages = []string{"English", "English", "English", "Spanish", "German"}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func pick(list []string) string {
	return list[int(getRandomFloat()*float64(len(list)))%len(list)]
}

// Record is one generated CSV row in the books schema.
type Record struct {
	ID         string
	Title      string
	Author     string
	Rating     string
	NumRatings string
	Pages      string
	Genres     string
	Language   string
	Format     string
	PubDate    string
}

// generateBooks produces a synthetic corpus covering every archetype.
func generateBooks(ctx context.Context, config *Config, stats *Stats) []Record {
	logger.Get().Info(ctx, "generating corpus", logger.Int("books", config.NumBooks))

	records := make([]Record, 0, config.NumBooks)
	for i := 0; i < config.NumBooks; i++ {
		records = append(records, generateBook(i))
	}
	stats.BooksGenerated = len(records)
	return records
}

// generateBook produces one record. The archetype cycles so even tiny
// corpora contain every profile.
func generateBook(n int) Record {
	r := Record{
		ID:       uuid.NewString(),
		Title:    "The " + pick(titleWords) + " of " + pick(titleWords),
		Author:   pick(authorNames),
		Pages:    strconv.Itoa(120 + int(getRandomFloat()*700)),
		Genres:   pick(genreSets),
		Language: pick(languages),
		Format:   "Paperback",
		PubDate:  strconv.Itoa(1950+int(getRandomFloat()*75)) + "-01-01",
	}

	switch n % archetypeCount {
	case caseBestseller:
		r.Rating = formatRating(4.0 + getRandomFloat()*0.8)
		r.NumRatings = strconv.Itoa(100_000 + int(getRandomFloat()*2_000_000))
	case caseAcclaimed:
		r.Rating = formatRating(4.2 + getRandomFloat()*0.6)
		r.NumRatings = strconv.Itoa(1_000 + int(getRandomFloat()*50_000))
	case caseNiche:
		r.Rating = formatRating(4.7 + getRandomFloat()*0.3)
		r.NumRatings = strconv.Itoa(1 + int(getRandomFloat()*10))
	case casePolarizing:
		r.Rating = formatRating(2.5 + getRandomFloat()*1.0)
		r.NumRatings = strconv.Itoa(50_000 + int(getRandomFloat()*500_000))
	case caseBackList:
		r.Rating = formatRating(3.0 + getRandomFloat()*1.5)
		r.NumRatings = strconv.Itoa(10 + int(getRandomFloat()*200))
	case caseUnrated:
		r.Rating = ""
		r.NumRatings = ""
	}
	return r
}

func formatRating(v float64) string {
	if v > 5.0 {
		v = 5.0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
