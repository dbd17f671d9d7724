package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/okian/shelfrank/internal/domain/model"
	"github.com/okian/shelfrank/internal/domain/types"
)

// parseListQuery converts /books query parameters into a catalog query.
// Absent parameters leave their zero values, which the store treats as
// unconstrained.
func parseListQuery(values url.Values) (types.Query, error) {
	q := types.Query{
		Search:    values.Get("q"),
		Languages: values["language"],
		Formats:   values["format"],
		Genres:    values["genre"],
		Sort:      values.Get("sort"),
		Order:     values.Get("order"),
	}

	var err error
	if q.MinRating, err = floatParam(values, "min_rating"); err != nil {
		return types.Query{}, err
	}
	if q.MinVotes, err = intParam(values, "min_votes"); err != nil {
		return types.Query{}, err
	}
	if q.MinLiked, err = floatParam(values, "min_liked"); err != nil {
		return types.Query{}, err
	}
	if q.Limit, err = intParam(values, "limit"); err != nil {
		return types.Query{}, err
	}
	if q.Offset, err = intParam(values, "offset"); err != nil {
		return types.Query{}, err
	}

	bounds := []struct {
		key  string
		dest *model.Maybe
	}{
		{"pages_min", &q.PagesMin},
		{"pages_max", &q.PagesMax},
		{"duration_min", &q.DurationMin},
		{"duration_max", &q.DurationMax},
		{"price_min", &q.PriceMin},
		{"price_max", &q.PriceMax},
		{"year_min", &q.YearMin},
		{"year_max", &q.YearMax},
		{"anchor_votes", &q.AnchorVotes},
		{"power_exponent", &q.PowerExponent},
	}
	for _, b := range bounds {
		if *b.dest, err = maybeParam(values, b.key); err != nil {
			return types.Query{}, err
		}
	}

	if q.AnchorVotes.Valid && q.AnchorVotes.Value < 0 {
		return types.Query{}, fmt.Errorf("anchor_votes must be non-negative: %w", ErrBadRequest)
	}
	if q.PowerExponent.Valid && q.PowerExponent.Value < 0 {
		return types.Query{}, fmt.Errorf("power_exponent must be non-negative: %w", ErrBadRequest)
	}

	return q, nil
}

func floatParam(values url.Values, key string) (float64, error) {
	s := values.Get(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, ErrBadRequest)
	}
	return v, nil
}

func intParam(values url.Values, key string) (int, error) {
	s := values.Get(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, ErrBadRequest)
	}
	return v, nil
}

func maybeParam(values url.Values, key string) (model.Maybe, error) {
	s := values.Get(key)
	if s == "" {
		return model.None(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.None(), fmt.Errorf("invalid %s %q: %w", key, s, ErrBadRequest)
	}
	return model.Some(v), nil
}
