package testcorpus

import (
	"context"
	"fmt"
	"net/url"

	"github.com/okian/shelfrank/pkg/logger"
)

// listing mirrors the /books response shape.
type listing struct {
	Total      int     `json:"total"`
	Matched    int     `json:"matched"`
	CorpusMean float64 `json:"corpus_mean"`
	Items      []struct {
		ID            string   `json:"id"`
		Rank          int      `json:"rank"`
		AvgRating     *float64 `json:"average_rating"`
		RatingCount   int      `json:"rating_count"`
		WeightedScore *float64 `json:"weighted_score"`
		PowerScore    float64  `json:"power_score"`
	} `json:"items"`
}

// verifyService queries a running service and checks its ranking
// invariants against the generated corpus.
func verifyService(ctx context.Context, config *Config, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	if err := client.checkHealth(ctx, config.BaseURL); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	logger.Get().Info(ctx, "service is healthy")

	checks := []struct {
		name   string
		params url.Values
		verify func(*listing) error
	}{
		{
			name:   "weighted score is non-increasing with nulls last",
			params: url.Values{"sort": {"weighted_score"}, "limit": {"500"}},
			verify: verifyWeightedOrder,
		},
		{
			name:   "power score is non-increasing and null-free",
			params: url.Values{"sort": {"power_score"}, "limit": {"500"}},
			verify: verifyPowerOrder,
		},
		{
			name:   "m=0 weighted score equals the raw rating",
			params: url.Values{"sort": {"weighted_score"}, "anchor_votes": {"0"}, "limit": {"500"}},
			verify: verifyUndamped,
		},
		{
			name:   "vote threshold excludes thin items",
			params: url.Values{"min_votes": {"1000"}, "limit": {"500"}},
			verify: verifyVoteFloor(1000),
		},
	}

	for _, check := range checks {
		var res listing
		if err := client.getJSON(ctx, config.BaseURL+"/books?"+check.params.Encode(), &res); err != nil {
			return fmt.Errorf("check %q: %w", check.name, err)
		}
		stats.QueriesRun++
		if err := check.verify(&res); err != nil {
			stats.ChecksFailed++
			logger.Get().Error(ctx, "check failed",
				logger.String("check", check.name),
				logger.Error(err),
			)
			continue
		}
		if config.Verbose {
			logger.Get().Info(ctx, "check passed", logger.String("check", check.name))
		}
	}

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed", stats.ChecksFailed, len(checks))
	}
	logger.Get().Info(ctx, "all checks passed", logger.Int("checks", len(checks)))
	return nil
}

func verifyWeightedOrder(res *listing) error {
	sawNull := false
	var prev float64
	havePrev := false
	for i := range res.Items {
		s := res.Items[i].WeightedScore
		if s == nil {
			sawNull = true
			continue
		}
		if sawNull {
			return fmt.Errorf("scored item at position %d after a null score", i)
		}
		if havePrev && *s > prev {
			return fmt.Errorf("weighted score increased at position %d", i)
		}
		prev = *s
		havePrev = true
	}
	return nil
}

func verifyPowerOrder(res *listing) error {
	var prev float64
	havePrev := false
	for i := range res.Items {
		s := res.Items[i].PowerScore
		if havePrev && s > prev {
			return fmt.Errorf("power score increased at position %d", i)
		}
		prev = s
		havePrev = true
	}
	return nil
}

func verifyUndamped(res *listing) error {
	const epsilon = 1e-9
	for i := range res.Items {
		item := &res.Items[i]
		if item.WeightedScore == nil || item.AvgRating == nil {
			continue
		}
		diff := *item.WeightedScore - *item.AvgRating
		if diff > epsilon || diff < -epsilon {
			return fmt.Errorf("item %s: weighted %v != rating %v with m=0", item.ID, *item.WeightedScore, *item.AvgRating)
		}
	}
	return nil
}

func verifyVoteFloor(minVotes int) func(*listing) error {
	return func(res *listing) error {
		for i := range res.Items {
			if res.Items[i].RatingCount < minVotes {
				return fmt.Errorf("item %s has %d votes, below floor %d", res.Items[i].ID, res.Items[i].RatingCount, minVotes)
			}
		}
		return nil
	}
}
