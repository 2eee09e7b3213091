package hub

import (
	"sort"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

// Reach and impressions are not reported upstream; they are estimated
// from engagement with these multipliers.
const (
	reachPerEngagement       = 10
	impressionsPerEngagement = 15
)

// AggregateDaily sums records per calendar day and returns the latest
// days entries in ascending date order. Records without a date are
// skipped. days <= 0 keeps every day.
func AggregateDaily(records []models.DailyRecord, days int) []models.DailyPoint {
	byDate := make(map[string]*models.DailyPoint)
	for _, r := range records {
		if r.Date == "" {
			continue
		}
		p, ok := byDate[r.Date]
		if !ok {
			p = &models.DailyPoint{Date: r.Date}
			byDate[r.Date] = p
		}
		p.Likes += r.Likes
		p.Comments += r.Comments
		p.Shares += r.Shares
		p.Mentions += r.Mentions
		p.VideoPlays += r.VideoPlays
	}

	out := make([]models.DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		eng := p.Likes + p.Comments + p.Shares
		p.Reach = eng * reachPerEngagement
		p.Impressions = eng * impressionsPerEngagement
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	if days > 0 && len(out) > days {
		out = out[len(out)-days:]
	}
	return out
}

// filterDays keeps points within [from, to]; empty bounds are open.
func filterDays(points []models.DailyPoint, from, to string) []models.DailyPoint {
	if from == "" && to == "" {
		return points
	}
	out := make([]models.DailyPoint, 0, len(points))
	for _, p := range points {
		if from != "" && p.Date < from {
			continue
		}
		if to != "" && p.Date > to {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Summarize totals a series. Averages are 0 for an empty series; the
// changes come from e and are always marked estimated.
func Summarize(points []models.DailyPoint, e ChangeEstimator) models.DailySummary {
	s := models.DailySummary{Days: len(points)}
	for _, p := range points {
		s.TotalReach += p.Reach
		s.TotalImpressions += p.Impressions
		s.TotalLikes += p.Likes
		s.TotalComments += p.Comments
		s.TotalShares += p.Shares
		s.TotalMentions += p.Mentions
		s.TotalVideoPlays += p.VideoPlays
	}
	if n := float64(len(points)); n > 0 {
		s.AvgReach = float64(s.TotalReach) / n
		s.AvgLikes = float64(s.TotalLikes) / n
		s.AvgComments = float64(s.TotalComments) / n
	}
	if e == nil {
		e = RandomChangeEstimator{}
	}
	s.Changes = estimateChanges(e, "reach", "impressions", "likes", "comments", "shares")
	s.ChangesEstimated = true
	return s
}
