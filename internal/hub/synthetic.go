package hub

import (
	"sort"
	"time"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

// Synthetic data fills empty reporting views for demos. Shapes and value
// ranges are fixed; values are random.

const (
	// SyntheticWindowDays is the trailing window of synthetic daily data.
	SyntheticWindowDays = 7
	// MaxSyntheticCreators caps generated creator profiles.
	MaxSyntheticCreators = 10
)

var (
	syntheticNames = []string{
		"daily_minji", "seoul_foodie", "glow_jiwoo", "fit_hana", "travel_yuna",
		"cafe_hunter", "beauty_sora", "home_chef_kim", "style_dahye", "pet_lover_jun",
	}
	syntheticCategories = []string{"뷰티", "푸드", "패션", "라이프스타일", "여행", "피트니스"}
	syntheticStatuses   = []string{"진행중", "완료", "대기"}
)

// Generator produces synthetic fallback data.
type Generator struct {
	Rand Random
	Now  func() time.Time
}

func (g Generator) rand() Random {
	if g.Rand == nil {
		return DefaultRandom
	}
	return g.Rand
}

func (g Generator) today() time.Time {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Daily emits one point per day of the trailing window that falls inside
// [from, to]; empty bounds are open. When campaigns is non-nil, every
// metric of a day is scaled by the number of campaigns active that day,
// at least 1.
func (g Generator) Daily(from, to string, campaigns []models.Campaign) []models.DailyPoint {
	r := g.rand()
	today := g.today()
	out := make([]models.DailyPoint, 0, SyntheticWindowDays)

	for i := SyntheticWindowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(models.DayLayout)
		if from != "" && day < from {
			continue
		}
		if to != "" && day > to {
			continue
		}

		scale := int64(1)
		if campaigns != nil {
			var active int64
			for j := range campaigns {
				if campaigns[j].ActiveOn(day) {
					active++
				}
			}
			if active > scale {
				scale = active
			}
		}

		out = append(out, models.DailyPoint{
			Date:        day,
			Reach:       between(r, 2000, 5000) * scale,
			Impressions: between(r, 3000, 7500) * scale,
			Likes:       between(r, 50, 300) * scale,
			Comments:    between(r, 5, 50) * scale,
			Shares:      between(r, 1, 30) * scale,
			Mentions:    between(r, 1, 10) * scale,
			VideoPlays:  between(r, 500, 5000) * scale,
		})
	}
	return out
}

// Creators emits min(n, MaxSyntheticCreators) profiles sorted by likes,
// highest first. n <= 0 yields none.
func (g Generator) Creators(n int) []models.Creator {
	if n > MaxSyntheticCreators {
		n = MaxSyntheticCreators
	}
	if n < 0 {
		n = 0
	}
	r := g.rand()
	today := g.today()

	out := make([]models.Creator, 0, n)
	for i := 0; i < n; i++ {
		username := syntheticNames[i%len(syntheticNames)]
		c := models.Creator{
			Username:       username,
			Name:           username,
			Handle:         "@" + username,
			Category:       syntheticCategories[i%len(syntheticCategories)],
			Status:         syntheticStatuses[r.Intn(len(syntheticStatuses))],
			PostCount:      int(between(r, 1, 6)),
			Likes:          between(r, 100, 5000),
			Comments:       between(r, 10, 500),
			Shares:         between(r, 5, 200),
			VideoPlays:     between(r, 1000, 50000),
			LatestPostDate: today.AddDate(0, 0, -r.Intn(SyntheticWindowDays)).Format(models.DayLayout),
			Posts:          []models.Post{},
		}
		c.Reach = (c.Likes + c.Comments + c.Shares) * reachPerEngagement
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	return out
}
