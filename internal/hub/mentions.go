package hub

import (
	"sort"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

// MaxPostsPerCreator is how many posts a creator summary retains.
const MaxPostsPerCreator = 5

// AggregateMentions groups posts by username. Input is expected latest
// first: each creator keeps its first MaxPostsPerCreator posts in input
// order and takes its latest post date from its first post. The result
// is sorted by total likes, highest first.
func AggregateMentions(records []models.MentionRecord) []models.Creator {
	byUser := make(map[string]*models.Creator)
	order := make([]string, 0)

	for _, r := range records {
		if r.Username == "" {
			continue
		}
		c, ok := byUser[r.Username]
		if !ok {
			name := r.FullName
			if name == "" {
				name = r.Username
			}
			c = &models.Creator{
				Username:       r.Username,
				Name:           name,
				Handle:         "@" + r.Username,
				LatestPostDate: r.PostDate,
				Posts:          []models.Post{},
			}
			byUser[r.Username] = c
			order = append(order, r.Username)
		}
		c.PostCount++
		c.Likes += r.Likes
		c.Comments += r.Comments
		c.Shares += r.Shares
		c.VideoPlays += r.VideoPlays
		if len(c.Posts) < MaxPostsPerCreator {
			c.Posts = append(c.Posts, models.Post{
				URL:          r.URL,
				ThumbnailURL: r.ThumbnailURL,
				Date:         r.PostDate,
				Likes:        r.Likes,
				Comments:     r.Comments,
				Shares:       r.Shares,
				VideoPlays:   r.VideoPlays,
			})
		}
	}

	out := make([]models.Creator, 0, len(order))
	for _, u := range order {
		c := byUser[u]
		c.Reach = (c.Likes + c.Comments + c.Shares) * reachPerEngagement
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	return out
}
