package hub

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
}

func testGenerator() Generator {
	return Generator{Rand: rand.New(rand.NewSource(42)), Now: fixedNow}
}

func TestGeneratorDailyWindow(t *testing.T) {
	points := testGenerator().Daily("", "", nil)

	require.Len(t, points, SyntheticWindowDays)
	assert.Equal(t, "2024-03-04", points[0].Date)
	assert.Equal(t, "2024-03-10", points[6].Date)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Reach, int64(2000))
		assert.Less(t, p.Reach, int64(5000))
		assert.GreaterOrEqual(t, p.Likes, int64(50))
		assert.Less(t, p.Likes, int64(300))
		assert.GreaterOrEqual(t, p.Shares, int64(1))
		assert.Less(t, p.Shares, int64(30))
		assert.GreaterOrEqual(t, p.Mentions, int64(1))
		assert.Less(t, p.Mentions, int64(10))
	}
}

func TestGeneratorDailyBounds(t *testing.T) {
	g := testGenerator()

	points := g.Daily("2024-03-08", "", nil)
	require.Len(t, points, 3)
	assert.Equal(t, "2024-03-08", points[0].Date)

	points = g.Daily("2024-02-01", "2024-02-28", nil)
	assert.Empty(t, points)
}

func TestGeneratorDailyScalesByActiveCampaigns(t *testing.T) {
	campaigns := []models.Campaign{
		{ID: "a", StartDate: "2024-03-01", EndDate: "2024-03-31"},
		{ID: "b", StartDate: "2024-03-10"},
		{ID: "c", StartDate: "2024-01-01", EndDate: "2024-01-31"},
	}

	points := testGenerator().Daily("2024-03-10", "2024-03-10", campaigns)
	require.Len(t, points, 1)
	// Two campaigns run that day, so every metric is doubled.
	assert.GreaterOrEqual(t, points[0].Likes, int64(100))
	assert.Less(t, points[0].Likes, int64(600))
	assert.Zero(t, points[0].Likes%2)
}

func TestGeneratorCreators(t *testing.T) {
	g := testGenerator()

	assert.Empty(t, g.Creators(-1))
	assert.Len(t, g.Creators(3), 3)

	creators := g.Creators(50)
	require.Len(t, creators, MaxSyntheticCreators)
	for i, c := range creators {
		if i > 0 {
			assert.GreaterOrEqual(t, creators[i-1].Likes, c.Likes)
		}
		assert.Equal(t, "@"+c.Username, c.Handle)
		assert.GreaterOrEqual(t, c.PostCount, 1)
		assert.Less(t, c.PostCount, 6)
		assert.Equal(t, (c.Likes+c.Comments+c.Shares)*10, c.Reach)
		assert.NotNil(t, c.Posts)
		assert.Contains(t, syntheticStatuses, c.Status)
	}
}
