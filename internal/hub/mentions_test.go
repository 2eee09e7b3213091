package hub

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

func TestAggregateMentionsKeepsFirstPosts(t *testing.T) {
	records := make([]models.MentionRecord, 0, 7)
	for i := 0; i < 6; i++ {
		records = append(records, models.MentionRecord{
			Username: "alice",
			PostDate: fmt.Sprintf("2024-01-%02d", 10-i),
			URL:      fmt.Sprintf("https://instagram.com/p/%d", i),
			Likes:    10,
			Comments: 1,
		})
	}
	records = append(records, models.MentionRecord{Username: "", Likes: 999})

	creators := AggregateMentions(records)
	require.Len(t, creators, 1)

	alice := creators[0]
	assert.Equal(t, "alice", alice.Name, "name falls back to the username")
	assert.Equal(t, "@alice", alice.Handle)
	assert.Equal(t, 6, alice.PostCount)
	assert.Equal(t, int64(60), alice.Likes)
	assert.Equal(t, int64(660), alice.Reach)
	assert.Equal(t, "2024-01-10", alice.LatestPostDate)
	require.Len(t, alice.Posts, MaxPostsPerCreator)
	for i, p := range alice.Posts {
		assert.Equal(t, fmt.Sprintf("https://instagram.com/p/%d", i), p.URL)
	}
}

func TestAggregateMentionsSortsByLikes(t *testing.T) {
	creators := AggregateMentions([]models.MentionRecord{
		{Username: "low", FullName: "Low", Likes: 1},
		{Username: "high", FullName: "High", Likes: 50},
		{Username: "tie", Likes: 1},
	})

	require.Len(t, creators, 3)
	assert.Equal(t, []string{"high", "low", "tie"}, []string{creators[0].Username, creators[1].Username, creators[2].Username})
	assert.Equal(t, "High", creators[0].Name)
}

func TestAggregateMentionsEmpty(t *testing.T) {
	creators := AggregateMentions(nil)
	assert.NotNil(t, creators)
	assert.Empty(t, creators)
}
