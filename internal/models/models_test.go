package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseInt(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  int64
	}{
		{`42`, true, 42},
		{`42.9`, true, 42},
		{`"  17명"`, true, 17},
		{`"-3"`, true, -3},
		{`"12,000"`, true, 12},
		{`"abc"`, false, 0},
		{`""`, false, 0},
		{`null`, false, 0},
		{`true`, false, 0},
		{`1e30`, false, 0},
		{`-1e30`, false, 0},
		{`9.3e18`, false, 0},
		{`9e18`, true, 9000000000000000000},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var n LooseInt
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.True(t, n.Set)
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.want, n.Value)
			if tt.valid {
				require.NotNil(t, n.Ptr())
				assert.Equal(t, tt.want, *n.Ptr())
			} else {
				assert.Nil(t, n.Ptr())
			}
		})
	}
}

func TestOptionalTracksPresence(t *testing.T) {
	var in BrandInput
	require.NoError(t, json.Unmarshal([]byte(`{"브랜드명":"웰웨이브","이메일":null,"전화번호":""}`), &in))

	assert.Equal(t, Some("웰웨이브"), in.Name)
	assert.True(t, in.Email.Set)
	assert.Equal(t, "", in.Email.Value)
	assert.True(t, in.Phone.Set)
	assert.False(t, in.Status.Set)
}

func TestOptionalSliceAndInvalidType(t *testing.T) {
	var in InfluencerInput
	require.NoError(t, json.Unmarshal([]byte(`{"활동분야":["뷰티","패션"],"콘텐츠유형":null}`), &in))
	assert.Equal(t, []string{"뷰티", "패션"}, in.Categories.Value)
	assert.True(t, in.ContentTypes.Set)
	assert.Nil(t, in.ContentTypes.Value)

	assert.Error(t, json.Unmarshal([]byte(`{"이름":123}`), &in))
}

func TestCampaignOverlaps(t *testing.T) {
	c := Campaign{StartDate: "2024-01-10", EndDate: "2024-01-20T09:00:00.000+09:00"}

	assert.True(t, c.Overlaps("2024-01-15", "2024-01-25"))
	assert.True(t, c.Overlaps("2024-01-20", "2024-01-20"), "bounds are inclusive")
	assert.True(t, c.Overlaps("", ""))
	assert.False(t, c.Overlaps("2024-02-01", "2024-02-10"))
	assert.False(t, c.Overlaps("", "2024-01-09"))

	open := Campaign{StartDate: "2024-01-10"}
	assert.True(t, open.Overlaps("2030-01-01", "2030-12-31"))

	undated := Campaign{EndDate: "2024-01-20"}
	assert.False(t, undated.Overlaps("", "2024-01-31"), "no start date cannot meet an end bound")
	assert.True(t, undated.Overlaps("2024-01-15", ""))
	assert.False(t, undated.Overlaps("2024-01-21", ""))
	assert.True(t, undated.Overlaps("", ""))
	assert.False(t, undated.ActiveOn("2024-01-15"))
	assert.True(t, open.ActiveOn("2024-01-10"))
	assert.False(t, open.ActiveOn("2024-01-09"))

	assert.False(t, (&Campaign{}).Overlaps("2024-01-01", "2024-01-31"))
	assert.True(t, (&Campaign{}).Overlaps("2024-01-01", ""))
}

func TestParseDay(t *testing.T) {
	for raw, want := range map[string]string{
		"2024-03-05":               "2024-03-05",
		"2024-03-05T23:59:00.000Z": "2024-03-05",
		"2024/03/05":               "2024-03-05",
		"2024.03.05":               "2024-03-05",
		"2024. 3. 5.":              "2024-03-05",
		" 2024. 3. 5 ":             "2024-03-05",
	} {
		got, ok := ParseDay(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "   ", "March 5", "05/03/2024"} {
		_, ok := ParseDay(raw)
		assert.False(t, ok, raw)
	}
}

func TestCampaignEngagement(t *testing.T) {
	c := Campaign{TotalLikes: 10, TotalComments: 3, TotalShares: 2, TotalMentions: 100}
	assert.Equal(t, int64(15), c.Engagement())
}
