package models

// Data sources reported in provenance markers.
const (
	SourceNotion = "notion"
	SourceSample = "sample"
)

// DailyRecord is one raw row of the daily report collection.
type DailyRecord struct {
	ID         string
	Date       string // YYYY-MM-DD, "" when no date could be extracted
	CampaignID string
	Likes      int64
	Comments   int64
	Shares     int64
	Mentions   int64
	VideoPlays int64
}

// DailyPoint is one day of the engagement time series. Reach and
// impressions are estimates derived from engagement.
type DailyPoint struct {
	Date        string `json:"date"`
	Reach       int64  `json:"reach"`
	Impressions int64  `json:"impressions"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Shares      int64  `json:"shares"`
	Mentions    int64  `json:"mentions"`
	VideoPlays  int64  `json:"videoPlays"`
}

// DailySummary totals a daily series.
type DailySummary struct {
	Days             int     `json:"days"`
	TotalReach       int64   `json:"totalReach"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalLikes       int64   `json:"totalLikes"`
	TotalComments    int64   `json:"totalComments"`
	TotalShares      int64   `json:"totalShares"`
	TotalMentions    int64   `json:"totalMentions"`
	TotalVideoPlays  int64   `json:"totalVideoPlays"`
	AvgReach         float64 `json:"avgReach"`
	AvgLikes         float64 `json:"avgLikes"`
	AvgComments      float64 `json:"avgComments"`
	// Changes holds week-over-week percentages. They are estimates, see
	// ChangesEstimated.
	Changes          map[string]float64 `json:"changes"`
	ChangesEstimated bool               `json:"changesEstimated"`
}

// MentionRecord is one social post that mentions a campaign.
type MentionRecord struct {
	ID           string
	Username     string
	FullName     string
	Likes        int64
	Comments     int64
	Shares       int64
	VideoPlays   int64
	PostDate     string
	URL          string
	ThumbnailURL string
	CampaignID   string
}

// Post is a retained post on a creator summary.
type Post struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Date         string `json:"date"`
	Likes        int64  `json:"likes"`
	Comments     int64  `json:"comments"`
	Shares       int64  `json:"shares"`
	VideoPlays   int64  `json:"videoPlays"`
}

// Creator summarizes every mention by one creator.
type Creator struct {
	Username       string `json:"username"`
	Name           string `json:"name"`
	Handle         string `json:"handle"`
	Category       string `json:"category"`
	Status         string `json:"status"`
	PostCount      int    `json:"postCount"`
	Likes          int64  `json:"likes"`
	Comments       int64  `json:"comments"`
	Shares         int64  `json:"shares"`
	VideoPlays     int64  `json:"videoPlays"`
	Reach          int64  `json:"reach"`
	LatestPostDate string `json:"latestPostDate"`
	Posts          []Post `json:"posts"`
}

// Option is an allowed value of a select-like field.
type Option struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Options lists the allowed values per entity and field.
type Options struct {
	Brands      map[string][]Option `json:"brands"`
	Influencers map[string][]Option `json:"influencers"`
	Campaigns   map[string][]Option `json:"campaigns"`
}
