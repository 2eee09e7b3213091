package models

// Campaign is an influencer campaign. Participants, staff and the
// engagement totals are computed upstream and read-only.
type Campaign struct {
	ID                string   `json:"id"`
	Name              string   `json:"캠페인명"`
	Status            string   `json:"상태"`
	Type              string   `json:"캠페인유형"`
	Category          string   `json:"카테고리"`
	StartDate         string   `json:"시작일"`
	EndDate           string   `json:"종료일"`
	Budget            int64    `json:"예산"`
	TargetHeadcount   int64    `json:"목표인원"`
	Participants      int64    `json:"참여인원"`
	Limit             int64    `json:"리밋"`
	MentionID         string   `json:"맨션ID"`
	BrandAccount      string   `json:"브랜드계정"`
	AffiliateLink     string   `json:"제휴링크"`
	SponsoredProducts []string `json:"협찬제품"`
	Memo              string   `json:"메모"`
	Completed         bool     `json:"입력완료"`
	Staff             []string `json:"담당자"`
	TotalLikes        int64    `json:"총좋아요수"`
	TotalComments     int64    `json:"총댓글수"`
	TotalShares       int64    `json:"총공유수"`
	TotalMentions     int64    `json:"총맨션피드수"`
	TotalVideoPlays   int64    `json:"비디오총재생수"`
	TotalSales        int64    `json:"총판매수"`
	Archived          bool     `json:"archived,omitempty"`
}

// Engagement is likes + comments + shares.
func (c *Campaign) Engagement() int64 {
	return c.TotalLikes + c.TotalComments + c.TotalShares
}

// Overlaps reports whether the campaign runs at any point within
// [from, to]. Bounds are YYYY-MM-DD; an empty bound is open. A campaign
// without an end date is open-ended. One without a start date cannot
// start on or before an end bound, so it only passes when to is empty.
func (c *Campaign) Overlaps(from, to string) bool {
	start, end := DateOnly(c.StartDate), DateOnly(c.EndDate)
	if to != "" && (start == "" || start > to) {
		return false
	}
	if from != "" && end != "" && end < from {
		return false
	}
	return true
}

// ActiveOn reports whether the campaign runs on the given day.
func (c *Campaign) ActiveOn(day string) bool {
	return c.Overlaps(day, day)
}

// CampaignInput is a create or update request body.
type CampaignInput struct {
	Name              Optional[string]   `json:"캠페인명"`
	Status            Optional[string]   `json:"상태"`
	Type              Optional[string]   `json:"캠페인유형"`
	Category          Optional[string]   `json:"카테고리"`
	StartDate         Optional[string]   `json:"시작일"`
	EndDate           Optional[string]   `json:"종료일"`
	Budget            LooseInt           `json:"예산"`
	TargetHeadcount   LooseInt           `json:"목표인원"`
	Limit             LooseInt           `json:"리밋"`
	MentionID         Optional[string]   `json:"맨션ID"`
	BrandAccount      Optional[string]   `json:"브랜드계정"`
	AffiliateLink     Optional[string]   `json:"제휴링크"`
	SponsoredProducts Optional[[]string] `json:"협찬제품"`
	Memo              Optional[string]   `json:"메모"`
}
