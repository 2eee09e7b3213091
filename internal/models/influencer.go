package models

// Influencer is a creator profile.
type Influencer struct {
	ID           string   `json:"id"`
	Name         string   `json:"이름"`
	Phone        string   `json:"연락처"`
	Email        string   `json:"이메일"`
	Followers    int64    `json:"팔로워수"`
	Instagram    string   `json:"인스타그램"`
	Status       string   `json:"상태"`
	Tier         string   `json:"등급"`
	Categories   []string `json:"활동분야"`
	ContentTypes []string `json:"콘텐츠유형"`
	CreatorType  string   `json:"크리에이터유형"`
	Compensation []string `json:"희망보상"`
	Consent      bool     `json:"개인정보동의"`
	CreatedAt    string   `json:"생성일시"`
	Archived     bool     `json:"archived,omitempty"`
}

// InfluencerInput is a create or update request body. Tier, consent and
// creation time are maintained upstream and cannot be written.
type InfluencerInput struct {
	Name         Optional[string]   `json:"이름"`
	Phone        Optional[string]   `json:"연락처"`
	Email        Optional[string]   `json:"이메일"`
	Followers    LooseInt           `json:"팔로워수"`
	Instagram    Optional[string]   `json:"인스타그램"`
	Status       Optional[string]   `json:"상태"`
	Categories   Optional[[]string] `json:"활동분야"`
	ContentTypes Optional[[]string] `json:"콘텐츠유형"`
	CreatorType  Optional[string]   `json:"크리에이터유형"`
	Compensation Optional[[]string] `json:"희망보상"`
}
