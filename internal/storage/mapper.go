package storage

import (
	"math"

	"github.com/radiusdt/wellwave-hub/internal/models"
	"github.com/radiusdt/wellwave-hub/internal/notion"
)

// The mappers below are total: any property may be missing or of an
// unexpected kind, and the result still carries every field with its
// zero value. Tag and list fields are never nil.

// MapBrand converts a brand page.
func MapBrand(p *notion.Page) models.Brand {
	return models.Brand{
		ID:        pageID(p),
		Name:      p.Prop(propBrandName).Text(),
		Status:    p.Prop(propStatus).StatusName(),
		Email:     p.Prop(propEmail).EmailValue(),
		Phone:     p.Prop(propBrandPhone).PhoneValue(),
		Industry:  p.Prop(propBrandIndustry).SelectName(),
		Channel:   p.Prop(propBrandChannel).SelectName(),
		Contact:   p.Prop(propBrandContact).Text(),
		Account:   p.Prop(propBrandAccount).Text(),
		Completed: p.Prop(propCompleted).Bool(),
		Archived:  pageArchived(p),
	}
}

// MapInfluencer converts an influencer page.
func MapInfluencer(p *notion.Page) models.Influencer {
	return models.Influencer{
		ID:           pageID(p),
		Name:         p.Prop(propInfluencerName).Text(),
		Phone:        p.Prop(propInfluencerPhone).PhoneValue(),
		Email:        p.Prop(propEmail).EmailValue(),
		Followers:    toInt(p.Prop(propFollowers).Num()),
		Instagram:    p.Prop(propInstagram).Text(),
		Status:       p.Prop(propStatus).StatusName(),
		Tier:         p.Prop(propTier).FormulaString(),
		Categories:   p.Prop(propCategories).Names(),
		ContentTypes: p.Prop(propContentTypes).Names(),
		CreatorType:  p.Prop(propCreatorType).SelectName(),
		Compensation: p.Prop(propCompensation).Names(),
		Consent:      p.Prop(propConsent).Bool(),
		CreatedAt:    p.Prop(propInfluencerCreated).CreatedTimeValue(),
		Archived:     pageArchived(p),
	}
}

// MapCampaign converts a campaign page.
func MapCampaign(p *notion.Page) models.Campaign {
	return models.Campaign{
		ID:                pageID(p),
		Name:              p.Prop(propCampaignName).Text(),
		Status:            p.Prop(propStatus).StatusName(),
		Type:              p.Prop(propCampaignType).SelectName(),
		Category:          p.Prop(propCampaignCategory).SelectName(),
		StartDate:         p.Prop(propStartDate).DateStart(),
		EndDate:           p.Prop(propEndDate).DateStart(),
		Budget:            toInt(p.Prop(propBudget).Num()),
		TargetHeadcount:   toInt(p.Prop(propTargetHeadcount).Num()),
		Participants:      toInt(p.Prop(propParticipants).RollupNumber()),
		Limit:             toInt(p.Prop(propLimit).Num()),
		MentionID:         p.Prop(propMentionID).Text(),
		BrandAccount:      p.Prop(propBrandAccountURL).URLValue(),
		AffiliateLink:     p.Prop(propAffiliateLink).URLValue(),
		SponsoredProducts: p.Prop(propSponsoredProducts).Names(),
		Memo:              p.Prop(propMemo).Text(),
		Completed:         p.Prop(propCompleted).Bool(),
		Staff:             p.Prop(propStaff).PeopleNames(),
		TotalLikes:        toInt(p.Prop(propTotalLikes).FormulaNumber()),
		TotalComments:     toInt(p.Prop(propTotalComments).FormulaNumber()),
		TotalShares:       toInt(p.Prop(propTotalShares).FormulaNumber()),
		TotalMentions:     toInt(p.Prop(propTotalMentions).FormulaNumber()),
		TotalVideoPlays:   toInt(p.Prop(propTotalVideoPlays).FormulaNumber()),
		TotalSales:        toInt(p.Prop(propTotalSales).Num()),
		Archived:          pageArchived(p),
	}
}

// MapDailyRecord converts a daily report row. The date comes from the
// date property, falling back to the text formula; Date is "" when
// neither yields a calendar day.
func MapDailyRecord(p *notion.Page) models.DailyRecord {
	rec := models.DailyRecord{
		ID:         pageID(p),
		CampaignID: firstOf(p.Prop(propCampaign).RelationIDs()),
		Likes:      toInt(p.Prop(propReportLikes).NumberValue()),
		Comments:   toInt(p.Prop(propReportComments).NumberValue()),
		Shares:     toInt(p.Prop(propReportShares).NumberValue()),
		Mentions:   toInt(p.Prop(propReportMentions).NumberValue()),
		VideoPlays: toInt(p.Prop(propReportVideoPlays).NumberValue()),
	}
	for _, raw := range []string{
		p.Prop(propReportDate).AnyDate(),
		p.Prop(propReportDateText).AnyDate(),
		p.Prop(propReportDateText).Text(),
	} {
		if day, ok := models.ParseDay(raw); ok {
			rec.Date = day
			break
		}
	}
	return rec
}

// MapMention converts a social post row.
func MapMention(p *notion.Page) models.MentionRecord {
	return models.MentionRecord{
		ID:           pageID(p),
		Username:     p.Prop(propMentionUsername).Text(),
		FullName:     p.Prop(propMentionFullName).Text(),
		Likes:        toInt(p.Prop(propMentionLikes).NumberValue()),
		Comments:     toInt(p.Prop(propMentionComments).NumberValue()),
		Shares:       toInt(p.Prop(propMentionShares).NumberValue()),
		VideoPlays:   toInt(p.Prop(propMentionPlays).NumberValue()),
		PostDate:     p.Prop(propMentionPostDate).AnyDate(),
		URL:          p.Prop(propMentionURL).URLValue(),
		ThumbnailURL: p.Prop(propMentionThumbnail).URLValue(),
		CampaignID:   firstOf(p.Prop(propCampaign).RelationIDs()),
	}
}

func pageID(p *notion.Page) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func pageArchived(p *notion.Page) bool {
	return p != nil && p.Archived
}

func firstOf(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func toInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f))
}
