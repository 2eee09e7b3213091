package storage

import (
	"github.com/radiusdt/wellwave-hub/internal/models"
	"github.com/radiusdt/wellwave-hub/internal/notion"
)

// Create payloads write the title unconditionally and every other field
// only when it carries a value. Update payloads write what the request
// named: cleared scalars become null, tag lists replace the stored set,
// and status/select fields are only ever set, never cleared.

type propWriter struct {
	props notion.Properties
}

func newPropWriter() *propWriter {
	return &propWriter{props: notion.Properties{}}
}

func (w *propWriter) set(name string, v any) {
	w.props[name] = v
}

// nonEmpty writes when s is non-empty.
func (w *propWriter) nonEmpty(name, s string, build func(string) any) {
	if s != "" {
		w.props[name] = build(s)
	}
}

// present writes when the field was in the request, empty included.
func (w *propWriter) present(name string, o models.Optional[string], build func(string) any) {
	if o.Set {
		w.props[name] = build(o.Value)
	}
}

// presentNonEmpty writes when the field was in the request with a value.
func (w *propWriter) presentNonEmpty(name string, o models.Optional[string], build func(string) any) {
	if o.Set && o.Value != "" {
		w.props[name] = build(o.Value)
	}
}

func (w *propWriter) tagsIfAny(name string, o models.Optional[[]string]) {
	if o.Set && len(o.Value) > 0 {
		w.props[name] = notion.MultiSelectValue(o.Value)
	}
}

func (w *propWriter) tagsReplace(name string, o models.Optional[[]string]) {
	if o.Set {
		w.props[name] = notion.MultiSelectValue(o.Value)
	}
}

// numberIfValid writes a parsed number; unparseable input is dropped.
func (w *propWriter) numberIfValid(name string, n models.LooseInt) {
	if n.Set && n.Valid {
		w.props[name] = notion.NumberValue(n.Ptr())
	}
}

// numberOrNull writes a parsed number, or null when the input was empty
// or not a number.
func (w *propWriter) numberOrNull(name string, n models.LooseInt) {
	if n.Set {
		w.props[name] = notion.NumberValue(n.Ptr())
	}
}

// =============================================
// Brands
// =============================================

func brandCreateProps(in models.BrandInput) notion.Properties {
	w := newPropWriter()
	w.set(propBrandName, notion.TitleValue(in.Name.Value))
	w.nonEmpty(propStatus, in.Status.Value, notion.StatusValue)
	w.nonEmpty(propEmail, in.Email.Value, notion.EmailValueOf)
	w.nonEmpty(propBrandPhone, in.Phone.Value, notion.PhoneValueOf)
	w.nonEmpty(propBrandIndustry, in.Industry.Value, notion.SelectValue)
	w.nonEmpty(propBrandChannel, in.Channel.Value, notion.SelectValue)
	w.nonEmpty(propBrandContact, in.Contact.Value, notion.RichTextValue)
	w.nonEmpty(propBrandAccount, in.Account.Value, notion.RichTextValue)
	return w.props
}

func brandUpdateProps(in models.BrandInput) notion.Properties {
	w := newPropWriter()
	w.present(propBrandName, in.Name, notion.TitleValue)
	w.presentNonEmpty(propStatus, in.Status, notion.StatusValue)
	w.present(propEmail, in.Email, notion.EmailValueOf)
	w.present(propBrandPhone, in.Phone, notion.PhoneValueOf)
	w.presentNonEmpty(propBrandIndustry, in.Industry, notion.SelectValue)
	w.presentNonEmpty(propBrandChannel, in.Channel, notion.SelectValue)
	w.present(propBrandContact, in.Contact, notion.RichTextValue)
	w.present(propBrandAccount, in.Account, notion.RichTextValue)
	return w.props
}

// =============================================
// Influencers
// =============================================

func influencerCreateProps(in models.InfluencerInput) notion.Properties {
	w := newPropWriter()
	w.set(propInfluencerName, notion.TitleValue(in.Name.Value))
	w.nonEmpty(propInfluencerPhone, in.Phone.Value, notion.PhoneValueOf)
	w.nonEmpty(propEmail, in.Email.Value, notion.EmailValueOf)
	w.numberIfValid(propFollowers, in.Followers)
	w.nonEmpty(propInstagram, in.Instagram.Value, notion.RichTextValue)
	w.nonEmpty(propStatus, in.Status.Value, notion.StatusValue)
	w.tagsIfAny(propCategories, in.Categories)
	w.tagsIfAny(propContentTypes, in.ContentTypes)
	w.nonEmpty(propCreatorType, in.CreatorType.Value, notion.SelectValue)
	w.tagsIfAny(propCompensation, in.Compensation)
	return w.props
}

func influencerUpdateProps(in models.InfluencerInput) notion.Properties {
	w := newPropWriter()
	w.present(propInfluencerName, in.Name, notion.TitleValue)
	w.present(propInfluencerPhone, in.Phone, notion.PhoneValueOf)
	w.present(propEmail, in.Email, notion.EmailValueOf)
	w.numberOrNull(propFollowers, in.Followers)
	w.present(propInstagram, in.Instagram, notion.RichTextValue)
	w.presentNonEmpty(propStatus, in.Status, notion.StatusValue)
	w.tagsReplace(propCategories, in.Categories)
	w.tagsReplace(propContentTypes, in.ContentTypes)
	w.presentNonEmpty(propCreatorType, in.CreatorType, notion.SelectValue)
	w.tagsReplace(propCompensation, in.Compensation)
	return w.props
}

// =============================================
// Campaigns
// =============================================

func campaignCreateProps(in models.CampaignInput) notion.Properties {
	w := newPropWriter()
	w.set(propCampaignName, notion.TitleValue(in.Name.Value))
	w.nonEmpty(propStatus, in.Status.Value, notion.StatusValue)
	w.nonEmpty(propCampaignType, in.Type.Value, notion.SelectValue)
	w.nonEmpty(propCampaignCategory, in.Category.Value, notion.SelectValue)
	w.nonEmpty(propStartDate, in.StartDate.Value, notion.DateValueOf)
	w.nonEmpty(propEndDate, in.EndDate.Value, notion.DateValueOf)
	w.numberIfValid(propBudget, in.Budget)
	w.numberIfValid(propTargetHeadcount, in.TargetHeadcount)
	w.numberIfValid(propLimit, in.Limit)
	w.nonEmpty(propMentionID, in.MentionID.Value, notion.RichTextValue)
	w.nonEmpty(propBrandAccountURL, in.BrandAccount.Value, notion.URLValueOf)
	w.nonEmpty(propAffiliateLink, in.AffiliateLink.Value, notion.URLValueOf)
	w.tagsIfAny(propSponsoredProducts, in.SponsoredProducts)
	w.nonEmpty(propMemo, in.Memo.Value, notion.RichTextValue)
	return w.props
}

func campaignUpdateProps(in models.CampaignInput) notion.Properties {
	w := newPropWriter()
	w.present(propCampaignName, in.Name, notion.TitleValue)
	w.presentNonEmpty(propStatus, in.Status, notion.StatusValue)
	w.presentNonEmpty(propCampaignType, in.Type, notion.SelectValue)
	w.presentNonEmpty(propCampaignCategory, in.Category, notion.SelectValue)
	w.present(propStartDate, in.StartDate, notion.DateValueOf)
	w.present(propEndDate, in.EndDate, notion.DateValueOf)
	w.numberOrNull(propBudget, in.Budget)
	w.numberOrNull(propTargetHeadcount, in.TargetHeadcount)
	w.numberOrNull(propLimit, in.Limit)
	w.present(propMentionID, in.MentionID, notion.RichTextValue)
	w.present(propBrandAccountURL, in.BrandAccount, notion.URLValueOf)
	w.present(propAffiliateLink, in.AffiliateLink, notion.URLValueOf)
	w.tagsReplace(propSponsoredProducts, in.SponsoredProducts)
	w.present(propMemo, in.Memo, notion.RichTextValue)
	return w.props
}
