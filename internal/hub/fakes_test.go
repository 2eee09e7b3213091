package hub

import (
	"context"
	"errors"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

var errUpstream = errors.New("upstream unavailable")

type fakeBrands struct {
	list []models.Brand
	err  error
}

func (f *fakeBrands) ListAll(context.Context) ([]models.Brand, error) {
	return f.list, f.err
}
func (f *fakeBrands) GetByID(_ context.Context, id string) (*models.Brand, error) {
	for i := range f.list {
		if f.list[i].ID == id {
			return &f.list[i], nil
		}
	}
	return nil, errUpstream
}
func (f *fakeBrands) Create(context.Context, models.BrandInput) (string, error) {
	return "b-new", f.err
}
func (f *fakeBrands) Update(context.Context, string, models.BrandInput) error {
	return f.err
}
func (f *fakeBrands) Archive(context.Context, string) error {
	return f.err
}

type fakeInfluencers struct {
	list []models.Influencer
	err  error
}

func (f *fakeInfluencers) ListAll(context.Context) ([]models.Influencer, error) {
	return f.list, f.err
}
func (f *fakeInfluencers) GetByID(context.Context, string) (*models.Influencer, error) {
	return nil, errUpstream
}
func (f *fakeInfluencers) Create(context.Context, models.InfluencerInput) (string, error) {
	return "", f.err
}
func (f *fakeInfluencers) Update(context.Context, string, models.InfluencerInput) error {
	return f.err
}
func (f *fakeInfluencers) Archive(context.Context, string) error {
	return f.err
}

type fakeCampaigns struct {
	list []models.Campaign
	err  error
}

func (f *fakeCampaigns) ListAll(context.Context) ([]models.Campaign, error) {
	return f.list, f.err
}
func (f *fakeCampaigns) GetByID(_ context.Context, id string) (*models.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.list {
		if f.list[i].ID == id {
			return &f.list[i], nil
		}
	}
	return nil, errUpstream
}
func (f *fakeCampaigns) Create(context.Context, models.CampaignInput) (string, error) {
	return "", f.err
}
func (f *fakeCampaigns) Update(context.Context, string, models.CampaignInput) error {
	return f.err
}
func (f *fakeCampaigns) Archive(context.Context, string) error {
	return f.err
}

type fakeDaily struct {
	records   []models.DailyRecord
	err       error
	lastLimit int
}

func (f *fakeDaily) List(_ context.Context, campaignID string, limit int) ([]models.DailyRecord, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.DailyRecord, 0, len(f.records))
	for _, r := range f.records {
		if campaignID == "" || r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMentions struct {
	records []models.MentionRecord
	err     error
}

func (f *fakeMentions) List(_ context.Context, campaignID string) ([]models.MentionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.MentionRecord, 0, len(f.records))
	for _, r := range f.records {
		if campaignID == "" || r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSchema struct {
	opts *models.Options
	err  error
}

func (f *fakeSchema) Options(context.Context) (*models.Options, error) {
	return f.opts, f.err
}
