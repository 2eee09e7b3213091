package hub

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

func newReportService(t *testing.T, campaigns *fakeCampaigns, daily *fakeDaily, mentions *fakeMentions) *ReportService {
	t.Helper()
	return NewServices(Deps{
		Campaigns:    campaigns,
		DailyReports: daily,
		Mentions:     mentions,
		Logger:       zaptest.NewLogger(t),
		Rand:         rand.New(rand.NewSource(7)),
		Estimator:    fixedEstimator(1.5),
		Now:          fixedNow,
	}).Reports
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 7, ClampDays(0, 7))
	assert.Equal(t, 30, ClampDays(-3, 30))
	assert.Equal(t, 14, ClampDays(14, 7))
	assert.Equal(t, MaxDailyDays, ClampDays(10000, 7))
}

func TestDailyFromRecords(t *testing.T) {
	daily := &fakeDaily{records: []models.DailyRecord{
		{Date: "2024-03-01", CampaignID: "c1", Likes: 3},
		{Date: "2024-03-01", CampaignID: "c1", Likes: 5},
		{Date: "2024-03-02", CampaignID: "c2", Likes: 7},
	}}
	svc := newReportService(t, &fakeCampaigns{}, daily, &fakeMentions{})

	res, err := svc.Daily(context.Background(), DailyQuery{CampaignID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, models.SourceNotion, res.Source)
	require.Len(t, res.Data, 1)
	assert.Equal(t, int64(8), res.Data[0].Likes)
	assert.Equal(t, int64(8), res.Summary.TotalLikes)
	assert.Equal(t, DefaultDailyDays*rowsPerDay, daily.lastLimit)
}

func TestDailyAppliesRangeAndWindow(t *testing.T) {
	records := make([]models.DailyRecord, 0, 10)
	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"} {
		records = append(records, models.DailyRecord{Date: d, Likes: 1})
	}
	svc := newReportService(t, &fakeCampaigns{}, &fakeDaily{records: records}, &fakeMentions{})

	res, err := svc.Daily(context.Background(), DailyQuery{From: "2024-03-02", To: "2024-03-04T23:00:00Z", Days: 2})
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "2024-03-03", res.Data[0].Date)
	assert.Equal(t, "2024-03-04", res.Data[1].Date)
}

func TestDailyFallsBackToSample(t *testing.T) {
	campaigns := &fakeCampaigns{list: []models.Campaign{{ID: "c1", StartDate: "2024-03-01"}}}
	svc := newReportService(t, campaigns, &fakeDaily{}, &fakeMentions{})

	res, err := svc.Daily(context.Background(), DailyQuery{})
	require.NoError(t, err)
	assert.Equal(t, models.SourceSample, res.Source)
	assert.Len(t, res.Data, SyntheticWindowDays)
	assert.Equal(t, SyntheticWindowDays, res.Summary.Days)
	assert.True(t, res.Summary.ChangesEstimated)
}

func TestDailyPropagatesErrors(t *testing.T) {
	svc := newReportService(t, &fakeCampaigns{}, &fakeDaily{err: errUpstream}, &fakeMentions{})
	_, err := svc.Daily(context.Background(), DailyQuery{})
	assert.ErrorIs(t, err, errUpstream)

	svc = newReportService(t, &fakeCampaigns{err: errUpstream}, &fakeDaily{}, &fakeMentions{})
	_, err = svc.Daily(context.Background(), DailyQuery{CampaignID: "c1"})
	assert.ErrorIs(t, err, errUpstream, "fallback context read fails the call")
}

func TestCreatorsProvenance(t *testing.T) {
	mentions := &fakeMentions{records: []models.MentionRecord{
		{Username: "alice", CampaignID: "c1", Likes: 4},
	}}
	svc := newReportService(t, &fakeCampaigns{}, &fakeDaily{}, mentions)

	res, err := svc.Creators(context.Background(), "c1", 0)
	require.NoError(t, err)
	assert.Equal(t, models.SourceNotion, res.Source)
	require.Len(t, res.Creators, 1)
	assert.Equal(t, "alice", res.Creators[0].Username)

	res, err = svc.Creators(context.Background(), "c2", 0)
	require.NoError(t, err)
	assert.Equal(t, models.SourceSample, res.Source)
	assert.Len(t, res.Creators, defaultSyntheticCreators)

	res, err = svc.Creators(context.Background(), "c2", 3)
	require.NoError(t, err)
	assert.Len(t, res.Creators, 3)
}

func TestCampaignDetail(t *testing.T) {
	campaigns := &fakeCampaigns{list: []models.Campaign{
		{ID: "c1", Name: "봄", StartDate: "2024-03-01", EndDate: "2024-03-31", TargetHeadcount: 3},
		{ID: "c2", Name: "여름"},
	}}
	daily := &fakeDaily{records: []models.DailyRecord{{Date: "2024-03-02", CampaignID: "c2", Likes: 9}}}
	mentions := &fakeMentions{records: []models.MentionRecord{{Username: "bob", CampaignID: "c2"}}}
	svc := newReportService(t, campaigns, daily, mentions)

	d, err := svc.CampaignDetail(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "봄", d.Campaign.Name)
	assert.Equal(t, DetailSources{Daily: models.SourceSample, Creators: models.SourceSample}, d.Sources)
	assert.Len(t, d.DailyData, SyntheticWindowDays, "the synthetic window lies inside the campaign dates")
	assert.Len(t, d.Creators, 3)

	d, err = svc.CampaignDetail(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, DetailSources{Daily: models.SourceNotion, Creators: models.SourceNotion}, d.Sources)
	require.Len(t, d.DailyData, 1)
	assert.Equal(t, int64(9), d.DailyData[0].Likes)
	assert.Equal(t, detailDays*rowsPerDay, daily.lastLimit)
}

func TestCampaignDetailFailsWhenAnyReadFails(t *testing.T) {
	campaigns := &fakeCampaigns{list: []models.Campaign{{ID: "c1"}}}
	svc := newReportService(t, campaigns, &fakeDaily{}, &fakeMentions{err: errUpstream})

	_, err := svc.CampaignDetail(context.Background(), "c1")
	assert.ErrorIs(t, err, errUpstream)
}
