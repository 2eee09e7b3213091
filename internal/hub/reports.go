package hub

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/radiusdt/wellwave-hub/internal/metrics"
	"github.com/radiusdt/wellwave-hub/internal/models"
	"github.com/radiusdt/wellwave-hub/internal/storage"
)

const (
	// DefaultDailyDays is the window used when a request names none.
	DefaultDailyDays = 7
	// MaxDailyDays bounds the requested window.
	MaxDailyDays = 365
	// rowsPerDay over-fetches raw rows to allow several per day.
	rowsPerDay = 10
	// detailDays is the daily window of the campaign detail view.
	detailDays = 30
	// defaultSyntheticCreators applies when no count is known.
	defaultSyntheticCreators = 5
)

// DailyQuery selects a daily series. Empty fields are unfiltered.
type DailyQuery struct {
	CampaignID string
	From       string
	To         string
	Days       int
}

// DailyResult is a daily series with its provenance.
type DailyResult struct {
	Source  string              `json:"source"`
	Data    []models.DailyPoint `json:"data"`
	Summary models.DailySummary `json:"summary"`
}

// CreatorsResult is a creator list with its provenance.
type CreatorsResult struct {
	Source   string           `json:"source"`
	Creators []models.Creator `json:"creators"`
}

// DetailSources reports where each part of a campaign detail came from.
type DetailSources struct {
	Daily    string `json:"daily"`
	Creators string `json:"creators"`
}

// CampaignDetail is a campaign with its reporting data.
type CampaignDetail struct {
	Campaign  models.Campaign     `json:"campaign"`
	DailyData []models.DailyPoint `json:"dailyData"`
	Creators  []models.Creator    `json:"creators"`
	Sources   DetailSources       `json:"sources"`
}

// ReportService serves the reporting views. When a view has no real data
// it answers with synthetic data and marks the source accordingly.
type ReportService struct {
	campaigns storage.CampaignRepo
	daily     storage.DailyReportRepo
	mentions  storage.MentionRepo
	gen       Generator
	estimator ChangeEstimator
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// ClampDays applies the default and upper bound to a requested window.
func ClampDays(days, def int) int {
	if days <= 0 {
		return def
	}
	if days > MaxDailyDays {
		return MaxDailyDays
	}
	return days
}

// Daily returns the latest q.Days days of engagement within [q.From, q.To].
func (s *ReportService) Daily(ctx context.Context, q DailyQuery) (*DailyResult, error) {
	days := ClampDays(q.Days, DefaultDailyDays)
	from, to := models.DateOnly(q.From), models.DateOnly(q.To)

	records, err := s.daily.List(ctx, q.CampaignID, days*rowsPerDay)
	if err != nil {
		return nil, err
	}
	points := tail(filterDays(AggregateDaily(records, 0), from, to), days)

	res := &DailyResult{Source: models.SourceNotion, Data: points}
	if len(points) == 0 {
		campaigns, err := s.activeContext(ctx, q.CampaignID)
		if err != nil {
			return nil, err
		}
		res.Source = models.SourceSample
		res.Data = s.gen.Daily(from, to, campaigns)
		s.fallback("daily", zap.String("campaign_id", q.CampaignID))
	}
	res.Summary = Summarize(res.Data, s.estimator)
	return res, nil
}

// activeContext loads the campaigns that scale synthetic daily data.
func (s *ReportService) activeContext(ctx context.Context, campaignID string) ([]models.Campaign, error) {
	if campaignID == "" {
		return s.campaigns.ListAll(ctx)
	}
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return []models.Campaign{*c}, nil
}

// Creators returns creator summaries for a campaign, or for all mentions
// when campaignID is empty. limit sizes the synthetic fallback.
func (s *ReportService) Creators(ctx context.Context, campaignID string, limit int) (*CreatorsResult, error) {
	records, err := s.mentions.List(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	creators := AggregateMentions(records)
	if len(creators) > 0 {
		return &CreatorsResult{Source: models.SourceNotion, Creators: creators}, nil
	}
	if limit <= 0 {
		limit = defaultSyntheticCreators
	}
	s.fallback("creators", zap.String("campaign_id", campaignID))
	return &CreatorsResult{Source: models.SourceSample, Creators: s.gen.Creators(limit)}, nil
}

// CampaignDetail reads a campaign with its daily series and creators.
// The three reads run concurrently; any failure fails the call.
func (s *ReportService) CampaignDetail(ctx context.Context, id string) (*CampaignDetail, error) {
	var (
		campaign *models.Campaign
		records  []models.DailyRecord
		mentions []models.MentionRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		campaign, err = s.campaigns.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		records, err = s.daily.List(gctx, id, detailDays*rowsPerDay)
		return err
	})
	g.Go(func() (err error) {
		mentions, err = s.mentions.List(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("campaign detail %s: %w", id, err)
	}

	d := &CampaignDetail{
		Campaign:  *campaign,
		DailyData: AggregateDaily(records, detailDays),
		Creators:  AggregateMentions(mentions),
		Sources:   DetailSources{Daily: models.SourceNotion, Creators: models.SourceNotion},
	}
	if len(d.DailyData) == 0 {
		d.DailyData = s.gen.Daily(models.DateOnly(campaign.StartDate), models.DateOnly(campaign.EndDate), nil)
		d.Sources.Daily = models.SourceSample
		s.fallback("daily", zap.String("campaign_id", id))
	}
	if len(d.Creators) == 0 {
		n := int(campaign.TargetHeadcount)
		if n <= 0 {
			n = defaultSyntheticCreators
		}
		d.Creators = s.gen.Creators(n)
		d.Sources.Creators = models.SourceSample
		s.fallback("creators", zap.String("campaign_id", id))
	}
	return d, nil
}

func (s *ReportService) fallback(resource string, fields ...zap.Field) {
	s.logger.Debug("serving synthetic data", append(fields, zap.String("resource", resource))...)
	if s.metrics != nil {
		s.metrics.RecordFallback(resource)
	}
}

func tail(points []models.DailyPoint, n int) []models.DailyPoint {
	if n > 0 && len(points) > n {
		return points[len(points)-n:]
	}
	return points
}

// monthBounds returns the first and last day of a calendar month.
func monthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(models.DayLayout), last.Format(models.DayLayout)
}
