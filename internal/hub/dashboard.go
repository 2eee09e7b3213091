package hub

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/radiusdt/wellwave-hub/internal/models"
	"github.com/radiusdt/wellwave-hub/internal/storage"
)

// UnspecifiedBucket groups records without a status, type or category.
const UnspecifiedBucket = "미정"

// DashboardFilter narrows the campaign part of the dashboard. Empty
// fields are unfiltered.
type DashboardFilter struct {
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	BrandID    string `json:"brandId,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
}

type BrandStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	List     []BrandSummary `json:"list"`
}

type BrandSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type InfluencerStats struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"byStatus"`
	ByCategory     map[string]int `json:"byCategory"`
	TotalFollowers int64          `json:"totalFollowers"`
}

type CampaignStats struct {
	Total             int               `json:"total"`
	ByStatus          map[string]int    `json:"byStatus"`
	ByType            map[string]int    `json:"byType"`
	ByCategory        map[string]int    `json:"byCategory"`
	TotalBudget       int64             `json:"totalBudget"`
	TotalParticipants int64             `json:"totalParticipants"`
	TotalLikes        int64             `json:"totalLikes"`
	TotalComments     int64             `json:"totalComments"`
	TotalShares       int64             `json:"totalShares"`
	TotalMentions     int64             `json:"totalMentions"`
	TotalVideoPlays   int64             `json:"totalVideoPlays"`
	List              []CampaignSummary `json:"list"`
}

// CampaignSummary is the listing row of a campaign.
type CampaignSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Budget       int64  `json:"budget"`
	Participants int64  `json:"participants"`
	Likes        int64  `json:"likes"`
	Comments     int64  `json:"comments"`
	Shares       int64  `json:"shares"`
	Mentions     int64  `json:"mentions"`
}

// Dashboard is the overview of every collection.
type Dashboard struct {
	Brands      BrandStats      `json:"brands"`
	Influencers InfluencerStats `json:"influencers"`
	Campaigns   CampaignStats   `json:"campaigns"`
	Filters     DashboardFilter `json:"filters"`
}

// BrandPerformance ranks a brand by the engagement of its matched campaigns.
type BrandPerformance struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	CampaignCount int      `json:"campaignCount"`
	CampaignIDs   []string `json:"campaignIds"`
	Likes         int64    `json:"likes"`
	Comments      int64    `json:"comments"`
	Shares        int64    `json:"shares"`
	Mentions      int64    `json:"mentions"`
	VideoPlays    int64    `json:"videoPlays"`
	Participants  int64    `json:"participants"`
	Engagement    int64    `json:"engagement"`
}

// MonthlyTotals sums the campaigns running in a month.
type MonthlyTotals struct {
	Likes        int64 `json:"likes"`
	Comments     int64 `json:"comments"`
	Shares       int64 `json:"shares"`
	Mentions     int64 `json:"mentions"`
	VideoPlays   int64 `json:"videoPlays"`
	Participants int64 `json:"participants"`
	Budget       int64 `json:"budget"`
	Engagement   int64 `json:"engagement"`
}

// MonthlyComparison holds changes against the previous month. No
// previous-month figures are read; Changes are estimates.
type MonthlyComparison struct {
	Year      int                `json:"year"`
	Month     int                `json:"month"`
	Changes   map[string]float64 `json:"changes"`
	Estimated bool               `json:"estimated"`
}

// MonthlyReport covers the campaigns overlapping one calendar month.
type MonthlyReport struct {
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	CampaignCount int               `json:"campaignCount"`
	Totals        MonthlyTotals     `json:"totals"`
	Campaigns     []CampaignSummary `json:"campaigns"`
	Previous      MonthlyComparison `json:"comparison"`
}

// DashboardService composes overview statistics across collections.
type DashboardService struct {
	brands      storage.BrandRepo
	influencers storage.InfluencerRepo
	campaigns   storage.CampaignRepo
	schema      storage.SchemaRepo
	estimator   ChangeEstimator
	now         func() time.Time
}

// Dashboard reads brands, influencers and campaigns concurrently and
// summarizes them. Filters apply to campaigns only.
func (s *DashboardService) Dashboard(ctx context.Context, f DashboardFilter) (*Dashboard, error) {
	var (
		brands      []models.Brand
		influencers []models.Influencer
		campaigns   []models.Campaign
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		brands, err = s.brands.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		influencers, err = s.influencers.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		campaigns, err = s.campaigns.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &Dashboard{
		Brands:      brandStats(brands),
		Influencers: influencerStats(influencers),
		Campaigns:   campaignStats(FilterCampaigns(campaigns, brands, f)),
		Filters:     f,
	}, nil
}

// FilterCampaigns applies the date range, campaign id and brand filters.
// A brand id that names no known brand selects no campaigns.
func FilterCampaigns(campaigns []models.Campaign, brands []models.Brand, f DashboardFilter) []models.Campaign {
	from, to := models.DateOnly(f.StartDate), models.DateOnly(f.EndDate)
	brandName, brandKnown := "", false
	if f.BrandID != "" {
		for i := range brands {
			if brands[i].ID == f.BrandID {
				brandName, brandKnown = brands[i].Name, true
				break
			}
		}
	}

	out := make([]models.Campaign, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		if !c.Overlaps(from, to) {
			continue
		}
		if f.CampaignID != "" && c.ID != f.CampaignID {
			continue
		}
		if f.BrandID != "" && (!brandKnown || !CampaignMatchesBrand(c, brandName)) {
			continue
		}
		out = append(out, *c)
	}
	return out
}

func bucket(v string) string {
	if v == "" {
		return UnspecifiedBucket
	}
	return v
}

func brandStats(brands []models.Brand) BrandStats {
	st := BrandStats{
		Total:    len(brands),
		ByStatus: map[string]int{},
		List:     make([]BrandSummary, 0, len(brands)),
	}
	for _, b := range brands {
		st.ByStatus[bucket(b.Status)]++
		st.List = append(st.List, BrandSummary{ID: b.ID, Name: b.Name, Status: b.Status})
	}
	return st
}

func influencerStats(influencers []models.Influencer) InfluencerStats {
	st := InfluencerStats{
		Total:      len(influencers),
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, inf := range influencers {
		st.ByStatus[bucket(inf.Status)]++
		for _, cat := range inf.Categories {
			st.ByCategory[cat]++
		}
		st.TotalFollowers += inf.Followers
	}
	return st
}

func campaignStats(campaigns []models.Campaign) CampaignStats {
	st := CampaignStats{
		Total:      len(campaigns),
		ByStatus:   map[string]int{},
		ByType:     map[string]int{},
		ByCategory: map[string]int{},
		List:       make([]CampaignSummary, 0, len(campaigns)),
	}
	for i := range campaigns {
		c := &campaigns[i]
		st.ByStatus[bucket(c.Status)]++
		st.ByType[bucket(c.Type)]++
		st.ByCategory[bucket(c.Category)]++
		st.TotalBudget += c.Budget
		st.TotalParticipants += c.Participants
		st.TotalLikes += c.TotalLikes
		st.TotalComments += c.TotalComments
		st.TotalShares += c.TotalShares
		st.TotalMentions += c.TotalMentions
		st.TotalVideoPlays += c.TotalVideoPlays
		st.List = append(st.List, summarizeCampaign(c))
	}
	return st
}

func summarizeCampaign(c *models.Campaign) CampaignSummary {
	return CampaignSummary{
		ID:           c.ID,
		Name:         c.Name,
		Status:       c.Status,
		Type:         c.Type,
		Category:     c.Category,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Budget:       c.Budget,
		Participants: c.Participants,
		Likes:        c.TotalLikes,
		Comments:     c.TotalComments,
		Shares:       c.TotalShares,
		Mentions:     c.TotalMentions,
	}
}

// BrandPerformance ranks every brand by the engagement of the campaigns
// CampaignMatchesBrand assigns to it, highest first.
func (s *DashboardService) BrandPerformance(ctx context.Context) ([]BrandPerformance, error) {
	var (
		brands    []models.Brand
		campaigns []models.Campaign
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		brands, err = s.brands.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		campaigns, err = s.campaigns.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("brand performance: %w", err)
	}

	return RankBrands(brands, campaigns), nil
}

// RankBrands computes BrandPerformance rows sorted by engagement.
func RankBrands(brands []models.Brand, campaigns []models.Campaign) []BrandPerformance {
	out := make([]BrandPerformance, 0, len(brands))
	for _, b := range brands {
		bp := BrandPerformance{ID: b.ID, Name: b.Name, Status: b.Status, CampaignIDs: []string{}}
		for _, c := range campaignsForBrand(campaigns, b.Name) {
			bp.CampaignCount++
			bp.CampaignIDs = append(bp.CampaignIDs, c.ID)
			bp.Likes += c.TotalLikes
			bp.Comments += c.TotalComments
			bp.Shares += c.TotalShares
			bp.Mentions += c.TotalMentions
			bp.VideoPlays += c.TotalVideoPlays
			bp.Participants += c.Participants
		}
		bp.Engagement = bp.Likes + bp.Comments + bp.Shares
		out = append(out, bp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Engagement > out[j].Engagement })
	return out
}

// Monthly reports on the campaigns overlapping year/month. A zero year or
// an out-of-range month selects the current one.
func (s *DashboardService) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	now := s.now()
	if year <= 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	campaigns, err := s.campaigns.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("monthly report: %w", err)
	}
	return BuildMonthly(campaigns, year, time.Month(month), s.estimator), nil
}

// BuildMonthly sums the campaigns overlapping the month and attaches an
// estimated comparison with the previous month.
func BuildMonthly(campaigns []models.Campaign, year int, month time.Month, e ChangeEstimator) *MonthlyReport {
	from, to := monthBounds(year, month)
	rep := &MonthlyReport{
		Year:      year,
		Month:     int(month),
		StartDate: from,
		EndDate:   to,
		Campaigns: []CampaignSummary{},
	}
	for i := range campaigns {
		c := &campaigns[i]
		if !c.Overlaps(from, to) {
			continue
		}
		rep.CampaignCount++
		rep.Totals.Likes += c.TotalLikes
		rep.Totals.Comments += c.TotalComments
		rep.Totals.Shares += c.TotalShares
		rep.Totals.Mentions += c.TotalMentions
		rep.Totals.VideoPlays += c.TotalVideoPlays
		rep.Totals.Participants += c.Participants
		rep.Totals.Budget += c.Budget
		rep.Campaigns = append(rep.Campaigns, summarizeCampaign(c))
	}
	rep.Totals.Engagement = rep.Totals.Likes + rep.Totals.Comments + rep.Totals.Shares

	if e == nil {
		e = RandomChangeEstimator{}
	}
	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	rep.Previous = MonthlyComparison{
		Year:      prev.Year(),
		Month:     int(prev.Month()),
		Changes:   estimateChanges(e, "campaigns", "likes", "comments", "shares", "mentions", "participants"),
		Estimated: true,
	}
	return rep
}

// Options returns the allowed option sets of every collection.
func (s *DashboardService) Options(ctx context.Context) (*models.Options, error) {
	return s.schema.Options(ctx)
}
