package hub

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radiusdt/wellwave-hub/internal/metrics"
	"github.com/radiusdt/wellwave-hub/internal/models"
	"github.com/radiusdt/wellwave-hub/internal/storage"
)

// Deps are the collaborators shared by every service. Logger, Metrics,
// Rand, Estimator and Now are optional.
type Deps struct {
	Brands       storage.BrandRepo
	Influencers  storage.InfluencerRepo
	Campaigns    storage.CampaignRepo
	DailyReports storage.DailyReportRepo
	Mentions     storage.MentionRepo
	Schema       storage.SchemaRepo

	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Rand      Random
	Estimator ChangeEstimator
	Now       func() time.Time
}

// Services bundles the services the HTTP layer serves.
type Services struct {
	Brands      *BrandService
	Influencers *InfluencerService
	Campaigns   *CampaignService
	Reports     *ReportService
	Dashboard   *DashboardService
}

// NewServices builds all services from d.
func NewServices(d Deps) *Services {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Rand == nil {
		d.Rand = DefaultRandom
	}
	if d.Estimator == nil {
		d.Estimator = RandomChangeEstimator{Rand: d.Rand}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	gen := Generator{Rand: d.Rand, Now: d.Now}

	return &Services{
		Brands:      NewBrandService(d.Brands),
		Influencers: NewInfluencerService(d.Influencers),
		Campaigns:   NewCampaignService(d.Campaigns),
		Reports: &ReportService{
			campaigns: d.Campaigns,
			daily:     d.DailyReports,
			mentions:  d.Mentions,
			gen:       gen,
			estimator: d.Estimator,
			logger:    d.Logger,
			metrics:   d.Metrics,
		},
		Dashboard: &DashboardService{
			brands:      d.Brands,
			influencers: d.Influencers,
			campaigns:   d.Campaigns,
			schema:      d.Schema,
			estimator:   d.Estimator,
			now:         d.Now,
		},
	}
}

// BrandService provides CRUD operations over brands.
type BrandService struct {
	repo storage.BrandRepo
}

// NewBrandService constructs a BrandService backed by the given repo.
func NewBrandService(repo storage.BrandRepo) *BrandService {
	return &BrandService{repo: repo}
}

// ListBrands returns non-archived brands.
func (s *BrandService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.repo.ListAll(ctx)
}

// GetBrand returns a brand by ID, archived or not.
func (s *BrandService) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BrandService) CreateBrand(ctx context.Context, in models.BrandInput) (string, error) {
	return s.repo.Create(ctx, in)
}

func (s *BrandService) UpdateBrand(ctx context.Context, id string, in models.BrandInput) error {
	return s.repo.Update(ctx, id, in)
}

// DeleteBrand archives the brand; it stays retrievable by ID.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id)
}

// InfluencerService provides CRUD operations over influencers.
type InfluencerService struct {
	repo storage.InfluencerRepo
}

// NewInfluencerService constructs an InfluencerService.
func NewInfluencerService(repo storage.InfluencerRepo) *InfluencerService {
	return &InfluencerService{repo: repo}
}

func (s *InfluencerService) ListInfluencers(ctx context.Context) ([]models.Influencer, error) {
	return s.repo.ListAll(ctx)
}

func (s *InfluencerService) GetInfluencer(ctx context.Context, id string) (*models.Influencer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InfluencerService) CreateInfluencer(ctx context.Context, in models.InfluencerInput) (string, error) {
	return s.repo.Create(ctx, in)
}

func (s *InfluencerService) UpdateInfluencer(ctx context.Context, id string, in models.InfluencerInput) error {
	return s.repo.Update(ctx, id, in)
}

// DeleteInfluencer archives the influencer.
func (s *InfluencerService) DeleteInfluencer(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id)
}

// CampaignService provides CRUD operations over campaigns. The campaign
// detail view lives on ReportService.
type CampaignService struct {
	repo storage.CampaignRepo
}

// NewCampaignService constructs a CampaignService backed by the given repo.
func NewCampaignService(repo storage.CampaignRepo) *CampaignService {
	return &CampaignService{repo: repo}
}

// ListCampaigns returns non-archived campaigns, latest start first.
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return s.repo.ListAll(ctx)
}

func (s *CampaignService) CreateCampaign(ctx context.Context, in models.CampaignInput) (string, error) {
	return s.repo.Create(ctx, in)
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, id string, in models.CampaignInput) error {
	return s.repo.Update(ctx, id, in)
}

// DeleteCampaign archives the campaign.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id)
}
