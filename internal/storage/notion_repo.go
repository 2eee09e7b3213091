package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/radiusdt/wellwave-hub/internal/config"
	"github.com/radiusdt/wellwave-hub/internal/models"
	"github.com/radiusdt/wellwave-hub/internal/notion"
)

// Repos groups every repository backed by one hosted database client.
type Repos struct {
	Brands       *NotionBrandRepo
	Influencers  *NotionInfluencerRepo
	Campaigns    *NotionCampaignRepo
	DailyReports *NotionDailyReportRepo
	Mentions     *NotionMentionRepo
	Schema       *NotionSchemaRepo
}

// createdTimeTracker is implemented by stores that must be told which
// properties are created_time columns.
type createdTimeTracker interface {
	TrackCreatedTime(databaseID, property string)
}

// NewNotionRepos wires all repositories to api using the database ids in cfg.
func NewNotionRepos(api notion.API, cfg config.NotionConfig, logger *zap.Logger) *Repos {
	if logger == nil {
		logger = zap.NewNop()
	}
	if t, ok := api.(createdTimeTracker); ok {
		t.TrackCreatedTime(cfg.InfluencersDB, propInfluencerCreated)
	}
	return &Repos{
		Brands:       &NotionBrandRepo{api: api, dbID: cfg.BrandsDB, logger: logger},
		Influencers:  &NotionInfluencerRepo{api: api, dbID: cfg.InfluencersDB, logger: logger},
		Campaigns:    &NotionCampaignRepo{api: api, dbID: cfg.CampaignsDB, logger: logger},
		DailyReports: &NotionDailyReportRepo{api: api, dbID: cfg.DailyReportsDB},
		Mentions:     &NotionMentionRepo{api: api, dbID: cfg.MentionsDB},
		Schema: &NotionSchemaRepo{
			api:           api,
			brandsDB:      cfg.BrandsDB,
			influencersDB: cfg.InfluencersDB,
			campaignsDB:   cfg.CampaignsDB,
		},
	}
}

// =============================================
// Brands
// =============================================

// NotionBrandRepo implements BrandRepo.
type NotionBrandRepo struct {
	api    notion.API
	dbID   string
	logger *zap.Logger
}

func (r *NotionBrandRepo) ListAll(ctx context.Context) ([]models.Brand, error) {
	pages, err := r.api.QueryDatabase(ctx, r.dbID, &notion.QueryRequest{
		Sorts: []notion.Sort{notion.SortByCreated(notion.Descending)},
	})
	if err != nil {
		return nil, fmt.Errorf("query brands: %w", err)
	}
	out := make([]models.Brand, 0, len(pages))
	for i := range pages {
		out = append(out, MapBrand(&pages[i]))
	}
	return out, nil
}

func (r *NotionBrandRepo) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	p, err := r.api.RetrievePage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieve brand %s: %w", id, err)
	}
	b := MapBrand(p)
	return &b, nil
}

func (r *NotionBrandRepo) Create(ctx context.Context, in models.BrandInput) (string, error) {
	p, err := r.api.CreatePage(ctx, r.dbID, brandCreateProps(in))
	if err != nil {
		return "", fmt.Errorf("create brand: %w", err)
	}
	r.logger.Info("brand created", zap.String("id", p.ID))
	return p.ID, nil
}

func (r *NotionBrandRepo) Update(ctx context.Context, id string, in models.BrandInput) error {
	if _, err := r.api.UpdatePage(ctx, id, brandUpdateProps(in)); err != nil {
		return fmt.Errorf("update brand %s: %w", id, err)
	}
	return nil
}

func (r *NotionBrandRepo) Archive(ctx context.Context, id string) error {
	if err := r.api.ArchivePage(ctx, id); err != nil {
		return fmt.Errorf("archive brand %s: %w", id, err)
	}
	r.logger.Info("brand archived", zap.String("id", id))
	return nil
}

// =============================================
// Influencers
// =============================================

// NotionInfluencerRepo implements InfluencerRepo.
type NotionInfluencerRepo struct {
	api    notion.API
	dbID   string
	logger *zap.Logger
}

func (r *NotionInfluencerRepo) ListAll(ctx context.Context) ([]models.Influencer, error) {
	pages, err := r.api.QueryDatabase(ctx, r.dbID, &notion.QueryRequest{
		Sorts: []notion.Sort{notion.SortBy(propInfluencerCreated, notion.Descending)},
	})
	if err != nil {
		return nil, fmt.Errorf("query influencers: %w", err)
	}
	out := make([]models.Influencer, 0, len(pages))
	for i := range pages {
		out = append(out, MapInfluencer(&pages[i]))
	}
	return out, nil
}

func (r *NotionInfluencerRepo) GetByID(ctx context.Context, id string) (*models.Influencer, error) {
	p, err := r.api.RetrievePage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieve influencer %s: %w", id, err)
	}
	inf := MapInfluencer(p)
	return &inf, nil
}

func (r *NotionInfluencerRepo) Create(ctx context.Context, in models.InfluencerInput) (string, error) {
	p, err := r.api.CreatePage(ctx, r.dbID, influencerCreateProps(in))
	if err != nil {
		return "", fmt.Errorf("create influencer: %w", err)
	}
	r.logger.Info("influencer created", zap.String("id", p.ID))
	return p.ID, nil
}

func (r *NotionInfluencerRepo) Update(ctx context.Context, id string, in models.InfluencerInput) error {
	if _, err := r.api.UpdatePage(ctx, id, influencerUpdateProps(in)); err != nil {
		return fmt.Errorf("update influencer %s: %w", id, err)
	}
	return nil
}

func (r *NotionInfluencerRepo) Archive(ctx context.Context, id string) error {
	if err := r.api.ArchivePage(ctx, id); err != nil {
		return fmt.Errorf("archive influencer %s: %w", id, err)
	}
	r.logger.Info("influencer archived", zap.String("id", id))
	return nil
}

// =============================================
// Campaigns
// =============================================

// NotionCampaignRepo implements CampaignRepo.
type NotionCampaignRepo struct {
	api    notion.API
	dbID   string
	logger *zap.Logger
}

func (r *NotionCampaignRepo) ListAll(ctx context.Context) ([]models.Campaign, error) {
	pages, err := r.api.QueryDatabase(ctx, r.dbID, &notion.QueryRequest{
		Sorts: []notion.Sort{notion.SortBy(propStartDate, notion.Descending)},
	})
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	out := make([]models.Campaign, 0, len(pages))
	for i := range pages {
		out = append(out, MapCampaign(&pages[i]))
	}
	return out, nil
}

func (r *NotionCampaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	p, err := r.api.RetrievePage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieve campaign %s: %w", id, err)
	}
	c := MapCampaign(p)
	return &c, nil
}

func (r *NotionCampaignRepo) Create(ctx context.Context, in models.CampaignInput) (string, error) {
	p, err := r.api.CreatePage(ctx, r.dbID, campaignCreateProps(in))
	if err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}
	r.logger.Info("campaign created", zap.String("id", p.ID))
	return p.ID, nil
}

func (r *NotionCampaignRepo) Update(ctx context.Context, id string, in models.CampaignInput) error {
	if _, err := r.api.UpdatePage(ctx, id, campaignUpdateProps(in)); err != nil {
		return fmt.Errorf("update campaign %s: %w", id, err)
	}
	return nil
}

func (r *NotionCampaignRepo) Archive(ctx context.Context, id string) error {
	if err := r.api.ArchivePage(ctx, id); err != nil {
		return fmt.Errorf("archive campaign %s: %w", id, err)
	}
	r.logger.Info("campaign archived", zap.String("id", id))
	return nil
}

// =============================================
// Reporting collections
// =============================================

// NotionDailyReportRepo implements DailyReportRepo. An unconfigured
// collection reads as empty.
type NotionDailyReportRepo struct {
	api  notion.API
	dbID string
}

func (r *NotionDailyReportRepo) List(ctx context.Context, campaignID string, limit int) ([]models.DailyRecord, error) {
	if r.dbID == "" {
		return []models.DailyRecord{}, nil
	}
	q := &notion.QueryRequest{
		Sorts: []notion.Sort{notion.SortBy(propReportDate, notion.Descending)},
		Limit: limit,
	}
	if campaignID != "" {
		q.Filter = notion.RelationContains(propCampaign, campaignID)
	}
	pages, err := r.api.QueryDatabase(ctx, r.dbID, q)
	if err != nil {
		return nil, fmt.Errorf("query daily reports: %w", err)
	}
	out := make([]models.DailyRecord, 0, len(pages))
	for i := range pages {
		out = append(out, MapDailyRecord(&pages[i]))
	}
	return out, nil
}

// NotionMentionRepo implements MentionRepo. An unconfigured collection
// reads as empty.
type NotionMentionRepo struct {
	api  notion.API
	dbID string
}

func (r *NotionMentionRepo) List(ctx context.Context, campaignID string) ([]models.MentionRecord, error) {
	if r.dbID == "" {
		return []models.MentionRecord{}, nil
	}
	q := &notion.QueryRequest{
		Sorts: []notion.Sort{notion.SortBy(propMentionPostDate, notion.Descending)},
	}
	if campaignID != "" {
		q.Filter = notion.RelationContains(propCampaign, campaignID)
	}
	pages, err := r.api.QueryDatabase(ctx, r.dbID, q)
	if err != nil {
		return nil, fmt.Errorf("query mentions: %w", err)
	}
	out := make([]models.MentionRecord, 0, len(pages))
	for i := range pages {
		out = append(out, MapMention(&pages[i]))
	}
	return out, nil
}

// NotionSchemaRepo implements SchemaRepo.
type NotionSchemaRepo struct {
	api           notion.API
	brandsDB      string
	influencersDB string
	campaignsDB   string
}

// Options reads the three entity schemas concurrently. Any failed read
// fails the whole call.
func (r *NotionSchemaRepo) Options(ctx context.Context) (*models.Options, error) {
	var brands, influencers, campaigns *notion.Database

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		brands, err = r.api.RetrieveDatabase(gctx, r.brandsDB)
		return err
	})
	g.Go(func() (err error) {
		influencers, err = r.api.RetrieveDatabase(gctx, r.influencersDB)
		return err
	})
	g.Go(func() (err error) {
		campaigns, err = r.api.RetrieveDatabase(gctx, r.campaignsDB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("retrieve schemas: %w", err)
	}

	return &models.Options{
		Brands: map[string][]models.Option{
			"상태":   options(brands, propStatus),
			"업종":   options(brands, propBrandIndustry),
			"유입경로": options(brands, propBrandChannel),
		},
		Influencers: map[string][]models.Option{
			"상태":      options(influencers, propStatus),
			"활동분야":    options(influencers, propCategories),
			"콘텐츠유형":   options(influencers, propContentTypes),
			"크리에이터유형": options(influencers, propCreatorType),
			"희망보상":    options(influencers, propCompensation),
		},
		Campaigns: map[string][]models.Option{
			"상태":    options(campaigns, propStatus),
			"캠페인유형": options(campaigns, propCampaignType),
			"카테고리":  options(campaigns, propCampaignCategory),
			"협찬제품":  options(campaigns, propSponsoredProducts),
		},
	}, nil
}

func options(db *notion.Database, prop string) []models.Option {
	src := db.Options(prop)
	out := make([]models.Option, 0, len(src))
	for _, o := range src {
		out = append(out, models.Option{ID: o.ID, Name: o.Name, Color: o.Color})
	}
	return out
}
