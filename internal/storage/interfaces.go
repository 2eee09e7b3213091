package storage

import (
	"context"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

// =============================================
// BRAND REPOSITORY
// =============================================

// BrandRepo defines operations for brand storage.
type BrandRepo interface {
	// ListAll returns non-archived brands, newest first.
	ListAll(ctx context.Context) ([]models.Brand, error)
	// GetByID returns a brand even when it is archived.
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	Create(ctx context.Context, in models.BrandInput) (string, error)
	Update(ctx context.Context, id string, in models.BrandInput) error
	Archive(ctx context.Context, id string) error
}

// =============================================
// INFLUENCER REPOSITORY
// =============================================

// InfluencerRepo defines operations for influencer storage.
type InfluencerRepo interface {
	ListAll(ctx context.Context) ([]models.Influencer, error)
	GetByID(ctx context.Context, id string) (*models.Influencer, error)
	Create(ctx context.Context, in models.InfluencerInput) (string, error)
	Update(ctx context.Context, id string, in models.InfluencerInput) error
	Archive(ctx context.Context, id string) error
}

// =============================================
// CAMPAIGN REPOSITORY
// =============================================

// CampaignRepo defines operations for campaign storage.
type CampaignRepo interface {
	// ListAll returns non-archived campaigns, latest start date first.
	ListAll(ctx context.Context) ([]models.Campaign, error)
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	Create(ctx context.Context, in models.CampaignInput) (string, error)
	Update(ctx context.Context, id string, in models.CampaignInput) error
	Archive(ctx context.Context, id string) error
}

// =============================================
// REPORTING COLLECTIONS (read-only)
// =============================================

// DailyReportRepo reads raw daily engagement rows.
type DailyReportRepo interface {
	// List returns at most limit rows, latest date first, optionally only
	// those related to campaignID.
	List(ctx context.Context, campaignID string, limit int) ([]models.DailyRecord, error)
}

// MentionRepo reads social posts that mention campaigns.
type MentionRepo interface {
	// List returns posts, latest first, optionally only those related to
	// campaignID.
	List(ctx context.Context, campaignID string) ([]models.MentionRecord, error)
}

// SchemaRepo reads the allowed option sets of every collection.
type SchemaRepo interface {
	Options(ctx context.Context) (*models.Options, error)
}
