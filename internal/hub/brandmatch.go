package hub

import (
	"strings"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

// NormalizeBrandName lowercases a brand name and removes all whitespace.
func NormalizeBrandName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// CampaignMatchesBrand reports whether a campaign's mention id contains
// the normalized brand name.
//
// This is a heuristic. Campaigns carry no brand reference, so a short
// brand name can match unrelated mention ids and a mention id spelled
// differently from the brand name is missed. An empty name matches nothing.
func CampaignMatchesBrand(c *models.Campaign, brandName string) bool {
	needle := NormalizeBrandName(brandName)
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(c.MentionID), needle)
}

// campaignsForBrand returns the campaigns that CampaignMatchesBrand
// assigns to brandName.
func campaignsForBrand(campaigns []models.Campaign, brandName string) []models.Campaign {
	out := make([]models.Campaign, 0)
	for i := range campaigns {
		if CampaignMatchesBrand(&campaigns[i], brandName) {
			out = append(out, campaigns[i])
		}
	}
	return out
}
