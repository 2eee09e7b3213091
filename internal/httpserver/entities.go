package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radiusdt/wellwave-hub/internal/models"
)

type createdResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

var okResponse = successResponse{Success: true}

// ---- Brands ----

func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	list, err := s.brands.ListBrands(r.Context())
	if err != nil {
		s.upstreamError(w, r, "list brands", err)
		return
	}
	s.jsonResponse(w, list)
}

func (s *Server) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	b, err := s.brands.GetBrand(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.upstreamError(w, r, "get brand", err)
		return
	}
	s.jsonResponse(w, b)
}

func (s *Server) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var in models.BrandInput
	if err := decodeJSON(r, &in); err != nil {
		s.errorResponse(w, "invalid json", http.StatusBadRequest)
		return
	}
	id, err := s.brands.CreateBrand(r.Context(), in)
	if err != nil {
		s.upstreamError(w, r, "create brand", err)
		return
	}
	s.jsonResponse(w, createdResponse{Success: true, ID: id})
}

func (s *Server) handleUpdateBrand(w http.ResponseWriter, r *http.Request) {
	var in models.BrandInput
	if err := decodeJSON(r, &in); err != nil {
		s.errorResponse(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := s.brands.UpdateBrand(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		s.upstreamError(w, r, "update brand", err)
		return
	}
	s.jsonResponse(w, okResponse)
}

func (s *Server) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := s.brands.DeleteBrand(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.upstreamError(w, r, "delete brand", err)
		return
	}
	s.jsonResponse(w, okResponse)
}

// ---- Influencers ----

func (s *Server) handleListInfluencers(w http.ResponseWriter, r *http.Request) {
	list, err := s.influencers.ListInfluencers(r.Context())
	if err != nil {
		s.upstreamError(w, r, "list influencers", err)
		return
	}
	s.jsonResponse(w, list)
}

func (s *Server) handleGetInfluencer(w http.ResponseWriter, r *http.Request) {
	inf, err := s.influencers.GetInfluencer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.upstreamError(w, r, "get influencer", err)
		return
	}
	s.jsonResponse(w, inf)
}

func (s *Server) handleCreateInfluencer(w http.ResponseWriter, r *http.Request) {
	var in models.InfluencerInput
	if err := decodeJSON(r, &in); err != nil {
		s.errorResponse(w, "invalid json", http.StatusBadRequest)
		return
	}
	id, err := s.influencers.CreateInfluencer(r.Context(), in)
	if err != nil {
		s.upstreamError(w, r, "create influencer", err)
		return
	}
	s.jsonResponse(w, createdResponse{Success: true, ID: id})
}

func (s *Server) handleUpdateInfluencer(w http.ResponseWriter, r *http.Request) {
	var in models.InfluencerInput
	if err := decodeJSON(r, &in); err != nil {
		s.errorResponse(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := s.influencers.UpdateInfluencer(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		s.upstreamError(w, r, "update influencer", err)
		return
	}
	s.jsonResponse(w, okResponse)
}

func (s *Server) handleDeleteInfluencer(w http.ResponseWriter, r *http.Request) {
	if err := s.influencers.DeleteInfluencer(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.upstreamError(w, r, "delete influencer", err)
		return
	}
	s.jsonResponse(w, okResponse)
}

// ---- Campaigns ----

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := s.campaigns.ListCampaigns(r.Context())
	if err != nil {
		s.upstreamError(w, r, "list campaigns", err)
		return
	}
	s.jsonResponse(w, list)
}

// handleCampaignDetail answers with the campaign, its daily series and
// its creators, each marked with its source.
func (s *Server) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	d, err := s.reports.CampaignDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.upstreamError(w, r, "campaign detail", err)
		return
	}
	s.jsonResponse(w, d)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in models.CampaignInput
	if err := decodeJSON(r, &in); err != nil {
		s.errorResponse(w, "invalid json", http.StatusBadRequest)
		return
	}
	id, err := s.campaigns.CreateCampaign(r.Context(), in)
	if err != nil {
		s.upstreamError(w, r, "create campaign", err)
		return
	}
	s.jsonResponse(w, createdResponse{Success: true, ID: id})
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var in models.CampaignInput
	if err := decodeJSON(r, &in); err != nil {
		s.errorResponse(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := s.campaigns.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		s.upstreamError(w, r, "update campaign", err)
		return
	}
	s.jsonResponse(w, okResponse)
}

func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := s.campaigns.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.upstreamError(w, r, "delete campaign", err)
		return
	}
	s.jsonResponse(w, okResponse)
}
