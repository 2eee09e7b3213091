package httpserver

import (
	"net/http"

	"github.com/radiusdt/wellwave-hub/internal/hub"
)

const defaultDailyReportDays = 30

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := s.dashboard.Dashboard(r.Context(), hub.DashboardFilter{
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
		BrandID:    q.Get("brandId"),
		CampaignID: q.Get("campaignId"),
	})
	if err != nil {
		s.upstreamError(w, r, "dashboard", err)
		return
	}
	s.jsonResponse(w, d)
}

func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.reports.Daily(r.Context(), hub.DailyQuery{
		CampaignID: q.Get("campaignId"),
		From:       q.Get("startDate"),
		To:         q.Get("endDate"),
		Days:       queryInt(r, "days"),
	})
	if err != nil {
		s.upstreamError(w, r, "daily stats", err)
		return
	}
	s.jsonResponse(w, res)
}

// handleDailyReport is the campaign-scoped daily series with a longer
// default window.
func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	res, err := s.reports.Daily(r.Context(), hub.DailyQuery{
		CampaignID: r.URL.Query().Get("campaignId"),
		Days:       hub.ClampDays(queryInt(r, "days"), defaultDailyReportDays),
	})
	if err != nil {
		s.upstreamError(w, r, "daily report", err)
		return
	}
	s.jsonResponse(w, res)
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	rep, err := s.dashboard.Monthly(r.Context(), queryInt(r, "year"), queryInt(r, "month"))
	if err != nil {
		s.upstreamError(w, r, "monthly stats", err)
		return
	}
	s.jsonResponse(w, rep)
}

func (s *Server) handleBrandStats(w http.ResponseWriter, r *http.Request) {
	list, err := s.dashboard.BrandPerformance(r.Context())
	if err != nil {
		s.upstreamError(w, r, "brand stats", err)
		return
	}
	s.jsonResponse(w, list)
}

func (s *Server) handleMentions(w http.ResponseWriter, r *http.Request) {
	res, err := s.reports.Creators(r.Context(), r.URL.Query().Get("campaignId"), queryInt(r, "limit"))
	if err != nil {
		s.upstreamError(w, r, "mentions", err)
		return
	}
	s.jsonResponse(w, res)
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.dashboard.Options(r.Context())
	if err != nil {
		s.upstreamError(w, r, "options", err)
		return
	}
	s.jsonResponse(w, opts)
}
