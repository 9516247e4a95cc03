package v1

import (
	"net/http"

	"jtrack-backend/internal/analytics"
	"jtrack-backend/internal/delivery/http/response"
	"jtrack-backend/internal/domain"
	"jtrack-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler registers analytics routes. Every endpoint accepts a
// timeframe query (7days, 30days, 90days, all); anything else means all.
func NewAnalyticsHandler(r *gin.RouterGroup, analyticsUC usecase.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	group := r.Group("/analytics")
	{
		group.GET("/summary", handler.Summary)
		group.GET("/status", handler.StatusCounts)
		group.GET("/timeline", handler.Timeline)
		group.GET("/sources", handler.Sources)
		group.GET("/salary", handler.Salary)
	}
}

func (h *AnalyticsHandler) timeframe(c *gin.Context) analytics.Timeframe {
	return analytics.ParseTimeframe(c.Query("timeframe"))
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Headline numbers: totals, active, outcomes, success and response rates
// @Tags         analytics
// @Produce      json
// @Param        timeframe  query     string  false  "Window"  Enums(7days, 30days, 90days, all)
// @Success      200        {object}  response.Response{data=analytics.Summary}
// @Failure      401        {object}  response.Response
// @Router       /analytics/summary [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	summary, err := h.analyticsUC.Summary(c.Request.Context(), userID, h.timeframe(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Summary retrieved", summary)
}

// StatusCounts godoc
// @Summary      Applications per status
// @Description  Count per status. Every status is present, zero when unused.
// @Tags         analytics
// @Produce      json
// @Param        timeframe  query     string  false  "Window"  Enums(7days, 30days, 90days, all)
// @Success      200        {object}  response.Response{data=map[string]int}
// @Failure      401        {object}  response.Response
// @Router       /analytics/status [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) StatusCounts(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	counts, err := h.analyticsUC.StatusCounts(c.Request.Context(), userID, h.timeframe(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status counts retrieved", counts)
}

// Timeline godoc
// @Summary      Cumulative timeline
// @Description  Running totals per application date for the timeline chart
// @Tags         analytics
// @Produce      json
// @Param        timeframe  query     string  false  "Window"  Enums(7days, 30days, 90days, all)
// @Success      200        {object}  response.Response{data=[]analytics.TimelinePoint}
// @Failure      401        {object}  response.Response
// @Router       /analytics/timeline [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) Timeline(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	points, err := h.analyticsUC.Timeline(c.Request.Context(), userID, h.timeframe(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline retrieved", points)
}

// Sources godoc
// @Summary      Source breakdown
// @Description  Per-source totals and outcomes, top ten sources by volume
// @Tags         analytics
// @Produce      json
// @Param        timeframe  query     string  false  "Window"  Enums(7days, 30days, 90days, all)
// @Success      200        {object}  response.Response{data=[]analytics.SourceStats}
// @Failure      401        {object}  response.Response
// @Router       /analytics/sources [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) Sources(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.analyticsUC.Sources(c.Request.Context(), userID, h.timeframe(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Source breakdown retrieved", stats)
}

// Salary godoc
// @Summary      Salary bracket distribution
// @Description  Applications bucketed by average posted salary, with per-bracket success rate
// @Tags         analytics
// @Produce      json
// @Param        timeframe  query     string  false  "Window"  Enums(7days, 30days, 90days, all)
// @Success      200        {object}  response.Response{data=[]analytics.SalaryBucket}
// @Failure      401        {object}  response.Response
// @Router       /analytics/salary [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) Salary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	buckets, err := h.analyticsUC.SalaryBuckets(c.Request.Context(), userID, h.timeframe(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Salary distribution retrieved", buckets)
}
