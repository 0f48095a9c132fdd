package handlers

import (
	"net/http"

	"ecoclean/middleware"
	"ecoclean/services/history"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the merged pickup/booking history views: history
// page, track-status, dashboard summary and reward points.
type HistoryHandler struct {
	Svc *history.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler instance.
func NewHistoryHandler(svc *history.HistoryService) *HistoryHandler {
	return &HistoryHandler{Svc: svc}
}

// History handles GET /api/history?status=&q=. The whole merged set is
// returned at once; filtering is an in-memory predicate, no pagination.
func (h *HistoryHandler) History(c *gin.Context) {
	items, err := h.Svc.History(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	filter := history.Filter{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
	c.JSON(http.StatusOK, gin.H{"history": filter.Apply(items)})
}

// Track handles GET /api/history/:id. The detail modal is populated from
// the same normalized record the list used.
func (h *HistoryHandler) Track(c *gin.Context) {
	item, found, err := h.Svc.Track(c.Request.Context(), middleware.SessionToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "No record with that id."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": item})
}

// Dashboard handles GET /api/dashboard.
func (h *HistoryHandler) Dashboard(c *gin.Context) {
	summary, err := h.Svc.Summarize(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Rewards handles GET /api/rewards.
func (h *HistoryHandler) Rewards(c *gin.Context) {
	summary, err := h.Svc.Rewards(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
