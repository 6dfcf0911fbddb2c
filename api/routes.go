package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/Domenick1991/airroute/internal/planner"
	"github.com/Domenick1991/airroute/internal/service/routes"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service routes.RouteUseCase
}

type routeRequest struct {
	Criterion string `form:"criterion" binding:"required"`
	From      *int   `form:"from" binding:"required"`
	To        *int   `form:"to" binding:"required"`
	T1        *int   `form:"t1" binding:"required"`
	T2        *int   `form:"t2" binding:"required"`
}

type reloadResponse struct {
	Snapshot string `json:"snapshot"`
}

func NewRouteHandler(service routes.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("/routes", h.find)
	router.GET("/cities/:id/departures", h.departures)
	router.GET("/cities/:id/arrivals", h.arrivals)
	router.POST("/snapshot/reload", h.reload)
}

func (h *RouteHandler) find(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	criterion, err := domain.ParseCriterion(req.Criterion)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.FindRoute(c.Request.Context(), domain.RouteQuery{
		Criterion: criterion,
		StartCity: *req.From,
		EndCity:   *req.To,
		T1:        *req.T1,
		T2:        *req.T2,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RouteHandler) departures(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flights, err := h.service.Departures(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *RouteHandler) arrivals(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flights, err := h.service.Arrivals(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *RouteHandler) reload(c *gin.Context) {
	snapshot, err := h.service.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reloadResponse{Snapshot: strconv.FormatUint(snapshot, 16)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCriterion), errors.Is(err, planner.ErrCityOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
