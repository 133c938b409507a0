package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trakzone/checkin-service/internal/models"
	"github.com/trakzone/checkin-service/internal/store"
)

// parseID parses a numeric path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return 0, false
	}
	return id, true
}

// RegisterEventRoutes registers event CRUD endpoints.
//
// POST /events      - protected; date must be "YYYY-MM-DD HH:MM:SS"
// GET  /events      - public listing
// GET  /events/:id  - public retrieval
func RegisterEventRoutes(public, protected gin.IRoutes, st Store) {
	protected.POST("/events", func(c *gin.Context) {
		var req models.CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if req.Name == "" || req.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		date, err := time.Parse(models.DateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD HH:MM:SS"})
			return
		}

		id, err := st.CreateEvent(c.Request.Context(), req.Name, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Event created successfully",
			"event_id": id,
		})
	})

	public.GET("/events", func(c *gin.Context) {
		events, err := st.ListEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		out := make([]models.EventResponse, 0, len(events))
		for _, e := range events {
			out = append(out, models.EventJSON(e))
		}
		c.JSON(http.StatusOK, out)
	})

	public.GET("/events/:id", func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		event, err := st.EventByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		c.JSON(http.StatusOK, models.EventJSON(event))
	})
}
