package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trakzone/checkin-service/internal/auth"
	"github.com/trakzone/checkin-service/internal/models"
	"github.com/trakzone/checkin-service/internal/qr"
	"github.com/trakzone/checkin-service/internal/store"
)

// RegisterCheckinRoutes registers check-in and QR endpoints.
//
// POST /checkin                       - protected; idempotent per (user, event)
// GET  /generate_qr?data=...          - public; encodes an arbitrary string
// GET  /generate_qr/:event_id         - public; encodes the event's check-in URL
// GET  /event_attendees/:event_id     - public; check-ins joined with usernames
func RegisterCheckinRoutes(public, protected gin.IRoutes, st Store, baseURL string) {
	protected.POST("/checkin", func(c *gin.Context) {
		var req models.CheckinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		if req.EventID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event_id required"})
			return
		}

		if _, err := st.EventByID(c.Request.Context(), req.EventID); err != nil {
			if errors.Is(err, store.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		userID := auth.UserID(c)
		inserted, err := st.InsertCheckIn(c.Request.Context(), userID, req.EventID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		// 201 for new check-ins, 200 for duplicates (idempotent success).
		if !inserted {
			c.JSON(http.StatusOK, gin.H{"message": "Already checked in"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Checked in successfully"})
	})

	public.GET("/generate_qr", func(c *gin.Context) {
		data := c.Query("data")
		if data == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data query parameter required"})
			return
		}

		png, err := qr.Encode(data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "qr encoding failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	})

	public.GET("/generate_qr/:event_id", func(c *gin.Context) {
		id, ok := parseID(c, "event_id")
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

		png, err := qr.Encode(qr.CheckinURL(baseURL, event.ID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "qr encoding failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	})

	public.GET("/event_attendees/:event_id", func(c *gin.Context) {
		id, ok := parseID(c, "event_id")
		if !ok {
			return
		}

		if _, err := st.EventByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		attendees, err := st.ListAttendees(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"event_id":  id,
			"attendees": attendees,
		})
	})
}
