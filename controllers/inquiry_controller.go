package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"platepix/backend/database"
	"platepix/backend/metrics"
	"platepix/backend/models"
	"platepix/backend/notify"
)

const publishTimeout = 2 * time.Second

// CreateInquiry handles POST /api/inquiries. The body is validated by gin
// binding before anything touches the store; platform and status defaults
// are applied while decoding.
func CreateInquiry(store database.Store, pub notify.Publisher, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inq models.Inquiry
		if err := c.ShouldBindJSON(&inq); err != nil {
			abortValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		id, err := store.CreateDocument(ctx, inq)
		if err != nil {
			abortStorage(c, err)
			return
		}
		metrics.RecordInquiryCreated(string(inq.Platform))

		pctx, pcancel := context.WithTimeout(c.Request.Context(), publishTimeout)
		defer pcancel()
		if err := pub.Publish(pctx, notify.NewInquiryEvent(id, inq, time.Now())); err != nil {
			metrics.RecordNotificationFailed()
			logger.Warn("inquiry event not published",
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
	}
}

// ListInquiries handles GET /api/inquiries?limit=&status=.
func ListInquiries(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, limit, err := parseListQuery(c)
		if err != nil {
			abortValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		docs, err := store.GetDocuments(ctx, models.KindInquiry, filter, limit)
		if err != nil {
			abortStorage(c, err)
			return
		}
		if docs == nil {
			docs = []database.Document{}
		}
		c.JSON(http.StatusOK, gin.H{"items": docs})
	}
}
