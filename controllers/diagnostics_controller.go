package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"platepix/backend/config"
	"platepix/backend/database"
	"platepix/backend/notify"
)

const (
	maxListedCollections = 10
	maxStatusErrLength   = 50
)

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Notifications    string   `json:"notifications"`
}

type queueLengther interface {
	QueueLength(ctx context.Context) (int64, error)
}

// Diagnostics handles GET /test. It always answers 200; every failure is
// described in the body instead.
func Diagnostics(cfg config.Config, store database.Store, pub notify.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := diagnosticsResponse{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		probe, err := ping(ctx, store)
		switch {
		case errors.Is(err, database.ErrNotConfigured):
			resp.Database = "⚠️  Available but not initialized"
		case err != nil:
			resp.Database = "❌ Error: " + truncate(err.Error(), maxStatusErrLength)
		default:
			resp.Database = "✅ Available"
			resp.ConnectionStatus = "Connected"
			if probe.CollectionsErr != nil {
				resp.Database = "⚠️  Connected but Error: " + truncate(probe.CollectionsErr.Error(), maxStatusErrLength)
				break
			}
			cols := probe.Collections
			if len(cols) > maxListedCollections {
				cols = cols[:maxListedCollections]
			}
			if cols != nil {
				resp.Collections = cols
			}
			resp.Database = "✅ Connected & Working"
		}

		resp.DatabaseURL = presence(cfg.DatabaseURLSet())
		resp.DatabaseName = presence(cfg.DatabaseNameSet())
		resp.Notifications = notificationStatus(ctx, pub)

		c.JSON(http.StatusOK, resp)
	}
}

// ping converts a panicking store into an error so /test keeps answering.
func ping(ctx context.Context, store database.Store) (p database.Probe, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	if store == nil {
		return database.Probe{}, database.ErrNotConfigured
	}
	return store.Ping(ctx)
}

func notificationStatus(ctx context.Context, pub notify.Publisher) (status string) {
	defer func() {
		if r := recover(); r != nil {
			status = "❌ Error: " + truncate(fmt.Sprint(r), maxStatusErrLength)
		}
	}()
	if pub == nil {
		return "Disabled"
	}
	err := pub.Health(ctx)
	switch {
	case errors.Is(err, notify.ErrDisabled):
		return "Disabled"
	case err != nil:
		return "⚠️  Error: " + truncate(err.Error(), maxStatusErrLength)
	}
	if ql, ok := pub.(queueLengther); ok {
		if n, err := ql.QueueLength(ctx); err == nil {
			return fmt.Sprintf("✅ Connected (%d pending)", n)
		}
	}
	return "✅ Connected"
}

func presence(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
