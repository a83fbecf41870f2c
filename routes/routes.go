package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"platepix/backend/config"
	"platepix/backend/controllers"
	"platepix/backend/database"
	"platepix/backend/metrics"
	"platepix/backend/models"
	"platepix/backend/notify"
)

func Register(r *gin.Engine, cfg config.Config, store database.Store, pub notify.Publisher, logger *slog.Logger) {
	// Field errors are reported with JSON names.
	binding.Validator = models.Validator()

	r.GET("/", controllers.Root())
	r.GET("/test", controllers.Diagnostics(cfg, store, pub))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/hello", controllers.Hello())
		// Lead capture
		api.POST("/inquiries", controllers.CreateInquiry(store, pub, logger))
		api.GET("/inquiries", controllers.ListInquiries(store))
		api.GET("/inquiries/export", controllers.ExportInquiries(store))
		// Static gallery
		api.GET("/portfolio", controllers.Portfolio())
	}
}
