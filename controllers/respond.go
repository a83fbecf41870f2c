package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"platepix/backend/database"
	"platepix/backend/models"
)

const (
	storeTimeout     = 5 * time.Second
	defaultListLimit = 50
	maxDetailLength  = 200
)

// abortValidation answers 422 with field-level detail.
func abortValidation(c *gin.Context, err error) {
	ve := models.NewValidationError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": ve.Fields})
}

// abortStorage answers 500 with the store's error message.
func abortStorage(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": truncate(err.Error(), maxDetailLength)})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// parseListQuery reads ?limit= (default 50) and the optional ?status= filter.
func parseListQuery(c *gin.Context) (database.Filter, int, error) {
	var fields []models.FieldError

	limit := defaultListLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, models.FieldError{
				Loc:  []string{"query", "limit"},
				Msg:  "value is not a valid integer",
				Type: "type_error.integer",
			})
		case n < 1:
			// 0 is not "unbounded" here; callers omit limit for the default.
			fields = append(fields, models.FieldError{
				Loc:  []string{"query", "limit"},
				Msg:  "ensure this value is greater than or equal to 1",
				Type: "value_error.number.not_ge",
			})
		default:
			limit = n
		}
	}

	var filter database.Filter
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			fields = append(fields, models.FieldError{
				Loc:  []string{"query", "status"},
				Msg:  "unexpected value; permitted: 'new', 'contacted', 'quoted', 'won', 'lost'",
				Type: "value_error.const",
			})
		} else {
			filter = database.Filter{"status": string(status)}
		}
	}

	if len(fields) > 0 {
		return nil, 0, &models.ValidationError{Fields: fields}
	}
	return filter, limit, nil
}
