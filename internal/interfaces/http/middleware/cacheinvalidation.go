package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardInvalidator drops a user's cached cross-pillar dashboard
type DashboardInvalidator interface {
	InvalidateDashboard(ctx context.Context, userID uuid.UUID)
}

// InvalidateDashboardOnWrite busts the cached wellbeing dashboard after any
// successful mutating request in the group, so a new transaction or sleep
// record is reflected in the overview immediately rather than after the TTL.
func InvalidateDashboardOnWrite(invalidator DashboardInvalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, err := uuid.Parse(GetJWTUserID(c))
		if err != nil {
			return
		}
		invalidator.InvalidateDashboard(c.Request.Context(), userID)
	}
}
