// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the healthz routes.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the health of the backend, which means its database
// connection is alive.
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
