package v1

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	bf_uuid "github.com/billfold/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterMatchRuleRoutes registers the routes for match rules.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetMatchRules)
	r.POST("", CreateMatchRule)
}

// MatchRuleCreate is the request body for a new match rule.
type MatchRuleCreate struct {
	Priority   uint         `json:"priority"`
	Match      string       `json:"match" binding:"required"`
	CategoryID bf_uuid.UUID `json:"categoryId" binding:"required"`
}

// GetMatchRules returns all match rules in their application order.
func GetMatchRules(c *gin.Context) {
	rules, err := models.MatchRules(models.DB)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// CreateMatchRule creates a new match rule for an existing category.
func CreateMatchRule(c *gin.Context) {
	var create MatchRuleCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e(c, err)
		return
	}

	// The category has to exist
	err = models.DB.First(&models.Category{}, "id = ?", create.CategoryID.UUID).Error
	if err != nil {
		e(c, err)
		return
	}

	rule := models.MatchRule{
		Priority:   create.Priority,
		Match:      create.Match,
		CategoryID: create.CategoryID.UUID,
	}
	err = models.DB.Create(&rule).Error
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}
