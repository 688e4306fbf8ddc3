package v1

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
}

// CategoryCreate is the request body for a new category.
type CategoryCreate struct {
	Name string `json:"name" binding:"required"`
}

// GetCategories returns all categories, ordered by name.
func GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)
	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category. Names are unique without
// regard to casing.
func CreateCategory(c *gin.Context) {
	var create CategoryCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e(c, err)
		return
	}

	category := models.Category{Name: create.Name}
	err = models.DB.Create(&category).Error
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
