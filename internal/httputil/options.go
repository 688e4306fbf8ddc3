package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OptionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

func OptionsGetPut(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PUT")
	c.Status(http.StatusNoContent)
}

func OptionsPatch(c *gin.Context) {
	c.Header("allow", "OPTIONS, PATCH")
	c.Status(http.StatusNoContent)
}
