package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as the JSON body with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK is shorthand for a 200 JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
