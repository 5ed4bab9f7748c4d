package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-dashboard/internal/api/models"
)

// ErrorHandler middleware turns handler panics into a JSON 500
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		if msg, ok := recovered.(string); ok {
			message = msg
		}
		log.Error().
			Str("component", "api").
			Str("request_id", c.GetString(RequestIDKey)).
			Str("panic", fmt.Sprint(recovered)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError(models.CodeInternal, message))
	})
}
