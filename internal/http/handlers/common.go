package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// respondError writes an application error with its own HTTP status, or a
// generic 500 for anything unclassified
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("", err)))
}

// getAuthenticatedAdminID extracts the authenticated admin id from the context
func getAuthenticatedAdminID(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewUnauthorizedError("Admin not authenticated"))
		return "", false
	}
	return adminID.(string), true
}
