package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const reviewerHeader = "X-Reviewer"

// reviewerFromContext resolves the acting reviewer identity. The portal has
// no authentication layer; moderation callers identify themselves via header.
func reviewerFromContext(c *gin.Context) string {
	if reviewer := strings.TrimSpace(c.GetHeader(reviewerHeader)); reviewer != "" {
		return reviewer
	}
	return "admin"
}
