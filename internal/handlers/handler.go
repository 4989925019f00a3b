package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"invoice-dashboard-backend/internal/services/result"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 1 << 20

// listParams are the query-string inputs shared by the paginated tables.
type listParams struct {
	Query   string
	Page    int
	SortBy  string
	SortDir string
}

func readListParams(c *gin.Context) listParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return listParams{
		Query:   c.Query("query"),
		Page:    page,
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortDir"),
	}
}

// readForm accepts urlencoded and multipart bodies.
func readForm(c *gin.Context) (url.Values, error) {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return c.Request.PostForm, nil
}

// respond turns a mutation outcome into HTTP. Only Redirect navigates.
func respond(c *gin.Context, outcome result.Outcome) {
	switch o := outcome.(type) {
	case result.Redirect:
		c.Redirect(http.StatusSeeOther, o.To)
	case result.Invalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": o.Errors, "message": o.Message})
	case result.Failed:
		c.JSON(http.StatusInternalServerError, gin.H{"message": o.Message})
	case result.Completed:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "unexpected outcome"})
	}
}

func fetchFailed(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func badForm(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid form body"})
}
