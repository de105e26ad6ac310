package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPException is the error envelope returned to API clients.
// Every handler currently reports failures as 500 with the error text as description.
type HTTPException struct {
	StatusCode  int
	Description string
}

// ParsedException is the wire shape of an HTTPException
type ParsedException struct {
	StatusCode  int    `json:"statusCode"`
	Description string `json:"description"`
}

func NewHTTPException(statusCode int, description string) *HTTPException {
	return &HTTPException{
		StatusCode:  statusCode,
		Description: description,
	}
}

func (e *HTTPException) Error() string {
	return e.Description
}

// Parse returns the plain envelope value
func (e *HTTPException) Parse() ParsedException {
	return ParsedException{
		StatusCode:  e.StatusCode,
		Description: e.Description,
	}
}

// ExceptionResponse wraps err into a 500 envelope and writes it
func ExceptionResponse(c *gin.Context, err error) {
	parsed := NewHTTPException(http.StatusInternalServerError, err.Error()).Parse()
	c.JSON(parsed.StatusCode, parsed)
}
