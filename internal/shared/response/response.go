package response

import (
	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// Envelope is the uniform JSON wrapper every endpoint answers with.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    any         `json:"details,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func List(c *gin.Context, status int, data any, pagination Pagination) {
	c.JSON(status, Envelope{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

func Error(c *gin.Context, status int, errMsg string, details any) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   errMsg,
		Details: details,
	})
}
