package response

import "github.com/gin-gonic/gin"

// Envelope is the standardized API response wrapper. Status reports overall
// success; Errors carries one message per violated rule on failure; Token is
// only present on register/login responses.
type Envelope struct {
	Status     bool        `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Token      string      `json:"token,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination holds paging information for list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// OK sends a successful JSON response with an optional message and data.
func OK(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// OKWithToken sends a successful response carrying a freshly issued token.
func OKWithToken(c *gin.Context, statusCode int, message string, data interface{}, token string) {
	c.JSON(statusCode, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
		Token:   token,
	})
}

// OKWithPagination sends a successful list response with paging metadata.
func OKWithPagination(c *gin.Context, statusCode int, data interface{}, pagination *Pagination) {
	c.JSON(statusCode, Envelope{
		Status:     true,
		Data:       data,
		Pagination: pagination,
	})
}

// Fail sends an error response with one message per violated rule.
func Fail(c *gin.Context, statusCode int, errs ...string) {
	c.JSON(statusCode, Envelope{
		Status: false,
		Errors: errs,
	})
}

// FailWithErrors sends an error response from a pre-built message list.
func FailWithErrors(c *gin.Context, statusCode int, errs []string) {
	c.JSON(statusCode, Envelope{
		Status: false,
		Errors: errs,
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, errs ...string) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Status: false,
		Errors: errs,
	})
}
