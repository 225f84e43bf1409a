package httperr

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the user-facing part of an error response.
type ErrorBody struct {
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}
}

// AbortWithError writes resp and records the underlying error on the context
// so the error middleware and request log can see the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := New(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
