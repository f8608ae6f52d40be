package api

import (
	"errors"
	"github.com/ogzhnclk/northwind-api/internal/domain"
	"github.com/ogzhnclk/northwind-api/internal/pkg/constants"
	"net/http"

	"github.com/labstack/echo/v4"
)

// httpErrorHandler maps CodedError to its status; anything else is an opaque
// collaborator failure answered as 500 with the message preserved.
func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError
	for err != nil {
		if ce, ok := err.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			break
		}
		err = errors.Unwrap(err)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
