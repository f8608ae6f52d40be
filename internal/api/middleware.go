package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ogzhnclk/northwind-api/internal/pkg/constants"
)

// RequestIDMiddleware tags every request with a uuid so snapshot loads and
// failures can be correlated in the logs.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))
		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		return next(ctx)
	}
}
