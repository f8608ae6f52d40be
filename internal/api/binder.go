package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ogzhnclk/northwind-api/internal/pkg/constants"
)

// Binder binds query params and validates the target in one step.
type Binder struct {
	binder echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.binder.Bind(i, ctx); err != nil {
		return constants.NewCodedError(err.Error(), constants.ErrBadRequest.Code())
	}
	return ctx.Validate(i)
}
