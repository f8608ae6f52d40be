package controller

import (
	reportsService "github.com/ogzhnclk/northwind-api/internal/service/reports"
)

type Controller struct {
	service *reportsService.Service
}

func NewController(service *reportsService.Service) *Controller {
	return &Controller{service: service}
}
