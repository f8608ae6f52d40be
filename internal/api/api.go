package api

import (
	"context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ogzhnclk/northwind-api/internal/api/controller"
	"github.com/ogzhnclk/northwind-api/internal/pkg/store"
	reportsService "github.com/ogzhnclk/northwind-api/internal/service/reports"
)

type APIService struct {
	router         *echo.Echo
	reportsService *reportsService.Service
}

func (svc *APIService) Serve(addr string) error {
	return svc.router.Start(addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type"},
	}))

	svc.reportsService = reportsService.NewReportsService(store)

	api := svc.router.Group("/api")
	cntrl := controller.NewController(svc.reportsService)

	// route names are the catalog's published report actions
	nortwind := api.Group("/nortwind")
	nortwind.GET("/TopSelling3", cntrl.TopSelling3)
	nortwind.GET("/GetBeveragesCategories", cntrl.GetBeveragesCategories)
	nortwind.GET("/TotalRevenues1917", cntrl.TotalRevenues)
	nortwind.GET("/GetTop3Suppliers", cntrl.GetTop3Suppliers)
	nortwind.GET("/ShipperOrderCounts", cntrl.ShipperOrderCounts)
	nortwind.GET("/CustomerOrdersLeast15", cntrl.CustomerOrdersLeast15)
	nortwind.GET("/CustomerNameAfter1917", cntrl.CustomerNameAfter)
	nortwind.GET("/ShippingWithFederal", cntrl.ShippingWithFederal)
	nortwind.GET("/Steven97Report", cntrl.EmployeeMonthReport)
	nortwind.GET("/speedy", cntrl.SpeedyExpress)
	nortwind.GET("/GetGermanyCustomer", cntrl.GetCustomersByCountry)
	nortwind.GET("/Seafood", cntrl.DistinctEmployeeContacts)

	return svc, nil
}
