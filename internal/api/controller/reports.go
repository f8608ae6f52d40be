package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ogzhnclk/northwind-api/internal/pkg/constants"
)

// Each handler carries the default constants of its catalog definition and
// lets query params override them, so a bare route answers the stock report.

func (c *Controller) TopSelling3(ctx echo.Context) error {
	params := struct {
		N int `query:"n" validate:"min=1"`
	}{N: 3}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	countries, err := c.service.TopShippingCountries(ctx.Request().Context(), params.N)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, countries)
}

func (c *Controller) GetBeveragesCategories(ctx echo.Context) error {
	params := struct {
		CategoryID int `query:"categoryId" validate:"min=1"`
	}{CategoryID: 1}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	products, err := c.service.BeverageCategoryProducts(ctx.Request().Context(), params.CategoryID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, products)
}

func (c *Controller) TotalRevenues(ctx echo.Context) error {
	params := struct {
		Year int `query:"year" validate:"min=1900"`
	}{Year: 1997}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	total, err := c.service.TotalRevenueForYear(ctx.Request().Context(), params.Year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, total)
}

func (c *Controller) GetTop3Suppliers(ctx echo.Context) error {
	params := struct {
		N int `query:"n" validate:"min=1"`
	}{N: 3}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	suppliers, err := c.service.TopSuppliersByInventoryValue(ctx.Request().Context(), params.N)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, suppliers)
}

func (c *Controller) ShipperOrderCounts(ctx echo.Context) error {
	counts, err := c.service.ShipperOrderCounts(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, counts)
}

func (c *Controller) CustomerOrdersLeast15(ctx echo.Context) error {
	params := struct {
		MinOrders int `query:"minOrders" validate:"min=1"`
	}{MinOrders: 15}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	customers, err := c.service.FrequentCustomers(ctx.Request().Context(), params.MinOrders)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, customers)
}

func (c *Controller) CustomerNameAfter(ctx echo.Context) error {
	after := time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)
	if raw := ctx.QueryParam("after"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return constants.NewCodedError("after must be YYYY-MM-DD", http.StatusBadRequest)
		}
		after = parsed
	}

	orders, err := c.service.CustomersWithOrdersAfter(ctx.Request().Context(), after)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (c *Controller) ShippingWithFederal(ctx echo.Context) error {
	params := struct {
		ShipperID int `query:"shipperId" validate:"min=1"`
	}{ShipperID: 3}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	shippers, err := c.service.ShippersMatchingID(ctx.Request().Context(), params.ShipperID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shippers)
}

func (c *Controller) EmployeeMonthReport(ctx echo.Context) error {
	params := struct {
		EmployeeID int `query:"employeeId" validate:"min=1"`
		Year       int `query:"year" validate:"min=1900"`
		Month      int `query:"month" validate:"min=1,max=12"`
	}{EmployeeID: 5, Year: 1997, Month: 3}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	orders, err := c.service.EmployeeOrdersInMonth(ctx.Request().Context(), params.EmployeeID, params.Year, time.Month(params.Month))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (c *Controller) SpeedyExpress(ctx echo.Context) error {
	params := struct {
		EmployeeID int    `query:"employeeId" validate:"min=1"`
		ShipperID  int    `query:"shipperId" validate:"min=1"`
		Customers  string `query:"customerIds"`
	}{EmployeeID: 1, ShipperID: 1, Customers: "DUMON,ALFKI"}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	customerIDs := strings.Split(params.Customers, ",")

	orders, err := c.service.SpeedyExpressOrders(ctx.Request().Context(), params.EmployeeID, customerIDs, params.ShipperID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (c *Controller) GetCustomersByCountry(ctx echo.Context) error {
	params := struct {
		Country string `query:"country"`
	}{Country: "Germany"}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	customers, err := c.service.CustomersByCountry(ctx.Request().Context(), params.Country)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, customers)
}

func (c *Controller) DistinctEmployeeContacts(ctx echo.Context) error {
	params := struct {
		ExcludeCategoryID int    `query:"excludeCategoryId" validate:"min=1"`
		PostalCode        string `query:"postalCode"`
	}{ExcludeCategoryID: 8, PostalCode: "33007"}
	if err := ctx.Bind(&params); err != nil {
		return err
	}

	contacts, err := c.service.DistinctEmployeeContacts(ctx.Request().Context(), params.ExcludeCategoryID, params.PostalCode)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, contacts)
}
