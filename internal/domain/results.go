package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// One named record per report; these are the shapes the API serializes.

type CountryOrderCount struct {
	ShipCountry string `json:"shipCountry"`
	OrderCount  int    `json:"orderCount"`
}

type SupplierRevenue struct {
	SupplierID   int             `json:"supplierId"`
	CompanyName  string          `json:"companyName"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type ShipperOrderCount struct {
	ShipperID   int    `json:"shipperId"`
	CompanyName string `json:"companyName"`
	OrderCount  int    `json:"orderCount"`
}

type CustomerOrderStats struct {
	CustomerID      string `json:"customerId"`
	ContactName     string `json:"contactName"`
	CompanyName     string `json:"companyName"`
	City            string `json:"city"`
	TotalOrderCount int    `json:"totalOrderCount"`
}

type CustomerOrderDate struct {
	CustomerID  string    `json:"customerId"`
	ContactName string    `json:"contactName"`
	OrderDate   time.Time `json:"orderDate"`
}

type EmployeeContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	HomePhone string `json:"homePhone"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
