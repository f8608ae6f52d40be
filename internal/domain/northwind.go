package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID  string `db:"customer_id" json:"customerId"`
	CompanyName string `db:"company_name" json:"companyName"`
	ContactName string `db:"contact_name" json:"contactName"`
	City        string `db:"city" json:"city"`
	Country     string `db:"country" json:"country"`
}

type Order struct {
	OrderID     int        `db:"order_id" json:"orderId"`
	CustomerID  string     `db:"customer_id" json:"customerId"`
	EmployeeID  int        `db:"employee_id" json:"employeeId"`
	ShipVia     int        `db:"ship_via" json:"shipVia"`
	ShipCountry string     `db:"ship_country" json:"shipCountry"`
	OrderDate   *time.Time `db:"order_date" json:"orderDate"`
}

// OrderDetail has a composite key (order_id, product_id).
type OrderDetail struct {
	OrderID   int             `db:"order_id" json:"orderId"`
	ProductID int             `db:"product_id" json:"productId"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Quantity  int             `db:"quantity" json:"quantity"`
}

type Product struct {
	ProductID       int             `db:"product_id" json:"productId"`
	ProductName     string          `db:"product_name" json:"productName"`
	SupplierID      int             `db:"supplier_id" json:"supplierId"`
	CategoryID      int             `db:"category_id" json:"categoryId"`
	QuantityPerUnit string          `db:"quantity_per_unit" json:"quantityPerUnit"`
	UnitPrice       decimal.Decimal `db:"unit_price" json:"unitPrice"`
	UnitsInStock    int             `db:"units_in_stock" json:"unitsInStock"`
	UnitsOnOrder    int             `db:"units_on_order" json:"unitsOnOrder"`
	ReorderLevel    int             `db:"reorder_level" json:"reorderLevel"`
	Discontinued    bool            `db:"discontinued" json:"discontinued"`
}

type Supplier struct {
	SupplierID  int    `db:"supplier_id" json:"supplierId"`
	CompanyName string `db:"company_name" json:"companyName"`
	PostalCode  string `db:"postal_code" json:"postalCode"`
}

type Category struct {
	CategoryID int `db:"category_id" json:"categoryId"`
}

type Shipper struct {
	ShipperID   int    `db:"shipper_id" json:"shipperId"`
	CompanyName string `db:"company_name" json:"companyName"`
}

type Employee struct {
	EmployeeID int    `db:"employee_id" json:"employeeId"`
	FirstName  string `db:"first_name" json:"firstName"`
	LastName   string `db:"last_name" json:"lastName"`
	HomePhone  string `db:"home_phone" json:"homePhone"`
}

// ProductSales is one row of the precomputed per-product yearly sales view
// (product_sales_for_1997 in the stock Northwind schema).
type ProductSales struct {
	ProductName string          `db:"product_name" json:"productName"`
	SalesAmount decimal.Decimal `db:"product_sales" json:"productSales"`
}

// StockedProduct is one row of the alphabetical_list_of_products view; only
// the columns the supplier revenue ranking reads are carried.
type StockedProduct struct {
	SupplierID   int             `db:"supplier_id" json:"supplierId"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unitPrice"`
	UnitsInStock int             `db:"units_in_stock" json:"unitsInStock"`
}
