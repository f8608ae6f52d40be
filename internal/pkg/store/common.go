package store

import (
	"errors"
	"github.com/ogzhnclk/northwind-api/internal/pkg/constants"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	tableCustomers    = "customers"
	tableOrders       = "orders"
	tableOrderDetails = "order_details"
	tableProducts     = "products"
	tableSuppliers    = "suppliers"
	tableCategories   = "categories"
	tableShippers     = "shippers"
	tableEmployees    = "employees"

	// precomputed views shipped with the stock Northwind schema
	viewProductSales1997     = "product_sales_for_1997"
	viewAlphabeticalProducts = "alphabetical_list_of_products"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return constants.ErrDBUnavailable
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
