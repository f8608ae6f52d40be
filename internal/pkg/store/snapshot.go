package store

import (
	"context"
	"fmt"

	"github.com/ogzhnclk/northwind-api/internal/domain"
	"github.com/ogzhnclk/northwind-api/internal/pkg/store/xpgx"
	"github.com/ogzhnclk/northwind-api/internal/reports"
)

var (
	customerColumns       = []string{"customer_id", "company_name", "contact_name", "city", "country"}
	orderColumns          = []string{"order_id", "customer_id", "employee_id", "ship_via", "ship_country", "order_date"}
	orderDetailColumns    = []string{"order_id", "product_id", "unit_price", "quantity"}
	productColumns        = []string{"product_id", "product_name", "supplier_id", "category_id", "quantity_per_unit", "unit_price", "units_in_stock", "units_on_order", "reorder_level", "discontinued"}
	supplierColumns       = []string{"supplier_id", "company_name", "postal_code"}
	categoryColumns       = []string{"category_id"}
	shipperColumns        = []string{"shipper_id", "company_name"}
	employeeColumns       = []string{"employee_id", "first_name", "last_name", "home_phone"}
	productSalesColumns   = []string{"product_name", "product_sales"}
	stockedProductColumns = []string{"supplier_id", "unit_price", "units_in_stock"}
)

// LoadSnapshot reads every entity collection the report catalog may touch.
// The reads run sequentially inside one repeatable-read read-only
// transaction, so the collections form a single consistent view and no
// foreign key can dangle across them.
func (s *store) LoadSnapshot(ctx context.Context) (*reports.Snapshot, error) {
	snap := &reports.Snapshot{}

	err := s.pool.ReadTx(ctx, func(q xpgx.Querier) error {
		return loadAll(ctx, q, snap)
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func loadAll(ctx context.Context, q xpgx.Querier, snap *reports.Snapshot) error {
	if err := listInto(ctx, q, tableCustomers, customerColumns, &snap.Customers); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableOrders, orderColumns, &snap.Orders); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableOrderDetails, orderDetailColumns, &snap.OrderDetails); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableProducts, productColumns, &snap.Products); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableSuppliers, supplierColumns, &snap.Suppliers); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableCategories, categoryColumns, &snap.Categories); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableShippers, shipperColumns, &snap.Shippers); err != nil {
		return err
	}
	if err := listInto(ctx, q, tableEmployees, employeeColumns, &snap.Employees); err != nil {
		return err
	}
	if err := listInto(ctx, q, viewAlphabeticalProducts, stockedProductColumns, &snap.StockedProducts); err != nil {
		return err
	}

	salesQuery := builder().Select(productSalesColumns...).From(viewProductSales1997)
	sales, err := xpgx.Selectx[domain.ProductSales](ctx, q, salesQuery)
	if err != nil {
		return fmt.Errorf("select %s: %w", viewProductSales1997, wrapErr(err))
	}
	snap.ProductSalesByYear = map[int][]domain.ProductSales{1997: sales}

	return nil
}

func listInto[T any](ctx context.Context, q xpgx.Querier, table string, columns []string, dest *[]T) error {
	query := builder().Select(columns...).From(table)

	selected, err := xpgx.Selectx[T](ctx, q, query)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, wrapErr(err))
	}

	*dest = selected
	return nil
}
