// Package reports is the catalog of analytical report definitions. Every
// report is a pure function from an immutable Snapshot to an ordered slice of
// result records: joins are prebuilt key lookup maps, groups are accumulated
// in maps and sorted explicitly, truncation happens after the sort. Reports
// never touch I/O and an empty result is a valid outcome, not an error.
package reports

import (
	"sort"
	"time"

	"github.com/ogzhnclk/northwind-api/internal/domain"
	"github.com/shopspring/decimal"
)

// TopShippingCountries groups orders by ship country and returns the n
// busiest countries. Ties are broken by country name ascending so the
// ordering is deterministic.
func TopShippingCountries(snap *Snapshot, n int) []domain.CountryOrderCount {
	counts := make(map[string]int)
	for _, o := range snap.Orders {
		counts[o.ShipCountry]++
	}

	out := make([]domain.CountryOrderCount, 0, len(counts))
	for country, count := range counts {
		out = append(out, domain.CountryOrderCount{ShipCountry: country, OrderCount: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderCount != out[j].OrderCount {
			return out[i].OrderCount > out[j].OrderCount
		}
		return out[i].ShipCountry < out[j].ShipCountry
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// BeverageCategoryProducts returns every product in the given category,
// ordered by product id ascending.
func BeverageCategoryProducts(snap *Snapshot, categoryID int) []domain.Product {
	var out []domain.Product
	for _, p := range snap.Products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// TotalRevenueForYear sums the precomputed per-product sales view for the
// given year. Years with no materialized view total zero.
func TotalRevenueForYear(snap *Snapshot, year int) decimal.Decimal {
	total := decimal.Zero
	for _, ps := range snap.ProductSalesByYear[year] {
		total = total.Add(ps.SalesAmount)
	}
	return total
}

// TopSuppliersByInventoryValue joins suppliers to the stocked-product view,
// values each row at unit price times units in stock, and returns the n
// suppliers with the highest summed value. Ties are broken by supplier id
// ascending.
func TopSuppliersByInventoryValue(snap *Snapshot, n int) []domain.SupplierRevenue {
	byID := snap.suppliersByID()

	totals := make(map[int]decimal.Decimal)
	for _, sp := range snap.StockedProducts {
		if _, ok := byID[sp.SupplierID]; !ok {
			continue // inner join drops unmatched rows
		}
		rowValue := sp.UnitPrice.Mul(decimal.NewFromInt(int64(sp.UnitsInStock)))
		totals[sp.SupplierID] = totals[sp.SupplierID].Add(rowValue)
	}

	out := make([]domain.SupplierRevenue, 0, len(totals))
	for id, total := range totals {
		out = append(out, domain.SupplierRevenue{
			SupplierID:   id,
			CompanyName:  byID[id].CompanyName,
			TotalRevenue: total,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalRevenue.Cmp(out[j].TotalRevenue); c != 0 {
			return c > 0
		}
		return out[i].SupplierID < out[j].SupplierID
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ShipperOrderCounts joins shippers to orders on ship_via and counts orders
// per shipper, busiest first. Shippers with no orders are dropped (inner
// join); ties are broken by shipper id ascending.
func ShipperOrderCounts(snap *Snapshot) []domain.ShipperOrderCount {
	counts := make(map[int]int)
	for _, o := range snap.Orders {
		counts[o.ShipVia]++
	}

	var out []domain.ShipperOrderCount
	for _, sh := range snap.Shippers {
		if count, ok := counts[sh.ShipperID]; ok {
			out = append(out, domain.ShipperOrderCount{
				ShipperID:   sh.ShipperID,
				CompanyName: sh.CompanyName,
				OrderCount:  count,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderCount != out[j].OrderCount {
			return out[i].OrderCount > out[j].OrderCount
		}
		return out[i].ShipperID < out[j].ShipperID
	})
	return out
}

// FrequentCustomers returns the customers with at least minOrders orders,
// ordered by order count descending. The count is distinct orders, not order
// detail lines: the join is Customer to Order, one row per order. Ties are
// broken by customer id ascending.
func FrequentCustomers(snap *Snapshot, minOrders int) []domain.CustomerOrderStats {
	byCustomer := snap.ordersByCustomer()

	var out []domain.CustomerOrderStats
	for _, c := range snap.Customers {
		orders := byCustomer[c.CustomerID]
		if len(orders) == 0 || len(orders) < minOrders {
			continue
		}
		out = append(out, domain.CustomerOrderStats{
			CustomerID:      c.CustomerID,
			ContactName:     c.ContactName,
			CompanyName:     c.CompanyName,
			City:            c.City,
			TotalOrderCount: len(orders),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalOrderCount != out[j].TotalOrderCount {
			return out[i].TotalOrderCount > out[j].TotalOrderCount
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}

// CustomersWithOrdersAfter returns one record per order placed strictly
// after the given date, earliest first. Orders with no order date are
// excluded, never defaulted.
func CustomersWithOrdersAfter(snap *Snapshot, after time.Time) []domain.CustomerOrderDate {
	contacts := make(map[string]string, len(snap.Customers))
	for _, c := range snap.Customers {
		contacts[c.CustomerID] = c.ContactName
	}

	var out []domain.CustomerOrderDate
	for _, o := range snap.Orders {
		if o.OrderDate == nil || !o.OrderDate.After(after) {
			continue
		}
		contact, ok := contacts[o.CustomerID]
		if !ok {
			continue
		}
		out = append(out, domain.CustomerOrderDate{
			CustomerID:  o.CustomerID,
			ContactName: contact,
			OrderDate:   *o.OrderDate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out
}

// ShippersMatchingID applies a deliberately degenerate filter: the shipper's
// id and the order's ship_via are both forced to the same constant, so the
// result is the shipper itself when it has at least one order shipped via it,
// and empty otherwise.
func ShippersMatchingID(snap *Snapshot, shipperID int) []domain.Shipper {
	hasOrder := false
	for _, o := range snap.Orders {
		if o.ShipVia == shipperID {
			hasOrder = true
			break
		}
	}
	if !hasOrder {
		return nil
	}

	var out []domain.Shipper
	for _, sh := range snap.Shippers {
		if sh.ShipperID == shipperID {
			out = append(out, sh)
		}
	}
	return out
}

// EmployeeOrdersInMonth returns the full orders handled by one employee in a
// calendar month. Orders with no order date never match.
func EmployeeOrdersInMonth(snap *Snapshot, employeeID, year int, month time.Month) []domain.Order {
	var out []domain.Order
	for _, o := range snap.Orders {
		if o.EmployeeID != employeeID || o.OrderDate == nil {
			continue
		}
		if o.OrderDate.Year() == year && o.OrderDate.Month() == month {
			out = append(out, o)
		}
	}
	return out
}

// SpeedyExpressOrders returns the orders handled by one employee for a fixed
// set of customers and shipped via one shipper. The result order is the
// snapshot's order; the filter is what the report defines.
func SpeedyExpressOrders(snap *Snapshot, employeeID int, customerIDs []string, shipVia int) []domain.Order {
	wanted := make(map[string]struct{}, len(customerIDs))
	for _, id := range customerIDs {
		wanted[id] = struct{}{}
	}

	var out []domain.Order
	for _, o := range snap.Orders {
		if o.EmployeeID != employeeID || o.ShipVia != shipVia {
			continue
		}
		if _, ok := wanted[o.CustomerID]; ok {
			out = append(out, o)
		}
	}
	return out
}

// CustomersByCountry returns the full customer records for one country.
// The match is case-sensitive and exact.
func CustomersByCountry(snap *Snapshot, country string) []domain.Customer {
	var out []domain.Customer
	for _, c := range snap.Customers {
		if c.Country == country {
			out = append(out, c)
		}
	}
	return out
}

// DistinctEmployeeContacts joins Product to Supplier, Category, OrderDetail,
// Order and Employee, keeps products outside the excluded category whose
// supplier has the given postal code, and returns the distinct employee
// contacts that handled any matching order. Results appear in first-seen
// order.
func DistinctEmployeeContacts(snap *Snapshot, excludedCategoryID int, supplierPostalCode string) []domain.EmployeeContact {
	suppliers := snap.suppliersByID()
	categories := snap.categoryIDs()
	details := snap.detailsByProduct()
	orders := snap.ordersByID()
	employees := snap.employeesByID()

	seen := make(map[domain.EmployeeContact]struct{})
	var out []domain.EmployeeContact

	for _, p := range snap.Products {
		if p.CategoryID == excludedCategoryID {
			continue
		}
		if _, ok := categories[p.CategoryID]; !ok {
			continue
		}
		sup, ok := suppliers[p.SupplierID]
		if !ok || sup.PostalCode != supplierPostalCode {
			continue
		}

		for _, d := range details[p.ProductID] {
			o, ok := orders[d.OrderID]
			if !ok {
				continue
			}
			e, ok := employees[o.EmployeeID]
			if !ok {
				continue
			}
			contact := domain.EmployeeContact{
				FirstName: e.FirstName,
				LastName:  e.LastName,
				HomePhone: e.HomePhone,
			}
			if _, dup := seen[contact]; dup {
				continue
			}
			seen[contact] = struct{}{}
			out = append(out, contact)
		}
	}
	return out
}
