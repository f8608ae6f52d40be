package reports

import (
	"github.com/ogzhnclk/northwind-api/internal/domain"
)

// Snapshot is a point-in-time view of every entity collection a report may
// read. It is materialized by the store once per report invocation and never
// mutated afterwards, so any number of reports may evaluate it concurrently.
type Snapshot struct {
	Customers       []domain.Customer
	Orders          []domain.Order
	OrderDetails    []domain.OrderDetail
	Products        []domain.Product
	Suppliers       []domain.Supplier
	Categories      []domain.Category
	Shippers        []domain.Shipper
	Employees       []domain.Employee
	StockedProducts []domain.StockedProduct

	// ProductSalesByYear holds the precomputed per-product sales views keyed
	// by the year they were materialized for. The stock Northwind schema only
	// ships the 1997 view; years with no view sum to zero.
	ProductSalesByYear map[int][]domain.ProductSales
}

// ordersByCustomer indexes orders by customer id for equi-joins. Built once
// per report instead of nested scans.
func (s *Snapshot) ordersByCustomer() map[string][]domain.Order {
	idx := make(map[string][]domain.Order, len(s.Customers))
	for _, o := range s.Orders {
		idx[o.CustomerID] = append(idx[o.CustomerID], o)
	}
	return idx
}

func (s *Snapshot) ordersByID() map[int]domain.Order {
	idx := make(map[int]domain.Order, len(s.Orders))
	for _, o := range s.Orders {
		idx[o.OrderID] = o
	}
	return idx
}

func (s *Snapshot) employeesByID() map[int]domain.Employee {
	idx := make(map[int]domain.Employee, len(s.Employees))
	for _, e := range s.Employees {
		idx[e.EmployeeID] = e
	}
	return idx
}

func (s *Snapshot) suppliersByID() map[int]domain.Supplier {
	idx := make(map[int]domain.Supplier, len(s.Suppliers))
	for _, sup := range s.Suppliers {
		idx[sup.SupplierID] = sup
	}
	return idx
}

func (s *Snapshot) categoryIDs() map[int]struct{} {
	idx := make(map[int]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		idx[c.CategoryID] = struct{}{}
	}
	return idx
}

func (s *Snapshot) detailsByProduct() map[int][]domain.OrderDetail {
	idx := make(map[int][]domain.OrderDetail, len(s.Products))
	for _, d := range s.OrderDetails {
		idx[d.ProductID] = append(idx[d.ProductID], d)
	}
	return idx
}
