// Package reports wires the data-access collaborator to the report catalog:
// every call materializes one snapshot and evaluates one pure report over it.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/ogzhnclk/northwind-api/internal/domain"
	"github.com/ogzhnclk/northwind-api/internal/pkg/logger"
	"github.com/ogzhnclk/northwind-api/internal/pkg/store"
	"github.com/ogzhnclk/northwind-api/internal/reports"
	"github.com/shopspring/decimal"
)

type Service struct {
	store store.Store
}

func NewReportsService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) snapshot(ctx context.Context) (*reports.Snapshot, error) {
	snap, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		logger.Errorf(ctx, "load snapshot: %s", err.Error())
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

func (s *Service) TopShippingCountries(ctx context.Context, n int) ([]domain.CountryOrderCount, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.TopShippingCountries(snap, n), nil
}

func (s *Service) BeverageCategoryProducts(ctx context.Context, categoryID int) ([]domain.Product, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.BeverageCategoryProducts(snap, categoryID), nil
}

func (s *Service) TotalRevenueForYear(ctx context.Context, year int) (decimal.Decimal, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return reports.TotalRevenueForYear(snap, year), nil
}

func (s *Service) TopSuppliersByInventoryValue(ctx context.Context, n int) ([]domain.SupplierRevenue, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.TopSuppliersByInventoryValue(snap, n), nil
}

func (s *Service) ShipperOrderCounts(ctx context.Context) ([]domain.ShipperOrderCount, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ShipperOrderCounts(snap), nil
}

func (s *Service) FrequentCustomers(ctx context.Context, minOrders int) ([]domain.CustomerOrderStats, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.FrequentCustomers(snap, minOrders), nil
}

func (s *Service) CustomersWithOrdersAfter(ctx context.Context, after time.Time) ([]domain.CustomerOrderDate, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.CustomersWithOrdersAfter(snap, after), nil
}

func (s *Service) ShippersMatchingID(ctx context.Context, shipperID int) ([]domain.Shipper, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ShippersMatchingID(snap, shipperID), nil
}

func (s *Service) EmployeeOrdersInMonth(ctx context.Context, employeeID, year int, month time.Month) ([]domain.Order, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.EmployeeOrdersInMonth(snap, employeeID, year, month), nil
}

func (s *Service) SpeedyExpressOrders(ctx context.Context, employeeID int, customerIDs []string, shipVia int) ([]domain.Order, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.SpeedyExpressOrders(snap, employeeID, customerIDs, shipVia), nil
}

func (s *Service) CustomersByCountry(ctx context.Context, country string) ([]domain.Customer, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.CustomersByCountry(snap, country), nil
}

func (s *Service) DistinctEmployeeContacts(ctx context.Context, excludedCategoryID int, supplierPostalCode string) ([]domain.EmployeeContact, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reports.DistinctEmployeeContacts(snap, excludedCategoryID, supplierPostalCode), nil
}
