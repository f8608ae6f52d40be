package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ogzhnclk/northwind-api/internal/domain"
	"github.com/ogzhnclk/northwind-api/internal/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	snap *reports.Snapshot
	err  error
}

func (s *stubStore) LoadSnapshot(ctx context.Context) (*reports.Snapshot, error) {
	return s.snap, s.err
}

func testSnapshot() *reports.Snapshot {
	d := time.Date(1997, time.March, 4, 0, 0, 0, 0, time.UTC)
	return &reports.Snapshot{
		Customers: []domain.Customer{
			{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste", ContactName: "Maria Anders", City: "Berlin", Country: "Germany"},
		},
		Orders: []domain.Order{
			{OrderID: 1, CustomerID: "ALFKI", EmployeeID: 1, ShipVia: 1, ShipCountry: "Germany", OrderDate: &d},
			{OrderID: 2, CustomerID: "ALFKI", EmployeeID: 1, ShipVia: 1, ShipCountry: "Germany", OrderDate: &d},
			{OrderID: 3, CustomerID: "ALFKI", EmployeeID: 1, ShipVia: 1, ShipCountry: "Brazil", OrderDate: &d},
		},
		Shippers: []domain.Shipper{{ShipperID: 1, CompanyName: "Speedy Express"}},
		ProductSalesByYear: map[int][]domain.ProductSales{
			1997: {{ProductName: "Chai", SalesAmount: decimal.RequireFromString("100.50")}},
		},
	}
}

func request(t *testing.T, svc *APIService, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	return rec
}

func TestTopSelling3Route(t *testing.T) {
	svc, err := NewAPIService(&stubStore{snap: testSnapshot()})
	require.NoError(t, err)

	rec := request(t, svc, "/api/nortwind/TopSelling3")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.CountryOrderCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, domain.CountryOrderCount{ShipCountry: "Germany", OrderCount: 2}, got[0])
	assert.Equal(t, domain.CountryOrderCount{ShipCountry: "Brazil", OrderCount: 1}, got[1])
}

func TestTopSelling3RouteRejectsBadParam(t *testing.T) {
	svc, err := NewAPIService(&stubStore{snap: testSnapshot()})
	require.NoError(t, err)

	rec := request(t, svc, "/api/nortwind/TopSelling3?n=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(t, svc, "/api/nortwind/TopSelling3?n=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTotalRevenuesRoute(t *testing.T) {
	svc, err := NewAPIService(&stubStore{snap: testSnapshot()})
	require.NoError(t, err)

	rec := request(t, svc, "/api/nortwind/TotalRevenues1917")
	require.Equal(t, http.StatusOK, rec.Code)

	var total decimal.Decimal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))
	assert.True(t, total.Equal(decimal.RequireFromString("100.50")), "got %s", total)

	// a year with no materialized sales view totals exactly zero
	rec = request(t, svc, "/api/nortwind/TotalRevenues1917?year=1996")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))
	assert.True(t, total.IsZero(), "got %s", total)
}

func TestCollaboratorFailureIsOpaque500(t *testing.T) {
	svc, err := NewAPIService(&stubStore{err: errors.New("connection refused")})
	require.NoError(t, err)

	rec := request(t, svc, "/api/nortwind/ShipperOrderCounts")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Message, "connection refused")
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	svc, err := NewAPIService(&stubStore{snap: testSnapshot()})
	require.NoError(t, err)

	rec := request(t, svc, "/api/nortwind/GetGermanyCustomer")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
