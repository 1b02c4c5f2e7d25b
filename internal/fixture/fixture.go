// Package fixture is an in-process stand-in for the upstream ERP API.
// It serves the exact wire shapes the reconciliation client consumes,
// including the string-vs-object reference inconsistency of the real
// backend, on top of a throwaway sqlite database. Tests run the client
// against it via httptest, and it backs local development when no real
// upstream is configured.
package fixture

import (
	"database/sql/driver"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is one upstream account entry. The Branch*, Material* and
// Order* column groups control how the references are rendered: a
// record with only an id renders the bare string shape, a record with
// nested fields renders the populated object shape.
type Account struct {
	ID              string `gorm:"primaryKey"`
	AccountID       string
	Type            string
	Category        string
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date            time.Time
	PaymentStatus   string
	VendorName      string
	ReferenceNumber string
	SupplierID      string

	BranchID   string
	BranchName string
	BranchCode string

	MaterialID           string
	MaterialName         string
	MaterialSupplierID   string
	MaterialSupplierName string

	OrderID           string
	OrderCustomerType string
	OrderCourierID    string
	OrderCourierName  string
}

// Supplier is an upstream raw-material supplier record.
type Supplier struct {
	SupplierID   string `gorm:"primaryKey"`
	SupplierName string
	Email        string
	Phone        string
	IsActive     bool
}

// CourierPartner is an upstream courier partner record.
type CourierPartner struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	IsActive bool
}

// Branch is an upstream branch record.
type Branch struct {
	ID         string `gorm:"primaryKey"`
	BranchName string
	BranchCode string
	IsActive   bool
}

// Server serves the upstream API from a sqlite database.
type Server struct {
	DB *gorm.DB

	// ReportTotalPages overrides the page count the accounts endpoint
	// reports, for exercising the client's page cap.
	ReportTotalPages int

	// FailOnPage makes the accounts endpoint return a 500 for the
	// given page, for exercising the client's abort semantics.
	FailOnPage int

	// MaxLimit clamps the limit query parameter the way a real
	// backend would, so tests can force multi-page responses with
	// small datasets.
	MaxLimit int
}

// Open connects to the sqlite database for the fixture and migrates
// its schema. Use ":memory:" for a throwaway instance.
func Open(dsn string) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(Account{}, Supplier{}, CourierPartner{}, Branch{})
	if err != nil {
		return nil, err
	}

	return &Server{DB: db}, nil
}

// Router returns the gin engine serving the upstream API shape.
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.GET("/accounts", s.getAccounts)
	r.GET("/accounts/vendors/unique-names", s.getUniqueVendorNames)
	r.GET("/inventory/suppliers", s.getSuppliers)
	r.GET("/courier-partners", s.getCourierPartners)
	r.GET("/branches", s.getBranches)

	return r
}

func (s *Server) pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if s.MaxLimit > 0 && limit > s.MaxLimit {
		limit = s.MaxLimit
	}

	return page, limit
}

func totalPages(totalItems int64, limit int) int {
	return int((totalItems + int64(limit) - 1) / int64(limit))
}

func (s *Server) getAccounts(c *gin.Context) {
	page, limit := s.pageParams(c)

	if s.FailOnPage > 0 && page == s.FailOnPage {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "injected failure"})
		return
	}

	q := s.DB.Model(&Account{}).Order("date DESC, id ASC")

	if branchID := c.Query("branchId"); branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	if startDate := c.Query("startDate"); startDate != "" {
		if start, err := time.Parse(time.RFC3339, startDate); err == nil {
			q = q.Where("date >= ?", start)
		}
	}
	if endDate := c.Query("endDate"); endDate != "" {
		if end, err := time.Parse(time.RFC3339, endDate); err == nil {
			q = q.Where("date <= ?", end)
		}
	}

	var totalItems int64
	if err := q.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var accounts []Account
	err := q.Offset((page - 1) * limit).Limit(limit).Find(&accounts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rendered := make([]gin.H, 0, len(accounts))
	for _, account := range accounts {
		rendered = append(rendered, account.render())
	}

	pages := totalPages(totalItems, limit)
	if s.ReportTotalPages > 0 {
		pages = s.ReportTotalPages
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"accounts": rendered,
			"pagination": gin.H{
				"totalPages": pages,
				"totalItems": totalItems,
			},
		},
	})
}

// render produces the upstream JSON shape for one account entry.
func (a Account) render() gin.H {
	h := gin.H{
		"_id":             a.ID,
		"accountId":       a.AccountID,
		"transactionType": a.Type,
		"category":        a.Category,
		"amount":          a.Amount,
		"transactionDate": a.Date.In(time.UTC),
		"paymentStatus":   a.PaymentStatus,
		"vendorName":      a.VendorName,
		"referenceNumber": a.ReferenceNumber,
		"supplierId":      a.SupplierID,
	}

	switch {
	case a.BranchName != "":
		h["branchId"] = gin.H{"_id": a.BranchID, "branchName": a.BranchName, "branchCode": a.BranchCode}
	case a.BranchID != "":
		h["branchId"] = a.BranchID
	}

	switch {
	case a.MaterialSupplierID != "" || a.MaterialSupplierName != "":
		h["rawMaterialId"] = gin.H{
			"_id":          a.MaterialID,
			"materialName": a.MaterialName,
			"supplierId":   a.MaterialSupplierID,
			"supplierName": a.MaterialSupplierName,
		}
	case a.MaterialID != "":
		h["rawMaterialId"] = a.MaterialID
	}

	switch {
	case a.OrderCustomerType != "" || a.OrderCourierID != "":
		order := gin.H{"_id": a.OrderID, "customerType": a.OrderCustomerType}
		if a.OrderCourierName != "" {
			order["courierPartnerId"] = gin.H{"_id": a.OrderCourierID, "name": a.OrderCourierName}
		} else if a.OrderCourierID != "" {
			order["courierPartnerId"] = a.OrderCourierID
		}
		h["orderId"] = order
	case a.OrderID != "":
		h["orderId"] = a.OrderID
	}

	return h
}

// sqliteTime scans sqlite datetime values that come back as bare
// strings. That happens for aggregate columns like MAX(date), where
// the driver has no declared column type to trigger its own time
// parsing. JSON output is identical to time.Time.
type sqliteTime struct{ time.Time }

func (t sqliteTime) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *sqliteTime) Scan(v any) error {
	switch s := v.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = s
		return nil
	case string:
		for _, f := range []string{
			"2006-01-02 15:04:05.999999999-07:00",
			"2006-01-02T15:04:05.999999999-07:00",
			"2006-01-02 15:04:05.999999999",
			"2006-01-02 15:04:05",
		} {
			if parsed, err := time.ParseInLocation(f, strings.TrimSuffix(s, "Z"), time.UTC); err == nil {
				t.Time = parsed
				return nil
			}
		}
		return fmt.Errorf("cannot parse %q as datetime", s)
	default:
		return fmt.Errorf("cannot scan %T as datetime", v)
	}
}

func (s *Server) getUniqueVendorNames(c *gin.Context) {
	type row struct {
		VendorName          string          `json:"vendorName"`
		ReferenceNumber     string          `json:"referenceNumber"`
		TransactionCount    int             `json:"transactionCount"`
		TotalAmount         decimal.Decimal `json:"totalAmount"`
		LastTransactionDate sqliteTime      `json:"lastTransactionDate"`
	}

	var rows []row
	err := s.DB.Model(&Account{}).
		Select("vendor_name AS vendor_name, reference_number AS reference_number, COUNT(*) AS transaction_count, SUM(amount) AS total_amount, MAX(date) AS last_transaction_date").
		Where("vendor_name <> ''").
		Group("vendor_name").Group("reference_number").
		Order("vendor_name ASC").Order("reference_number ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) getSuppliers(c *gin.Context) {
	page, limit := s.pageParams(c)

	var totalItems int64
	if err := s.DB.Model(&Supplier{}).Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var suppliers []Supplier
	err := s.DB.Order("supplier_name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&suppliers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rendered := make([]gin.H, 0, len(suppliers))
	for _, supplier := range suppliers {
		rendered = append(rendered, gin.H{
			"supplierId":   supplier.SupplierID,
			"supplierName": supplier.SupplierName,
			"email":        supplier.Email,
			"phone":        supplier.Phone,
			"isActive":     supplier.IsActive,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": rendered,
		"pagination": gin.H{
			"totalPages": totalPages(totalItems, limit),
			"totalItems": totalItems,
		},
	})
}

func (s *Server) getCourierPartners(c *gin.Context) {
	page, limit := s.pageParams(c)

	q := s.DB.Model(&CourierPartner{})
	if isActive := c.Query("isActive"); isActive != "" {
		q = q.Where("is_active = ?", isActive == "true")
	}

	var totalItems int64
	if err := q.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var couriers []CourierPartner
	err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&couriers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rendered := make([]gin.H, 0, len(couriers))
	for _, courier := range couriers {
		rendered = append(rendered, gin.H{
			"_id":      courier.ID,
			"name":     courier.Name,
			"isActive": courier.IsActive,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"courierPartners": rendered},
		"pagination": gin.H{
			"totalPages": totalPages(totalItems, limit),
			"totalItems": totalItems,
		},
	})
}

func (s *Server) getBranches(c *gin.Context) {
	var branches []Branch
	if err := s.DB.Order("branch_name ASC").Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rendered := make([]gin.H, 0, len(branches))
	for _, branch := range branches {
		rendered = append(rendered, gin.H{
			"_id":        branch.ID,
			"branchName": branch.BranchName,
			"branchCode": branch.BranchCode,
			"isActive":   branch.IsActive,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": rendered})
}
