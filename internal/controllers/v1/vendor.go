package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"

	"github.com/vendorledger/backend/internal/httputil"
	"github.com/vendorledger/backend/internal/ledger"
	"github.com/vendorledger/backend/internal/models"
)

// defaultPageSize is the page size used when the request does not
// specify one.
const defaultPageSize = 50

// Controller serves the reconciled vendor ledger API.
type Controller struct {
	Service *ledger.Service
}

// RegisterVendorRoutes registers the routes for vendors with the
// RouterGroup that is passed.
func (co Controller) RegisterVendorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetVendors)

	r.OPTIONS("/ledger", httputil.OptionsGet)
	r.GET("/ledger", co.GetVendorLedger)
}

// scopeFilter is the part of the query shared by both endpoints.
type scopeFilter struct {
	Branch    string    `form:"branch"`                             // Branch to scope transactions to. Empty means all branches.
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // Transactions at and after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Transactions before and at this date
	Viewer    string    `form:"viewer"`                             // Role context, "global" or "branch". Defaults to global.
	Page      int       `form:"page"`                               // The 1-based page to return. Defaults to 1.
	PageSize  int       `form:"pageSize"`                           // Maximum number of records per page. Defaults to 50.
}

func (f scopeFilter) scope() models.Scope {
	return models.Scope{
		BranchID: f.Branch,
		From:     f.FromDate,
		Until:    f.UntilDate,
	}
}

func (f scopeFilter) viewer() (models.Viewer, error) {
	if f.Viewer == "" || f.Viewer == string(models.ViewerGlobal) {
		return models.GlobalViewer(), nil
	}

	if f.Viewer != string(models.ViewerBranch) {
		return models.Viewer{}, httputil.ErrViewerInvalid
	}

	if f.Branch == "" {
		return models.Viewer{}, httputil.ErrViewerBranchID
	}

	return models.BranchViewer(f.Branch), nil
}

func (f scopeFilter) pageRequest() (page, pageSize int) {
	page = f.Page
	if page < 1 {
		page = 1
	}

	pageSize = f.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

type VendorQueryFilter struct {
	scopeFilter
	Name string `form:"name"` // Glob pattern matched against the display name, e.g. "acme*"
	Type string `form:"type"` // Restrict the catalog to one vendor type
}

type LedgerQueryFilter struct {
	scopeFilter
	Type      string `form:"type" binding:"required"` // Vendor type: supplier, courier or vendor
	ID        string `form:"id"`                      // Supplier or courier id
	Name      string `form:"name"`                    // Supplier or expense vendor name
	Reference string `form:"reference"`               // Expense vendor reference number
}

// vendorTypes are the identity classes the ledger tracks. Customers
// are not one of them.
var vendorTypes = []string{
	string(models.VendorSupplier),
	string(models.VendorCourier),
	string(models.VendorExpense),
}

// vendor builds the vendor identity from the filter, validating the
// type-specific natural key.
func (f LedgerQueryFilter) vendor() (models.Vendor, error) {
	if !slices.Contains(vendorTypes, f.Type) {
		return models.Vendor{}, httputil.ErrVendorTypeInvalid
	}

	switch models.VendorType(f.Type) {
	case models.VendorSupplier:
		if f.ID == "" && f.Name == "" {
			return models.Vendor{}, httputil.ErrVendorKeyMissing
		}
		return models.NewSupplier(f.ID, f.Name), nil

	case models.VendorCourier:
		if f.ID == "" {
			return models.Vendor{}, httputil.ErrVendorKeyMissing
		}
		return models.NewCourier(f.ID, f.Name), nil

	default:
		if f.Name == "" {
			return models.Vendor{}, httputil.ErrVendorKeyMissing
		}
		return models.NewExpenseVendor(f.Name, f.Reference), nil
	}
}

// @Summary		Vendor catalog
// @Description	Returns the vendors that have at least one ledger-relevant transaction in the requested scope
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorListResponse
// @Failure		400	{object}	VendorListResponse
// @Failure		502	{object}	VendorListResponse
// @Router			/v1/vendors [get]
// @Param			branch		query	string	false	"Branch to scope transactions to"
// @Param			fromDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
// @Param			viewer		query	string	false	"Role context, global or branch. Defaults to global."
// @Param			name		query	string	false	"Glob pattern matched against the display name"
// @Param			type		query	string	false	"Restrict the catalog to one vendor type"
// @Param			page		query	int		false	"The 1-based page to return. Defaults to 1."
// @Param			pageSize	query	int		false	"Maximum number of records per page. Defaults to 50."
func (co Controller) GetVendors(c *gin.Context) {
	var filter VendorQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, VendorListResponse{Error: &e})
		return
	}

	if filter.Type != "" && !slices.Contains(vendorTypes, filter.Type) {
		e := httputil.ErrVendorTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, VendorListResponse{Error: &e})
		return
	}

	viewer, err := filter.viewer()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, VendorListResponse{Error: &e})
		return
	}

	catalog, err := co.Service.Catalog(c.Request.Context(), filter.scope(), viewer)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VendorListResponse{Error: &e})
		return
	}

	catalog = filterCatalog(catalog, filter)

	page, pageSize := filter.pageRequest()
	paged := ledger.Paginate(catalog, page, pageSize)

	data := make([]Vendor, 0, len(paged.Items))
	for _, vendor := range paged.Items {
		data = append(data, newVendor(vendor))
	}

	c.JSON(http.StatusOK, VendorListResponse{
		Data:       data,
		Pagination: newPagination(paged, page, pageSize),
	})
}

// @Summary		Vendor ledger
// @Description	Returns the reconciled transactions and balance for a single vendor
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	LedgerResponse
// @Failure		400	{object}	LedgerResponse
// @Failure		502	{object}	LedgerResponse
// @Router			/v1/vendors/ledger [get]
// @Param			type		query	string	true	"Vendor type: supplier, courier or vendor"
// @Param			id			query	string	false	"Supplier or courier id"
// @Param			name		query	string	false	"Supplier or expense vendor name"
// @Param			reference	query	string	false	"Expense vendor reference number"
// @Param			branch		query	string	false	"Branch to scope transactions to"
// @Param			fromDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
// @Param			viewer		query	string	false	"Role context, global or branch. Defaults to global."
// @Param			page		query	int		false	"The 1-based page to return. Defaults to 1."
// @Param			pageSize	query	int		false	"Maximum number of records per page. Defaults to 50."
func (co Controller) GetVendorLedger(c *gin.Context) {
	var filter LedgerQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LedgerResponse{Error: &e})
		return
	}

	vendor, err := filter.vendor()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LedgerResponse{Error: &e})
		return
	}

	viewer, err := filter.viewer()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LedgerResponse{Error: &e})
		return
	}

	reconciled, err := co.Service.VendorLedger(c.Request.Context(), filter.scope(), viewer, vendor)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{Error: &e})
		return
	}

	page, pageSize := filter.pageRequest()
	paged := ledger.Paginate(reconciled.Transactions, page, pageSize)

	transactions := make([]Transaction, 0, len(paged.Items))
	for _, t := range paged.Items {
		transactions = append(transactions, newTransaction(t))
	}

	c.JSON(http.StatusOK, LedgerResponse{
		Data: &Ledger{
			Vendor:       newVendor(reconciled.Vendor),
			Balance:      reconciled.Balance,
			Transactions: transactions,
		},
		Pagination: newPagination(paged, page, pageSize),
	})
}

// filterCatalog applies the name glob and type filter to the catalog.
func filterCatalog(catalog []models.Vendor, filter VendorQueryFilter) []models.Vendor {
	if filter.Name == "" && filter.Type == "" {
		return catalog
	}

	pattern := models.NormalizeKey(filter.Name)
	filtered := make([]models.Vendor, 0, len(catalog))

	for _, vendor := range catalog {
		if filter.Type != "" && string(vendor.Type) != filter.Type {
			continue
		}

		if pattern != "" && !glob.Glob(pattern, models.NormalizeKey(vendor.DisplayName())) {
			continue
		}

		filtered = append(filtered, vendor)
	}

	return filtered
}

// status maps an error from the ledger service to the HTTP status of
// the response.
func status(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	return http.StatusBadGateway
}
