// Package upstream is the read-only client for the ERP backend the
// ledger is reconciled from. It owns the paginated retrieval rules:
// pages are requested strictly in order, a fixed page cap bounds a
// misbehaving backend, and any page error discards everything fetched
// so far so that a partial ledger is never presented as complete.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vendorledger/backend/internal/models"
)

const (
	// PageSize is the fixed page size for paginated retrieval.
	PageSize = 1000

	// MaxPages bounds paginated retrieval against a backend reporting
	// an unbounded page count. Reaching it is a soft stop, not an
	// error.
	MaxPages = 100

	defaultPageTimeout = 30 * time.Second
)

// ErrNoHeadOffice is returned when no branch named "Head Office"
// exists upstream.
var ErrNoHeadOffice = errors.New("no branch named \"Head Office\" exists upstream")

// Config configures an upstream client.
type Config struct {
	// BaseURL of the upstream API, without a trailing slash.
	BaseURL string

	// PageTimeout bounds every single request. Defaults to 30s.
	PageTimeout time.Duration

	// Client is the HTTP client to use. Defaults to http.DefaultClient.
	Client *http.Client
}

// Client reads from the upstream ERP API.
type Client struct {
	baseURL     string
	pageTimeout time.Duration
	client      *http.Client
}

// New returns a client for the upstream API.
func New(config Config) *Client {
	if config.PageTimeout <= 0 {
		config.PageTimeout = defaultPageTimeout
	}

	if config.Client == nil {
		config.Client = http.DefaultClient
	}

	return &Client{
		baseURL:     strings.TrimSuffix(config.BaseURL, "/"),
		pageTimeout: config.PageTimeout,
		client:      config.Client,
	}
}

// pagination is the upstream pagination envelope.
type pagination struct {
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// AllTransactions retrieves the complete transaction set for the
// scope, iterating pages sequentially until the reported page count is
// reached, a page comes back empty, or the page cap is hit.
//
// Page N+1 is only requested after page N has been observed because
// the termination condition depends on each response. Any page error
// aborts the whole fetch; partially gathered pages are discarded.
func (c *Client) AllTransactions(ctx context.Context, scope models.Scope) ([]models.Transaction, error) {
	fetchID := uuid.New()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(PageSize))
	if scope.BranchID != "" {
		query.Set("branchId", scope.BranchID)
	}
	if !scope.From.IsZero() {
		query.Set("startDate", scope.From.Format(time.RFC3339))
	}
	if !scope.Until.IsZero() {
		query.Set("endDate", scope.Until.Format(time.RFC3339))
	}

	var transactions []models.Transaction
	totalPages := 1

	for page := 1; page <= totalPages; page++ {
		if page > MaxPages {
			pageCapReached.Inc()
			log.Warn().
				Str("fetch-id", fetchID.String()).
				Int("reportedPages", totalPages).
				Msg("page cap reached, returning accumulated transactions")
			break
		}

		query.Set("page", strconv.Itoa(page))

		var response struct {
			Data struct {
				Accounts   []models.Transaction `json:"accounts"`
				Pagination pagination           `json:"pagination"`
			} `json:"data"`
		}

		if err := c.get(ctx, "/accounts", query, &response); err != nil {
			fetchErrors.WithLabelValues("accounts").Inc()
			return nil, fmt.Errorf("fetching transactions page %d: %w", page, err)
		}

		pagesFetched.WithLabelValues("accounts").Inc()

		if len(response.Data.Accounts) == 0 {
			break
		}

		transactions = append(transactions, response.Data.Accounts...)
		totalPages = response.Data.Pagination.TotalPages
	}

	log.Debug().
		Str("fetch-id", fetchID.String()).
		Int("transactions", len(transactions)).
		Msg("transaction fetch complete")

	return transactions, nil
}

// ListSuppliers returns all raw-material suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier

	err := c.paged("suppliers", func(query url.Values) (int, int, error) {
		var response struct {
			Data       []models.Supplier `json:"data"`
			Pagination pagination        `json:"pagination"`
		}

		if err := c.get(ctx, "/inventory/suppliers", query, &response); err != nil {
			return 0, 0, err
		}

		suppliers = append(suppliers, response.Data...)
		return len(response.Data), response.Pagination.TotalPages, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching suppliers: %w", err)
	}

	return suppliers, nil
}

// ListCourierPartners returns all active courier partners.
func (c *Client) ListCourierPartners(ctx context.Context) ([]models.CourierPartner, error) {
	var couriers []models.CourierPartner

	err := c.paged("courier-partners", func(query url.Values) (int, int, error) {
		query.Set("isActive", "true")

		var response struct {
			Data struct {
				CourierPartners []models.CourierPartner `json:"courierPartners"`
			} `json:"data"`
			Pagination pagination `json:"pagination"`
		}

		if err := c.get(ctx, "/courier-partners", query, &response); err != nil {
			return 0, 0, err
		}

		couriers = append(couriers, response.Data.CourierPartners...)
		return len(response.Data.CourierPartners), response.Pagination.TotalPages, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching courier partners: %w", err)
	}

	return couriers, nil
}

// ListExpenseVendors returns the unique ad-hoc expense payees.
func (c *Client) ListExpenseVendors(ctx context.Context) ([]models.ExpenseVendor, error) {
	var response struct {
		Data []models.ExpenseVendor `json:"data"`
	}

	if err := c.get(ctx, "/accounts/vendors/unique-names", nil, &response); err != nil {
		fetchErrors.WithLabelValues("vendors").Inc()
		return nil, fmt.Errorf("fetching expense vendors: %w", err)
	}

	pagesFetched.WithLabelValues("vendors").Inc()
	return response.Data, nil
}

// ListBranches returns the branch directory.
func (c *Client) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var response struct {
		Data []models.Branch `json:"data"`
	}

	if err := c.get(ctx, "/branches", nil, &response); err != nil {
		fetchErrors.WithLabelValues("branches").Inc()
		return nil, fmt.Errorf("fetching branches: %w", err)
	}

	pagesFetched.WithLabelValues("branches").Inc()
	return response.Data, nil
}

// HeadOfficeBranch resolves the branch literally named "Head Office".
// The match is by name, case-insensitively. Supplier purchases are
// assumed to be centralized there.
func (c *Client) HeadOfficeBranch(ctx context.Context) (models.Branch, error) {
	branches, err := c.ListBranches(ctx)
	if err != nil {
		return models.Branch{}, err
	}

	for _, branch := range branches {
		if strings.EqualFold(strings.TrimSpace(branch.BranchName), "head office") {
			return branch, nil
		}
	}

	return models.Branch{}, ErrNoHeadOffice
}

// Ping checks that the upstream API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListBranches(ctx)
	return err
}

// paged runs fetch page by page with the shared termination rules:
// stop at the reported page count, on an empty page, or at the page
// cap.
func (c *Client) paged(endpoint string, fetch func(query url.Values) (count, totalPages int, err error)) error {
	total := 1

	for page := 1; page <= total; page++ {
		if page > MaxPages {
			pageCapReached.Inc()
			log.Warn().Str("endpoint", endpoint).Msg("page cap reached, returning accumulated records")
			break
		}

		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(PageSize))

		count, totalPages, err := fetch(query)
		if err != nil {
			fetchErrors.WithLabelValues(endpoint).Inc()
			return err
		}

		pagesFetched.WithLabelValues(endpoint).Inc()

		if count == 0 {
			break
		}

		total = totalPages
	}

	return nil
}

// get issues a GET request bound by the per-page timeout and decodes
// the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.pageTimeout)
	defer cancel()

	requestURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	response, err := c.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: unexpected status %d", http.MethodGet, path, response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}
