// Package gateway implements the payment clearinghouse REST client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"billbridge/internal/domain/entities"
	"billbridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrMissingCredentials = errors.New("missing gateway api key or secret")

const (
	billDataPath  = "/biller/customer-bill-data"
	paidBillsPath = "/biller/customers-paid-bill"

	dateLayout = "2006-01-02"
)

// RequestError is a non-2xx answer to a Gateway write or download. The
// response body is carried whole; the Gateway puts its diagnostics there.
type RequestError struct {
	Op     string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("gateway %s: status %d: %s", e.Op, e.Status, e.Body)
}

// Client talks to the clearinghouse. It is stateless aside from the
// underlying HTTP transport; each operation is one request. Not safe for
// concurrent reuse across sync workers.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	http      *http.Client
}

var _ interfaces.IGatewayClient = (*Client)(nil)

// NewClient builds a Client for the given Gateway domain (scheme optional,
// https assumed).
func NewClient(domain, apiKey, apiSecret string) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		log.Printf("[gateway][client] missing api credentials")
		return nil, ErrMissingCredentials
	}
	base := strings.TrimSuffix(domain, "/")
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return &Client{
		baseURL:   base,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		http:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// FetchBill looks a mirrored bill up by its town-prefixed id. Any non-200
// answer means the bill is absent, which is expected and common; only a
// transport failure is an error.
func (c *Client) FetchBill(ctx context.Context, billID string) (entities.GatewayBill, error) {
	endpoint := c.baseURL + billDataPath + "?bill_id=" + url.QueryEscape(billID)
	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.GatewayBill{}, err
	}
	if status != http.StatusOK {
		return entities.GatewayBill{}, nil
	}

	var resp billResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entities.GatewayBill{}, fmt.Errorf("gateway fetch: decode response: %w", err)
	}
	return resp.toEntity(), nil
}

// CreateBill mirrors a new bill.
func (c *Client) CreateBill(ctx context.Context, bill interfaces.GatewayBillCreate) error {
	return c.write(ctx, http.MethodPost, "create", bill)
}

// UpdateBill amends a mirrored bill.
func (c *Client) UpdateBill(ctx context.Context, bill interfaces.GatewayBillUpdate) error {
	return c.write(ctx, http.MethodPut, "update", bill)
}

// DownloadPaidBills fetches the delimited paid-bill export for the
// inclusive [from, to] range.
func (c *Client) DownloadPaidBills(ctx context.Context, from, to time.Time) (string, error) {
	q := url.Values{}
	q.Set("fromDate", from.Format(dateLayout))
	q.Set("toDate", to.Format(dateLayout))
	endpoint := c.baseURL + paidBillsPath + "?" + q.Encode()

	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &RequestError{Op: "download", Status: status, Body: string(body)}
	}
	return string(body), nil
}

func (c *Client) write(ctx context.Context, method, op string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gateway %s: encode payload: %w", op, err)
	}
	status, respBody, err := c.do(ctx, method, c.baseURL+billDataPath, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &RequestError{Op: op, Status: status, Body: string(respBody)}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("api-secret", c.apiSecret)
	req.Header.Set("connection", "keep-alive")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// billResponse mirrors the Gateway's bill JSON.
type billResponse struct {
	BillID      string  `json:"bill_id"`
	BillDesc    string  `json:"bill_desc"`
	CustomerID  string  `json:"customer_id"`
	AmountDue   float64 `json:"amount_due"`
	DueDate     string  `json:"due_date"`
	AlreadyPaid bool    `json:"already_paid"`
}

func (r billResponse) toEntity() entities.GatewayBill {
	return entities.GatewayBill{
		BillID:      r.BillID,
		BillDesc:    r.BillDesc,
		CustomerID:  r.CustomerID,
		AmountDue:   decimal.NewFromFloat(r.AmountDue),
		DueDate:     r.DueDate,
		AlreadyPaid: r.AlreadyPaid,
	}
}
