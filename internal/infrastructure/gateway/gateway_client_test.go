package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"billbridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(ts.URL, "key-1", "secret-1")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("requires credentials", func(t *testing.T) {
		if _, err := NewClient("pay.example.com", "", "secret"); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("want ErrMissingCredentials, got %v", err)
		}
		if _, err := NewClient("pay.example.com", "key", ""); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("want ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("assumes https for bare domains", func(t *testing.T) {
		c, err := NewClient("pay.example.com/", "key", "secret")
		if err != nil {
			t.Fatalf("new client: %v", err)
		}
		if c.baseURL != "https://pay.example.com" {
			t.Fatalf("unexpected base url: %s", c.baseURL)
		}
	})
}

func TestFetchBill(t *testing.T) {
	t.Run("sends credentials and decodes a live bill", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("api-key") != "key-1" || r.Header.Get("api-secret") != "secret-1" {
				t.Errorf("missing credential headers")
			}
			if got := r.URL.Query().Get("bill_id"); got != "ADULIS-00417" {
				t.Errorf("unexpected bill_id query: %s", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"bill_id":      "ADULIS-00417",
				"bill_desc":    "bills upto Meskerem 2017",
				"customer_id":  "C-9",
				"amount_due":   120.46,
				"due_date":     "2024-09-21",
				"already_paid": false,
			})
		}))

		bill, err := c.FetchBill(context.Background(), "ADULIS-00417")
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if bill.Empty() {
			t.Fatalf("expected a live bill")
		}
		if bill.BillID != "ADULIS-00417" || bill.CustomerID != "C-9" {
			t.Errorf("unexpected bill: %+v", bill)
		}
		if !bill.AmountDue.Equal(decimal.RequireFromString("120.46")) {
			t.Errorf("unexpected amount_due: %s", bill.AmountDue)
		}
	})

	t.Run("non-200 means absent, not an error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		bill, err := c.FetchBill(context.Background(), "ADULIS-99999")
		if err != nil {
			t.Fatalf("absent bill must not error: %v", err)
		}
		if !bill.Empty() {
			t.Fatalf("expected empty bill, got %+v", bill)
		}
	})
}

func TestCreateBill(t *testing.T) {
	t.Run("posts the bill payload", func(t *testing.T) {
		var got interfaces.GatewayBillCreate
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("want POST, got %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode body: %v", err)
			}
		}))

		create := interfaces.GatewayBillCreate{
			BillID:     "ADULIS-00417",
			BillDesc:   "bills upto Meskerem 2017",
			Reason:     "bills upto Meskerem 2017",
			AmountDue:  120.46,
			DueDate:    "2024-09-21",
			CustomerID: "C-9",
			Name:       "Some Customer",
		}
		if err := c.CreateBill(context.Background(), create); err != nil {
			t.Fatalf("create: %v", err)
		}
		if got != create {
			t.Fatalf("payload mismatch: want %+v, got %+v", create, got)
		}
	})

	t.Run("rejection carries status and body", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"duplicate bill"}`))
		}))

		err := c.CreateBill(context.Background(), interfaces.GatewayBillCreate{BillID: "ADULIS-00417"})
		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			t.Fatalf("want *RequestError, got %v", err)
		}
		if reqErr.Op != "create" || reqErr.Status != http.StatusBadRequest {
			t.Fatalf("unexpected request error: %+v", reqErr)
		}
		if reqErr.Body != `{"error":"duplicate bill"}` {
			t.Fatalf("body must be carried whole, got %q", reqErr.Body)
		}
	})
}

func TestUpdateBill(t *testing.T) {
	var method string
	var got interfaces.GatewayBillUpdate
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))

	update := interfaces.GatewayBillUpdate{
		BillID:      "ADULIS-00417",
		BillDesc:    "Bill no longer payable",
		Reason:      "Paid or deleted",
		AlreadyPaid: true,
		AmountDue:   120.46,
		DueDate:     "2024-09-21",
	}
	if err := c.UpdateBill(context.Background(), update); err != nil {
		t.Fatalf("update: %v", err)
	}
	if method != http.MethodPut {
		t.Errorf("want PUT, got %s", method)
	}
	if got != update {
		t.Fatalf("payload mismatch: want %+v, got %+v", update, got)
	}
}

func TestDownloadPaidBills(t *testing.T) {
	t.Run("passes the date range and returns the export", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("fromDate"); got != "2024-08-01" {
				t.Errorf("unexpected fromDate: %s", got)
			}
			if got := r.URL.Query().Get("toDate"); got != "2024-09-21" {
				t.Errorf("unexpected toDate: %s", got)
			}
			w.Write([]byte("header\nrow\n"))
		}))

		from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 9, 21, 10, 0, 0, 0, time.UTC)
		raw, err := c.DownloadPaidBills(context.Background(), from, to)
		if err != nil {
			t.Fatalf("download: %v", err)
		}
		if raw != "header\nrow\n" {
			t.Fatalf("unexpected export: %q", raw)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := c.DownloadPaidBills(context.Background(), time.Time{}, time.Time{})
		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			t.Fatalf("want *RequestError, got %v", err)
		}
		if reqErr.Op != "download" || reqErr.Status != http.StatusBadGateway {
			t.Fatalf("unexpected request error: %+v", reqErr)
		}
	})
}
