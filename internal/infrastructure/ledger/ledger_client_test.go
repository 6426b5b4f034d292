package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"billbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("parse test server url: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return NewClient(host, port)
}

func testDoc() entities.SettlementDocument {
	return entities.SettlementDocument{
		SettledBills:     []string{"B900"},
		InstrumentAmount: decimal.RequireFromString("150.00"),
		TotalInstrument:  decimal.RequireFromString("150.00"),
		InstrumentCode:   "CASH",
		AssetAccountID:   3345,
		Description:      "Settled through payment gateway. Confirmation code: CONF123, Agent: Agent7",
		BillRef:          "B900",
	}
}

func TestClientLifecycle(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode("session-1")
	}))

	if c.State() != entities.SessionDisconnected {
		t.Fatalf("new client must start disconnected, got %s", c.State())
	}

	if err := c.Authenticate(context.Background(), "user", "pass"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("authenticate before connect: want ErrNotConnected, got %v", err)
	}

	if err := c.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if c.State() != entities.SessionConnected {
		t.Fatalf("want connected, got %s", c.State())
	}

	if err := c.Authenticate(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if c.State() != entities.SessionAuthenticated {
		t.Fatalf("want authenticated, got %s", c.State())
	}
	if got := c.Session(); got.SessionID != "session-1" || got.Username != "user" {
		t.Fatalf("unexpected session: %+v", got)
	}

	c.Disconnect()
	if c.State() != entities.SessionDisconnected {
		t.Fatalf("want disconnected, got %s", c.State())
	}
	if got := c.Session(); got.SessionID != "" {
		t.Fatalf("session must be cleared, got %+v", got)
	}
	c.Disconnect()
}

func TestAuthenticate_Rejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	if err := c.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}

	err := c.Authenticate(context.Background(), "user", "wrong")
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("want ErrAuthFailed, got %v", err)
	}
	if c.State() != entities.SessionConnected {
		t.Fatalf("failed auth must leave client connected, got %s", c.State())
	}
}

func TestPostSettlement(t *testing.T) {
	t.Run("refused before authentication", func(t *testing.T) {
		calls := 0
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		if err := c.Connect(); err != nil {
			t.Fatalf("connect: %v", err)
		}

		err := c.PostSettlement(context.Background(), testDoc())
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("want ErrNotAuthenticated, got %v", err)
		}
		if calls != 0 {
			t.Fatalf("refusal must not reach the wire, got %d calls", calls)
		}
	})

	t.Run("posts a well formed receipt", func(t *testing.T) {
		var posted postRequest
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case createSessionPath:
				json.NewEncoder(w).Encode("session-9")
			case postBillPaymentPath:
				if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
					t.Errorf("decode post body: %v", err)
				}
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		if err := c.Connect(); err != nil {
			t.Fatalf("connect: %v", err)
		}
		if err := c.Authenticate(context.Background(), "user", "pass"); err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		c.now = func() time.Time { return time.Date(2024, 9, 21, 10, 0, 0, 0, time.UTC) }

		if err := c.PostSettlement(context.Background(), testDoc()); err != nil {
			t.Fatalf("post: %v", err)
		}
		if posted.SessionID != "session-9" {
			t.Errorf("unexpected session id: %s", posted.SessionID)
		}
		rc := posted.Receipt
		if len(rc.SettledBills) != 1 || rc.SettledBills[0] != "B900" {
			t.Errorf("unexpected settled bills: %v", rc.SettledBills)
		}
		if rc.AssetAccountID != 3345 || !rc.Offline {
			t.Errorf("unexpected receipt header: %+v", rc)
		}
		if rc.CustomerID != -1 || rc.BillBatchID != -1 || rc.AccountDocumentID != -1 || rc.DocumentTypeID != -1 {
			t.Errorf("sentinel ids must be -1: %+v", rc)
		}
		if rc.TotalAmount != -1.0 || rc.TotalInstrument != 150.00 {
			t.Errorf("unexpected totals: %+v", rc)
		}
		if len(rc.PaymentInstruments) != 1 {
			t.Fatalf("want one instrument, got %d", len(rc.PaymentInstruments))
		}
		inst := rc.PaymentInstruments[0]
		if inst.InstrumentTypeItemCode != "CASH" || inst.Amount != 150.00 || inst.DepositToBankAccountID != -1 {
			t.Errorf("unexpected instrument: %+v", inst)
		}
		if rc.DocumentDate != "2024-09-21T10:00:00" {
			t.Errorf("unexpected document date: %s", rc.DocumentDate)
		}
		if len(rc.TranTicks) < 17 {
			t.Errorf("unexpected tran ticks: %q", rc.TranTicks)
		}
	})

	t.Run("refuses empty settled bills", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode("session-1")
		}))
		if err := c.Connect(); err != nil {
			t.Fatalf("connect: %v", err)
		}
		if err := c.Authenticate(context.Background(), "user", "pass"); err != nil {
			t.Fatalf("authenticate: %v", err)
		}

		doc := testDoc()
		doc.SettledBills = nil
		if err := c.PostSettlement(context.Background(), doc); err == nil {
			t.Fatalf("expected error for empty settled bills")
		}
	})

	t.Run("rejection surfaces status and body", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == createSessionPath {
				json.NewEncoder(w).Encode("session-1")
				return
			}
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte("bill already settled"))
		}))
		if err := c.Connect(); err != nil {
			t.Fatalf("connect: %v", err)
		}
		if err := c.Authenticate(context.Background(), "user", "pass"); err != nil {
			t.Fatalf("authenticate: %v", err)
		}

		err := c.PostSettlement(context.Background(), testDoc())
		var postErr *PostError
		if !errors.As(err, &postErr) {
			t.Fatalf("want *PostError, got %v", err)
		}
		if postErr.Status != http.StatusUnprocessableEntity || postErr.Body != "bill already settled" {
			t.Fatalf("unexpected post error: %+v", postErr)
		}
	})
}

func TestFetchPaymentCenter(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == createSessionPath {
			json.NewEncoder(w).Encode("session-1")
			return
		}
		w.Write([]byte(`{"id":7,"name":"PC01"}`))
	}))
	if err := c.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := c.FetchPaymentCenter(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated, got %v", err)
	}

	if err := c.Authenticate(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := c.FetchPaymentCenter(context.Background()); err != nil {
		t.Fatalf("fetch payment center: %v", err)
	}
	if string(c.Session().PaymentCenter) != `{"id":7,"name":"PC01"}` {
		t.Fatalf("unexpected payment center: %s", c.Session().PaymentCenter)
	}
}
