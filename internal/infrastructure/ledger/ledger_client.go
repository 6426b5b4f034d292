// Package ledger implements the utility system REST client.
//
// The client is a small state machine: Disconnected -> Connected (transport
// opened) -> Authenticated (session created). Posting requires an
// authenticated session; calling it earlier is a contract violation that is
// refused locally, never attempted over the wire.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"billbridge/internal/domain/entities"
	"billbridge/internal/usecase/interfaces"
)

var (
	ErrNotConnected     = errors.New("ledger client not connected")
	ErrNotAuthenticated = errors.New("ledger client not authenticated")
	ErrAuthFailed       = errors.New("ledger authentication failed")
)

const (
	createSessionPath    = "/api/app/server/CreateUserSession"
	paymentCenterPath    = "/api/erp/subscribermanagment/GetPaymentCenter"
	postBillPaymentPath  = "/api/erp/subscribermanagment/PostBillPayment"
	sessionSource        = "billbridge"
	instrumentDateLayout = "2006-01-02T15:04:05"
)

// PostError is a non-2xx answer to a settlement post.
type PostError struct {
	Status int
	Body   string
}

func (e *PostError) Error() string {
	return fmt.Sprintf("ledger post: status %d: %s", e.Status, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	state   entities.SessionState
	session entities.Session

	now func() time.Time
}

var _ interfaces.ILedgerClient = (*Client)(nil)

func NewClient(host string, port int) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s:%d", host, port),
		state:   entities.SessionDisconnected,
		now:     time.Now,
	}
}

// Connect opens the transport. Disconnected -> Connected.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != entities.SessionDisconnected {
		return nil
	}
	c.http = &http.Client{Timeout: 30 * time.Second}
	c.state = entities.SessionConnected
	log.Printf("[ledger][client] connected url=%s", c.baseURL)
	return nil
}

// Disconnect tears the transport down. Valid from any state, idempotent.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.http != nil {
		c.http.CloseIdleConnections()
		c.http = nil
	}
	if c.state != entities.SessionDisconnected {
		log.Printf("[ledger][client] disconnected")
	}
	c.state = entities.SessionDisconnected
	c.session = entities.Session{}
}

// Authenticate creates a user session. Connected -> Authenticated on
// success; on bad credentials the client stays Connected and returns
// ErrAuthFailed. Callers must not retry the same credentials.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	c.mu.Lock()
	if c.state == entities.SessionDisconnected {
		c.mu.Unlock()
		return ErrNotConnected
	}
	c.mu.Unlock()

	payload := createSessionRequest{UserName: username, Password: password, Source: sessionSource}
	status, body, err := c.do(ctx, createSessionPath, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		log.Printf("[ledger][client] authentication rejected status=%d user=%s", status, username)
		return fmt.Errorf("%w: status %d", ErrAuthFailed, status)
	}

	var sessionID string
	if err := json.Unmarshal(body, &sessionID); err != nil {
		return fmt.Errorf("ledger authenticate: decode session id: %w", err)
	}

	c.mu.Lock()
	c.session = entities.Session{SessionID: sessionID, Username: username}
	c.state = entities.SessionAuthenticated
	c.mu.Unlock()
	log.Printf("[ledger][client] authenticated user=%s", username)
	return nil
}

// FetchPaymentCenter loads the payment-center metadata for the session and
// keeps it on the session for the status surface.
func (c *Client) FetchPaymentCenter(ctx context.Context) error {
	c.mu.Lock()
	if c.state != entities.SessionAuthenticated {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	payload := paymentCenterRequest{SessionID: c.session.SessionID, UserID: c.session.Username}
	c.mu.Unlock()

	status, body, err := c.do(ctx, paymentCenterPath, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &PostError{Status: status, Body: string(body)}
	}

	c.mu.Lock()
	c.session.PaymentCenter = json.RawMessage(body)
	c.mu.Unlock()
	log.Printf("[ledger][client] payment center loaded bytes=%d", len(body))
	return nil
}

// PostSettlement posts one settlement receipt. Requires Authenticated.
func (c *Client) PostSettlement(ctx context.Context, doc entities.SettlementDocument) error {
	c.mu.Lock()
	if c.state != entities.SessionAuthenticated {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	sessionID := c.session.SessionID
	c.mu.Unlock()

	if len(doc.SettledBills) == 0 {
		return errors.New("ledger post: settlement document has no settled bills")
	}

	payload := buildPostRequest(sessionID, doc, c.now())
	status, body, err := c.do(ctx, postBillPaymentPath, payload)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &PostError{Status: status, Body: string(body)}
	}
	return nil
}

// State returns the current lifecycle state.
func (c *Client) State() entities.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the current session.
func (c *Client) Session() entities.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Client) do(ctx context.Context, path string, payload any) (int, []byte, error) {
	c.mu.Lock()
	httpClient := c.http
	c.mu.Unlock()
	if httpClient == nil {
		return 0, nil, ErrNotConnected
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("connection", "keep-alive")

	resp, err := httpClient.Do(req)
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
