// Package view holds the client side of the record pages: an API
// client that carries the bearer token, and a per-entity view state
// object with reducer-style transitions for the fetched collection and
// the create/edit drafts.
package view

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Skar710/CID/internal/models"
)

// TokenKey mirrors the fixed localStorage key the browser client uses.
const TokenKey = "token"

// ErrNoToken is returned when a record call is attempted without a
// stored token; the caller's cue to show the login view.
var ErrNoToken = errors.New("no bearer token stored")

// TokenStore persists the bearer token between calls.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore is the in-process TokenStore.
type MemoryTokenStore struct {
	values map[string]string
}

// NewMemoryTokenStore returns an empty store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{values: make(map[string]string)}
}

func (m *MemoryTokenStore) Token() string         { return m.values[TokenKey] }
func (m *MemoryTokenStore) SetToken(token string) { m.values[TokenKey] = token }
func (m *MemoryTokenStore) Clear()                { delete(m.values, TokenKey) }

// APIError is any non-2xx response, carrying the {"message"} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the record API. Every record call attaches the stored
// bearer token.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenStore
}

// NewClient builds a client against a base URL like
// "http://localhost:5000".
func NewClient(base string, tokens TokenStore) *Client {
	return &Client{base: base, http: &http.Client{}, tokens: tokens}
}

// LoggedIn reports whether a token is stored.
func (c *Client) LoggedIn() bool { return c.tokens.Token() != "" }

// Logout drops the stored token.
func (c *Client) Logout() { c.tokens.Clear() }

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register", credentials{Email: email, Password: password}, nil, false)
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", credentials{Email: email, Password: password}, &out, false); err != nil {
		return err
	}
	c.tokens.SetToken(out.Token)
	return nil
}

// AddCustodyEvent appends one custody entry to an evidence item.
func (c *Client) AddCustodyEvent(ctx context.Context, id, handler, action string) (models.Evidence, error) {
	var out models.Evidence
	body := map[string]string{"handler": handler, "action": action}
	err := c.do(ctx, http.MethodPost, "/api/evidence/"+id+"/custody", body, &out, true)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body *bytes.Buffer
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token := c.tokens.Token()
		if token == "" {
			return ErrNoToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// List fetches the whole collection at path.
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, "/api/"+path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a new record and returns the stored copy.
func Create[T any](ctx context.Context, c *Client, path string, rec T) (T, error) {
	var out T
	err := c.do(ctx, http.MethodPost, "/api/"+path, rec, &out, true)
	return out, err
}

// Update overwrites a record's supplied fields by id.
func Update[T any](ctx context.Context, c *Client, path, id string, rec T) (T, error) {
	var out T
	err := c.do(ctx, http.MethodPut, "/api/"+path+"/"+id, rec, &out, true)
	return out, err
}

// Delete removes a record by id.
func Delete(ctx context.Context, c *Client, path, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/"+path+"/"+id, nil, nil, true)
}
