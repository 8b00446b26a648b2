package payload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ivco-ai/blogsync/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// APIError is returned when the CMS answers with a non-success status or an
// "errors" array.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client is a Payload CMS REST API client.
type Client struct {
	baseURL    string
	email      string
	password   string
	token      string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient creates a new CMS client from the given config.
func NewClient(cfg config.Config, log logrus.FieldLogger) *Client {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		email:      cfg.Email,
		password:   cfg.Password,
		httpClient: &http.Client{},
		log:        log,
	}
}

// Login exchanges the configured credentials for a JWT used by every
// subsequent request.
func (c *Client) Login(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodPost, "/api/users/login", Credentials{Email: c.email, Password: c.password})
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	token := gjson.GetBytes(body, "token").String()
	if token == "" {
		return fmt.Errorf("login failed: no token in response: %s", string(body))
	}
	c.token = token
	c.log.WithField("email", c.email).Debug("authenticated")
	return nil
}

// FindOne looks up the first document of collection whose field equals value.
// found is false when no document matches.
func (c *Client) FindOne(ctx context.Context, collection, field, value string) (id int64, found bool, err error) {
	query := url.Values{}
	query.Set(fmt.Sprintf("where[%s][equals]", field), value)
	query.Set("limit", "1")

	body, err := c.do(ctx, http.MethodGet, "/api/"+collection+"?"+query.Encode(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("querying %s: %w", collection, err)
	}

	doc := gjson.GetBytes(body, "docs.0.id")
	if !doc.Exists() {
		return 0, false, nil
	}
	return doc.Int(), true, nil
}

// Create posts a new document to collection and returns its id.
func (c *Client) Create(ctx context.Context, collection string, doc any) (int64, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/"+collection, doc)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", collection, err)
	}

	if errs := gjson.GetBytes(body, "errors"); errs.Exists() && len(errs.Array()) > 0 {
		return 0, fmt.Errorf("creating %s: %s", collection, errs.Raw)
	}

	id := gjson.GetBytes(body, "doc.id")
	if !id.Exists() {
		return 0, fmt.Errorf("creating %s: no id in response", collection)
	}

	c.log.WithFields(logrus.Fields{"collection": collection, "id": id.Int()}).Debug("created")
	return id.Int(), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshalling payload: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Method: method, Path: req.URL.Path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "JWT "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
