// Package urban is a client for the Urban Dictionary v0 API.
//
// Every operation performs exactly one GET request and blocks until it
// completes, fails, or ctx is done. Failures are returned as *Error values
// tagged with a Kind; nothing is retried.
package urban

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samvad-hq/urbandict/pkg/httpclient"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the service root every resource path is appended to.
const DefaultBaseURL = "https://api.urbandictionary.com/v0/"

// Operation names carried in Error.Op.
const (
	OpDefine     = "define"
	OpRandom     = "random"
	OpDefineByID = "define by id"
	OpTooltip    = "tooltip"
)

// Logger is the logging surface the client relies on.
type Logger interface {
	DebugObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) DebugObj(string, string, interface{}) {}

// Client issues requests against the dictionary service. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	baseURL        string
	http           httpclient.Client
	log            Logger
	rawTooltipTerm bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL. A trailing slash is added if missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the transport used for every request.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger receiving debug request traces.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRawTooltipTerm sends the tooltip term without percent-encoding, the way
// older clients of the service did. Terms containing reserved characters will
// produce a malformed query.
func WithRawTooltipTerm() Option {
	return func(c *Client) { c.rawTooltipTerm = true }
}

// New returns a Client using DefaultBaseURL and a resty transport without a timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(0)
	}
	return c
}

// Lookup returns one page of definitions for req.Term in service order.
func (c *Client) Lookup(ctx context.Context, req LookupRequest) ([]Entry, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	path := "define?term=" + escapeQueryValue(req.Term) + "&page=" + strconv.Itoa(page)
	return c.entries(ctx, OpDefine, path)
}

// Define is shorthand for Lookup with the given term and page.
func (c *Client) Define(ctx context.Context, term string, page int) ([]Entry, error) {
	return c.Lookup(ctx, LookupRequest{Term: term, Page: page})
}

// Random returns the service's current batch of random definitions.
func (c *Client) Random(ctx context.Context) ([]Entry, error) {
	return c.entries(ctx, OpRandom, "random")
}

// DefineByID returns the definition with the given defid. When the service
// returns several entries the first one wins.
func (c *Client) DefineByID(ctx context.Context, id int64) (Entry, error) {
	entries, err := c.entries(ctx, OpDefineByID, "define?defid="+strconv.FormatInt(id, 10))
	if err != nil {
		return Entry{}, err
	}
	return entries[0], nil
}

// Tooltip returns the tooltip text for term. String values are returned
// unquoted; any other JSON value is returned as its JSON text.
func (c *Client) Tooltip(ctx context.Context, term string) (string, error) {
	if !c.rawTooltipTerm {
		term = escapeQueryValue(term)
	}
	body, err := c.get(ctx, OpTooltip, "tooltip?term="+term)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(body) {
		return "", newError(OpTooltip, KindDecode, errInvalidJSON)
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return "", newError(OpTooltip, KindDecode, errNotObject)
	}
	field := res.Get("string")
	if !field.Exists() {
		return "", newError(OpTooltip, KindDecode, errMissingString)
	}
	if field.Type == gjson.String {
		return field.String(), nil
	}
	return field.Raw, nil
}

// entries fetches path and decodes a non-empty envelope.
func (c *Client) entries(ctx context.Context, op, path string) ([]Entry, error) {
	body, err := c.get(ctx, op, path)
	if err != nil {
		return nil, err
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, newError(op, KindDecode, err)
	}
	if len(entries) == 0 {
		return nil, newError(op, KindEmptyResult, nil)
	}
	return entries, nil
}

// get performs a single GET against baseURL+path and returns the 2xx body.
func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := c.baseURL + path
	start := time.Now()

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, newError(op, KindTransport, err)
	}

	c.log.DebugObj("urban request completed", "request", map[string]any{
		"op":         op,
		"url":        url,
		"status":     resp.StatusCode(),
		"bytes":      len(resp.Body()),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	code := resp.StatusCode()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, newError(op, KindTransport, &StatusError{
			StatusCode: code,
			Body:       responseSnippet(resp.Body()),
		})
	}
	return resp.Body(), nil
}
