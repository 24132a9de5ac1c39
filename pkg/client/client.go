/*
Package client implements the request core shared by every resource client:
build a request from a payload and options, dispatch it over one reusable
HTTP client, classify the response status, and decode the body. All
classification outcomes are expressed as Err values so that an unexpected
status is an error value, never a panic.
*/
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*http.Client

	endpoint *url.URL
	token    Token
	headers  map[string]string
	timeout  time.Duration
	ua       string
	trace    io.Writer
	verbose  bool
}

// Unmarshaler can be implemented by a response type to decode the body
// itself, for responses which are not plain JSON.
type Unmarshaler interface {
	Unmarshal(header http.Header, r io.Reader) error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultUserAgent = "go-watson/client"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given options. OptEndpoint is required.
func New(opts ...ClientOpt) (*Client, error) {
	self := &Client{
		Client:  new(http.Client),
		headers: make(map[string]string),
		timeout: DefaultTimeout,
		ua:      defaultUserAgent,
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}
	if self.endpoint == nil {
		return nil, errors.ErrBadParameter.With("missing endpoint")
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Endpoint returns the base URL for the client.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Do dispatches a payload and decodes the response into out. See
// DoWithContext for the semantics.
func (c *Client) Do(in Payload, out any, opts ...RequestOpt) error {
	return c.DoWithContext(context.Background(), in, out, opts...)
}

// DoWithContext dispatches a payload and decodes a 2xx response body into
// out, which can be nil to discard the body, a *[]byte or io.Writer for raw
// audio responses, an Unmarshaler, or any JSON-decodable value. A non-2xx
// status is returned as an Err classification, and a transport failure as
// ErrConnection. The deadline is the client timeout unless OptNoTimeout is
// given; ctx may carry a stricter deadline or cancellation.
func (c *Client) DoWithContext(ctx context.Context, in Payload, out any, opts ...RequestOpt) error {
	req, cancel, err := c.request(ctx, in, opts...)
	if err != nil {
		return err
	}
	if cancel != nil {
		defer cancel()
	}

	response, err := c.Client.Do(req)
	if err != nil {
		c.tracef("%s %s -> %v", req.Method, req.URL.Redacted(), err)
		return ErrConnection.With(err.Error())
	}
	defer response.Body.Close()
	c.tracef("%s %s -> %s", req.Method, req.URL.Redacted(), response.Status)
	if c.verbose {
		c.traceHeader(response.Header)
	}

	return decode(response, out)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) request(ctx context.Context, in Payload, opts ...RequestOpt) (*http.Request, context.CancelFunc, error) {
	// Apply request options
	var o requestOpts
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, nil, err
		}
	}

	// Determine the method and body
	method := http.MethodGet
	var body io.Reader
	accept := ContentTypeAny
	mimetype := ""
	if in != nil {
		method = in.Method()
		body = in
		accept = in.Accept()
		mimetype = in.Type()
	}
	if o.method != "" {
		method = o.method
	}
	if o.accept != "" {
		accept = o.accept
	}

	// Resolve the URL
	u := c.url(o.segments, o.query)

	// Apply the request deadline
	var cancel context.CancelFunc
	if !o.noTimeout && c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		if cancel != nil {
			cancel()
		}
		return nil, nil, errors.ErrBadParameter.With(err.Error())
	}

	// Set headers. The token value is sensitive and is never traced.
	if mimetype != "" {
		req.Header.Set("Content-Type", mimetype)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.token.Value != "" {
		req.Header.Set("Authorization", c.token.Scheme+" "+c.token.Value)
	}
	req.Header.Set("User-Agent", c.ua)
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	// Return success
	return req, cancel, nil
}

func (c *Client) url(segments []string, query url.Values) *url.URL {
	u := *c.endpoint
	if len(segments) > 0 {
		escaped := make([]string, 0, len(segments))
		for _, segment := range segments {
			escaped = append(escaped, url.PathEscape(segment))
		}
		u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Join(segments, "/")
		u.RawPath = strings.TrimSuffix(c.endpoint.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return &u
}

func (c *Client) tracef(format string, args ...any) {
	if c.trace != nil {
		fmt.Fprintf(c.trace, format+"\n", args...)
	}
}

func (c *Client) traceHeader(header http.Header) {
	for key, values := range header {
		if strings.EqualFold(key, "Authorization") {
			c.tracef("  %s: <redacted>", key)
			continue
		}
		c.tracef("  %s: %s", key, strings.Join(values, ", "))
	}
}

// decode classifies the response status and decodes the body. No status
// panics: anything not explicitly enumerated is returned as Err(status).
func decode(response *http.Response, out any) error {
	switch {
	case response.StatusCode == http.StatusNoContent:
		return nil
	case response.StatusCode >= 200 && response.StatusCode < 300:
		return decodeBody(response, out)
	default:
		return Err(response.StatusCode).With(reason(response))
	}
}

func decodeBody(response *http.Response, out any) error {
	switch out := out.(type) {
	case nil:
		_, err := io.Copy(io.Discard, response.Body)
		return err
	case *[]byte:
		data, err := io.ReadAll(response.Body)
		if err != nil {
			return err
		}
		*out = data
		return nil
	case Unmarshaler:
		return out.Unmarshal(response.Header, response.Body)
	case io.Writer:
		_, err := io.Copy(out, response.Body)
		return err
	default:
		return json.NewDecoder(response.Body).Decode(out)
	}
}

// reason extracts a human-readable detail from an error response body. The
// service reports errors as JSON with "error" and "code_description"
// fields; anything else is used verbatim, truncated.
func reason(response *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(response.Body, 1024))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body struct {
		Error       string `json:"error"`
		Description string `json:"code_description"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(data))
}
