package client

import (
	"io"
	"net/url"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ClientOpt configures a client at construction time.
type ClientOpt func(*Client) error

// RequestOpt modifies a single request before it is dispatched.
type RequestOpt func(*requestOpts) error

// Token is a request token for authentication, sent as
// "Authorization: <Scheme> <Value>".
type Token struct {
	Scheme string
	Value  string
}

type requestOpts struct {
	method    string
	segments  []string
	query     url.Values
	accept    string
	noTimeout bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// CLIENT OPTIONS

// OptEndpoint sets the base URL for the service instance. The scheme must
// be http or https.
func OptEndpoint(v string) ClientOpt {
	return func(c *Client) error {
		u, err := url.Parse(v)
		if err != nil {
			return errors.ErrBadParameter.With("OptEndpoint")
		}
		if u.Scheme != "https" && u.Scheme != "http" {
			return errors.ErrBadParameter.Withf("endpoint scheme %q", u.Scheme)
		}
		c.endpoint = u
		return nil
	}
}

// OptReqToken sets a token to be sent with every request.
func OptReqToken(token Token) ClientOpt {
	return func(c *Client) error {
		if token.Value == "" {
			return errors.ErrBadParameter.With("OptReqToken")
		}
		c.token = token
		return nil
	}
}

// OptHeader sets a custom header to be sent with every request.
func OptHeader(key, value string) ClientOpt {
	return func(c *Client) error {
		if key == "" {
			return errors.ErrBadParameter.With("OptHeader")
		}
		c.headers[key] = value
		return nil
	}
}

// OptTimeout sets the per-request timeout, which otherwise defaults to
// DefaultTimeout.
func OptTimeout(v time.Duration) ClientOpt {
	return func(c *Client) error {
		if v <= 0 {
			return errors.ErrBadParameter.With("OptTimeout")
		}
		c.timeout = v
		return nil
	}
}

// OptUserAgent sets the user agent string sent with every request.
func OptUserAgent(v string) ClientOpt {
	return func(c *Client) error {
		if v == "" {
			return errors.ErrBadParameter.With("OptUserAgent")
		}
		c.ua = v
		return nil
	}
}

// OptTrace writes a line per request and response to w. When verbose is
// set, request and response headers are also written, with the
// Authorization value redacted.
func OptTrace(w io.Writer, verbose bool) ClientOpt {
	return func(c *Client) error {
		c.trace = w
		c.verbose = verbose
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST OPTIONS

// OptPath appends path segments to the endpoint path. Segments are escaped
// when the request is built, so caller-supplied identifiers may contain
// reserved characters.
func OptPath(v ...string) RequestOpt {
	return func(o *requestOpts) error {
		o.segments = append(o.segments, v...)
		return nil
	}
}

// OptQuery sets the query parameters for the request.
func OptQuery(v url.Values) RequestOpt {
	return func(o *requestOpts) error {
		o.query = v
		return nil
	}
}

// OptAccept sets the Accept header, overriding the payload's accept type.
func OptAccept(v string) RequestOpt {
	return func(o *requestOpts) error {
		if v == "" {
			return errors.ErrBadParameter.With("OptAccept")
		}
		o.accept = v
		return nil
	}
}

// OptMethod overrides the payload method, for operations which submit a
// body with a verb other than POST.
func OptMethod(v string) RequestOpt {
	return func(o *requestOpts) error {
		if v == "" {
			return errors.ErrBadParameter.With("OptMethod")
		}
		o.method = v
		return nil
	}
}

// OptNoTimeout removes the request deadline, for long audio transfers.
func OptNoTimeout() RequestOpt {
	return func(o *requestOpts) error {
		o.noTimeout = true
		return nil
	}
}
