/*
Package iam exchanges a long-lived API key for a short-lived IAM bearer
token. The token is returned to the caller as-is: there is no local
persistence, no retry, and no automatic renewal. Callers can use
schema.Token.Expired to decide when to authenticate again.
*/
package iam

import (
	"context"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Endpoint is the fixed identity token endpoint.
	Endpoint = "https://iam.cloud.ibm.com/identity/token"

	// GrantType is the grant type for API key exchange.
	GrantType = "urn:ibm:params:oauth:grant-type:apikey"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for the identity token endpoint
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(Endpoint),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Authenticate exchanges an API key for an access token. The key is not
// validated locally beyond being non-empty. A 400 response from the
// identity service is returned as client.ErrBadRequest, a transport
// failure as client.ErrConnection, and any other status as
// client.Err(status).
func (c *Client) Authenticate(ctx context.Context, apikey string) (*schema.Token, error) {
	var request struct {
		GrantType string `json:"grant_type"`
		ApiKey    string `json:"apikey"`
	}
	var response schema.Token

	if apikey == "" {
		return nil, errors.ErrBadParameter.With("apikey")
	}

	// Request->Response
	request.GrantType = GrantType
	request.ApiKey = apikey
	if payload, err := client.NewFormRequest(request); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
