/*
Package speechtotext is a typed client for the Speech to Text service,
covering the language model catalogue.
*/
package speechtotext

import (
	// Packages
	client "github.com/mutablelogic/go-watson/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for a Speech to Text service instance, with the
// bearer token obtained from authentication
func New(endpoint, token string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endpoint),
		client.OptReqToken(client.Token{
			Scheme: "Bearer",
			Value:  token,
		}),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}
