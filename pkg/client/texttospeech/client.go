/*
Package texttospeech is a typed client for the Text to Speech service:
voices, synthesis, pronunciation, custom pronunciation models with their
words and prompts, speaker models, and user data deletion. Every method is
a single network round trip; no state is shared between calls.
*/
package texttospeech

import (
	// Packages
	client "github.com/mutablelogic/go-watson/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client

	// Default voice for synthesis and pronunciation calls which do not
	// pass OptVoice. Set once at construction or by WithVoice.
	voice Voice
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for a Text to Speech service instance, with the
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
		return &Client{Client: client, voice: DefaultVoice}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Voice returns the default voice for this client.
func (c *Client) Voice() Voice {
	return c.voice
}

// WithVoice returns a copy of the client which uses the given voice as the
// default for synthesis and pronunciation. The receiver is not modified, so
// clients can be shared between goroutines.
func (c *Client) WithVoice(voice Voice) *Client {
	copy := *c
	copy.voice = voice
	return &copy
}
