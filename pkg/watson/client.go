/*
Package watson assembles the service clients from the environment: the API
key from WATSON_API_KEY and the service instance URLs from WATSON_TTS_URL
and WATSON_STT_URL. Clients are created for whichever services are
configured.
*/
package watson

import (
	"context"
	"os"
	"time"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
	iam "github.com/mutablelogic/go-watson/pkg/client/iam"
	speechtotext "github.com/mutablelogic/go-watson/pkg/client/speechtotext"
	texttospeech "github.com/mutablelogic/go-watson/pkg/client/texttospeech"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	iam   *iam.Client
	tts   *texttospeech.Client
	stt   *speechtotext.Client
	token *schema.Token
	opts  []client.ClientOpt
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. Authentication does not happen until Login is
// called, so creation never touches the network.
func New(opts ...client.ClientOpt) (*Client, error) {
	self := new(Client)
	self.opts = opts

	// iam client
	if client, err := iam.New(opts...); err != nil {
		return nil, err
	} else {
		self.iam = client
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func apikey() string {
	return os.Getenv("WATSON_API_KEY")
}

func tts_endpoint() string {
	return os.Getenv("WATSON_TTS_URL")
}

func stt_endpoint() string {
	return os.Getenv("WATSON_STT_URL")
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Login exchanges the API key for a bearer token and creates a client for
// each configured service instance. Call it again to replace an expired
// token; tokens are never refreshed implicitly.
func (c *Client) Login(ctx context.Context) error {
	key := apikey()
	if key == "" {
		return httpresponse.ErrBadRequest.With("WATSON_API_KEY is not set")
	}
	token, err := c.iam.Authenticate(ctx, key)
	if err != nil {
		return err
	}
	c.token = token

	// texttospeech client
	if endpoint := tts_endpoint(); endpoint != "" {
		if client, err := texttospeech.New(endpoint, token.AccessToken, c.opts...); err != nil {
			return err
		} else {
			c.tts = client
		}
	}

	// speechtotext client
	if endpoint := stt_endpoint(); endpoint != "" {
		if client, err := speechtotext.New(endpoint, token.AccessToken, c.opts...); err != nil {
			return err
		} else {
			c.stt = client
		}
	}

	// Return success
	return nil
}

// Token returns the access token from the last Login, or nil.
func (c *Client) Token() *schema.Token {
	return c.token
}

// Expired reports whether the token from the last Login has expired, or
// true when Login has not been called.
func (c *Client) Expired() bool {
	if c.token == nil {
		return true
	}
	return c.token.Expired(time.Now())
}

// TextToSpeech returns the Text to Speech client, or nil when
// WATSON_TTS_URL is not configured or Login has not been called.
func (c *Client) TextToSpeech() *texttospeech.Client {
	return c.tts
}

// SpeechToText returns the Speech to Text client, or nil when
// WATSON_STT_URL is not configured or Login has not been called.
func (c *Client) SpeechToText() *speechtotext.Client {
	return c.stt
}
