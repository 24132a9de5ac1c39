package texttospeech

import (
	"context"
	"net/url"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Synthesize renders text as spoken audio and returns the audio bytes
// unmodified. The service bases its understanding of the language of the
// text on the voice, so the voice should match the language. With no
// OptFormat the service returns its default format, opus in an ogg
// container at 48 kHz.
func (c *Client) Synthesize(ctx context.Context, text string, opt ...Opt) ([]byte, error) {
	var response []byte

	if text == "" {
		return nil, httpresponse.ErrBadRequest.With("text is empty")
	}
	o, err := applyOpts(c.voice, opt...)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("text", text)
	query.Set("voice", o.voice.Id())
	if o.accept != nil {
		if o.accept.Format.RateRequired() && o.accept.Rate == 0 {
			return nil, httpresponse.ErrBadRequest.Withf("format %q requires a sampling rate", o.accept.Format.Id())
		}
		query.Set("accept", o.accept.MIME())
	}
	if o.customization != "" {
		query.Set("customization_id", o.customization)
	}

	// Request->Response. Audio transfers can exceed the default timeout.
	if err := c.DoWithContext(ctx, client.MethodGet, &response,
		client.OptPath("v1", "synthesize"),
		client.OptQuery(query),
		client.OptAccept(client.ContentTypeAny),
		client.OptNoTimeout(),
	); err != nil {
		return nil, err
	}

	// Return success
	return response, nil
}
