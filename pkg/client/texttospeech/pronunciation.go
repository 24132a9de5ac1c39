package texttospeech

import (
	"context"
	"net/url"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Pronunciation returns the phonetic rendering of a word or phrase, in the
// IBM SPR format unless OptPhonemeFormat selects IPA. The voice determines
// the language of the pronunciation.
func (c *Client) Pronunciation(ctx context.Context, text string, opt ...Opt) (*schema.Pronunciation, error) {
	var response schema.Pronunciation

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
	if o.phonemes != "" {
		query.Set("format", o.phonemes)
	}
	if o.customization != "" {
		query.Set("customization_id", o.customization)
	}

	if err := c.DoWithContext(ctx, client.MethodGet, &response,
		client.OptPath("v1", "pronunciation"),
		client.OptQuery(query),
	); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
