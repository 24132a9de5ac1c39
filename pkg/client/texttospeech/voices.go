package texttospeech

import (
	"context"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListVoices lists all voices available for synthesis.
func (c *Client) ListVoices(ctx context.Context) ([]schema.Voice, error) {
	var response struct {
		Voices []schema.Voice `json:"voices"`
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "voices")); err != nil {
		return nil, err
	}

	// Return success
	return response.Voices, nil
}

// GetVoice returns information about one voice. A customization id can be
// passed to include information about that custom model.
func (c *Client) GetVoice(ctx context.Context, voice Voice, opt ...Opt) (*schema.Voice, error) {
	var response schema.Voice

	o, err := applyOpts(c.voice, opt...)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if o.customization != "" {
		query.Set("customization_id", o.customization)
	}

	if err := c.DoWithContext(ctx, client.MethodGet, &response,
		client.OptPath("v1", "voices", voice.Id()),
		client.OptQuery(query),
	); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
