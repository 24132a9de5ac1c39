package texttospeech

import (
	"context"
	"io"
	"net/url"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// ContentTypeWav is the content type for speaker enrollment audio.
	ContentTypeWav = "audio/wav"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListSpeakers lists the speaker models defined for this service instance.
func (c *Client) ListSpeakers(ctx context.Context) ([]schema.Speaker, error) {
	var response struct {
		Speakers []schema.Speaker `json:"speakers"`
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "speakers")); err != nil {
		return nil, err
	}

	// Return success
	return response.Speakers, nil
}

// CreateSpeaker creates a speaker model from a WAV voice sample. The
// response carries only the speaker id. The audio is streamed as the
// request body with content type audio/wav.
func (c *Client) CreateSpeaker(ctx context.Context, name string, audio io.Reader) (*schema.Speaker, error) {
	var response schema.Speaker

	if name == "" {
		return nil, httpresponse.ErrBadRequest.With("speaker name is empty")
	}
	if audio == nil {
		return nil, httpresponse.ErrBadRequest.With("audio is required")
	}

	query := url.Values{}
	query.Set("speaker_name", name)

	// Request->Response
	if err := c.DoWithContext(ctx, client.NewAudioRequest(audio, ContentTypeWav), &response,
		client.OptPath("v1", "speakers"),
		client.OptQuery(query),
		client.OptNoTimeout(),
	); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// GetSpeaker returns the prompts associated with a speaker model, grouped
// by custom model. A conditional-get short-circuit from the service is
// returned as client.ErrNotModified, which callers treat as a no-op. A
// not-authorized response carries the speaker id.
func (c *Client) GetSpeaker(ctx context.Context, speakerID string) (*schema.Speaker, error) {
	var response schema.Speaker

	if speakerID == "" {
		return nil, httpresponse.ErrBadRequest.With("speaker id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "speakers", speakerID)); err != nil {
		return nil, unauthorized(err, speakerID)
	}
	response.SpeakerId = speakerID

	// Return success
	return &response, nil
}

// DeleteSpeaker deletes a speaker model. Prompts created with the speaker
// remain but are no longer associated with it.
func (c *Client) DeleteSpeaker(ctx context.Context, speakerID string) error {
	if speakerID == "" {
		return httpresponse.ErrBadRequest.With("speaker id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1", "speakers", speakerID)); err != nil {
		return unauthorized(err, speakerID)
	}

	// Return success
	return nil
}
