package texttospeech

import (
	"context"
	"encoding/json"
	"io"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
	multipart "github.com/mutablelogic/go-watson/pkg/client/multipart"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type promptMetadata struct {
	Prompt    string `json:"prompt"`
	SpeakerId string `json:"speaker_id,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListPrompts lists the prompts defined for a custom model.
func (c *Client) ListPrompts(ctx context.Context, customizationID string) ([]schema.Prompt, error) {
	var response struct {
		Prompts []schema.Prompt `json:"prompts"`
	}

	if customizationID == "" {
		return nil, httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "customizations", customizationID, "prompts")); err != nil {
		return nil, unauthorized(err, customizationID)
	}

	// Return success
	return response.Prompts, nil
}

// AddPrompt adds a prompt to a custom model: the prompt text together with
// the WAV audio which speaks it. The speaker id is optional and associates
// the prompt with a speaker model. The prompt audio is uploaded as a
// multipart request with a JSON metadata part.
func (c *Client) AddPrompt(ctx context.Context, customizationID, promptID, text, speakerID string, audio io.Reader) (*schema.Prompt, error) {
	var request struct {
		Metadata string         `json:"metadata"`
		File     multipart.File `json:"file"`
	}
	var response schema.Prompt

	if customizationID == "" || promptID == "" || text == "" {
		return nil, httpresponse.ErrBadRequest.With("customization id, prompt id and text are required")
	}
	if audio == nil {
		return nil, httpresponse.ErrBadRequest.With("audio is required")
	}

	// The metadata part is a JSON document
	metadata, err := json.Marshal(promptMetadata{Prompt: text, SpeakerId: speakerID})
	if err != nil {
		return nil, err
	}
	request.Metadata = string(metadata)
	request.File = multipart.File{
		Path: promptID + ".wav",
		Body: audio,
	}

	// Request->Response
	if payload, err := client.NewMultipartRequest(request); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response,
		client.OptPath("v1", "customizations", customizationID, "prompts", promptID),
		client.OptNoTimeout(),
	); err != nil {
		return nil, unauthorized(err, customizationID)
	}

	// Return success
	return &response, nil
}

// GetPrompt returns one prompt of a custom model.
func (c *Client) GetPrompt(ctx context.Context, customizationID, promptID string) (*schema.Prompt, error) {
	var response schema.Prompt

	if customizationID == "" || promptID == "" {
		return nil, httpresponse.ErrBadRequest.With("customization id and prompt id are required")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "customizations", customizationID, "prompts", promptID)); err != nil {
		return nil, unauthorized(err, customizationID)
	}

	// Return success
	return &response, nil
}

// DeletePrompt removes a prompt from a custom model.
func (c *Client) DeletePrompt(ctx context.Context, customizationID, promptID string) error {
	if customizationID == "" || promptID == "" {
		return httpresponse.ErrBadRequest.With("customization id and prompt id are required")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1", "customizations", customizationID, "prompts", promptID)); err != nil {
		return unauthorized(err, customizationID)
	}

	// Return success
	return nil
}
