package texttospeech

import (
	"context"
	"net/http"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type translationRequest struct {
	Translation  string  `json:"translation"`
	PartOfSpeech *string `json:"part_of_speech,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// AddWords adds one or more words and their translations to a custom
// model, replacing any existing translation for the same word.
func (c *Client) AddWords(ctx context.Context, customizationID string, words []schema.Word) error {
	var request struct {
		Words []schema.Word `json:"words"`
	}

	if customizationID == "" {
		return httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if len(words) == 0 {
		return httpresponse.ErrBadRequest.With("no words")
	}
	request.Words = words

	if payload, err := client.NewJSONRequest(request); err != nil {
		return err
	} else if err := c.DoWithContext(ctx, payload, nil, client.OptPath("v1", "customizations", customizationID, "words")); err != nil {
		return unauthorized(err, customizationID)
	}

	// Return success
	return nil
}

// ListWords lists the words defined for a custom model, in alphabetical
// order.
func (c *Client) ListWords(ctx context.Context, customizationID string) ([]schema.Word, error) {
	var response struct {
		Words []schema.Word `json:"words"`
	}

	if customizationID == "" {
		return nil, httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "customizations", customizationID, "words")); err != nil {
		return nil, unauthorized(err, customizationID)
	}

	// Return success
	return response.Words, nil
}

// AddWord adds or replaces a single word translation in a custom model.
func (c *Client) AddWord(ctx context.Context, customizationID string, word schema.Word) error {
	var request translationRequest

	if customizationID == "" {
		return httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if word.Word == "" || word.Translation == "" {
		return httpresponse.ErrBadRequest.With("word and translation are required")
	}
	request.Translation = word.Translation
	if word.PartOfSpeech != "" {
		request.PartOfSpeech = types.StringPtr(word.PartOfSpeech)
	}

	if payload, err := client.NewJSONRequest(request); err != nil {
		return err
	} else if err := c.DoWithContext(ctx, payload, nil,
		client.OptPath("v1", "customizations", customizationID, "words", word.Word),
		client.OptMethod(http.MethodPut),
	); err != nil {
		return unauthorized(err, customizationID)
	}

	// Return success
	return nil
}

// GetWord returns the translation for a single word of a custom model.
func (c *Client) GetWord(ctx context.Context, customizationID, word string) (*schema.Word, error) {
	var response schema.Word

	if customizationID == "" || word == "" {
		return nil, httpresponse.ErrBadRequest.With("customization id and word are required")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "customizations", customizationID, "words", word)); err != nil {
		return nil, unauthorized(err, customizationID)
	}
	response.Word = word

	// Return success
	return &response, nil
}

// DeleteWord removes a single word from a custom model.
func (c *Client) DeleteWord(ctx context.Context, customizationID, word string) error {
	if customizationID == "" || word == "" {
		return httpresponse.ErrBadRequest.With("customization id and word are required")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1", "customizations", customizationID, "words", word)); err != nil {
		return unauthorized(err, customizationID)
	}

	// Return success
	return nil
}
