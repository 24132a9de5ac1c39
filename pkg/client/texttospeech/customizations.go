package texttospeech

import (
	"context"
	"errors"
	"net/url"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type createModelRequest struct {
	Name        string  `json:"name"`
	Language    *string `json:"language,omitempty"`
	Description *string `json:"description,omitempty"`
}

type updateModelRequest struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Words       []schema.Word `json:"words,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateCustomModel creates an empty custom pronunciation model for the
// given language, which defaults to en-US. The response carries only the
// customization id.
func (c *Client) CreateCustomModel(ctx context.Context, name string, language Language, description string, opt ...Opt) (*schema.CustomModel, error) {
	var request createModelRequest
	var response schema.CustomModel

	if name == "" {
		return nil, httpresponse.ErrBadRequest.With("name is empty")
	}
	request.Name = name
	if language != "" {
		request.Language = types.StringPtr(language.Id())
	}
	if description != "" {
		request.Description = types.StringPtr(description)
	}

	// Request->Response
	if payload, err := client.NewJSONRequest(request); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath("v1", "customizations")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// ListCustomModels lists metadata for the custom models owned by this
// service instance, optionally restricted to one language.
func (c *Client) ListCustomModels(ctx context.Context, language Language) ([]schema.CustomModel, error) {
	var response struct {
		Customizations []schema.CustomModel `json:"customizations"`
	}

	query := url.Values{}
	if language != "" {
		query.Set("language", language.Id())
	}

	if err := c.DoWithContext(ctx, client.MethodGet, &response,
		client.OptPath("v1", "customizations"),
		client.OptQuery(query),
	); err != nil {
		return nil, err
	}

	// Return success
	return response.Customizations, nil
}

// GetCustomModel returns one custom model, including its words and
// prompts. A not-authorized response carries the customization id back to
// the caller.
func (c *Client) GetCustomModel(ctx context.Context, customizationID string) (*schema.CustomModel, error) {
	var response schema.CustomModel

	if customizationID == "" {
		return nil, httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "customizations", customizationID)); err != nil {
		return nil, unauthorized(err, customizationID)
	}

	// Return success
	return &response, nil
}

// UpdateCustomModel changes the name or description of a custom model, and
// adds words to it. Any argument left empty or nil is unchanged.
func (c *Client) UpdateCustomModel(ctx context.Context, customizationID string, name, description string, words []schema.Word) error {
	var request updateModelRequest

	if customizationID == "" {
		return httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if name != "" {
		request.Name = types.StringPtr(name)
	}
	if description != "" {
		request.Description = types.StringPtr(description)
	}
	request.Words = words

	if payload, err := client.NewJSONRequest(request); err != nil {
		return err
	} else if err := c.DoWithContext(ctx, payload, nil, client.OptPath("v1", "customizations", customizationID)); err != nil {
		return unauthorized(err, customizationID)
	}

	// Return success
	return nil
}

// DeleteCustomModel deletes a custom model.
func (c *Client) DeleteCustomModel(ctx context.Context, customizationID string) error {
	if customizationID == "" {
		return httpresponse.ErrBadRequest.With("customization id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1", "customizations", customizationID)); err != nil {
		return unauthorized(err, customizationID)
	}

	// Return success
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// unauthorized rewrites a not-authorized classification so it carries the
// offending resource identifier.
func unauthorized(err error, id string) error {
	if errors.Is(err, client.ErrNotAuthorized) {
		return client.ErrNotAuthorized.With(id)
	}
	return err
}
