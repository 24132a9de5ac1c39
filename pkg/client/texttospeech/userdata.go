package texttospeech

import (
	"context"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DeleteUserData deletes all data associated with a customer id, as
// supplied with the X-Watson-Metadata header on earlier requests. The
// service deletes asynchronously and responds before deletion completes.
func (c *Client) DeleteUserData(ctx context.Context, customerID string) error {
	if customerID == "" {
		return httpresponse.ErrBadRequest.With("customer id is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1", "user_data", customerID)); err != nil {
		return err
	}

	// Return success
	return nil
}
