package speechtotext

import (
	"context"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a recognition model identifier. The service matches identifiers
// literally, so the constants below must be exact.
type Model string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ModelArMsBroadband  Model = "ar-MS_BroadbandModel"
	ModelDeDeBroadband  Model = "de-DE_BroadbandModel"
	ModelDeDeNarrowband Model = "de-DE_NarrowbandModel"
	ModelEnAuBroadband  Model = "en-AU_BroadbandModel"
	ModelEnAuNarrowband Model = "en-AU_NarrowbandModel"
	ModelEnGbBroadband  Model = "en-GB_BroadbandModel"
	ModelEnGbNarrowband Model = "en-GB_NarrowbandModel"
	ModelEnUsBroadband  Model = "en-US_BroadbandModel"
	ModelEnUsNarrowband Model = "en-US_NarrowbandModel"
	ModelEnUsShortForm  Model = "en-US_ShortForm_NarrowbandModel"
	ModelEsEsBroadband  Model = "es-ES_BroadbandModel"
	ModelEsEsNarrowband Model = "es-ES_NarrowbandModel"
	ModelFrCaBroadband  Model = "fr-CA_BroadbandModel"
	ModelFrCaNarrowband Model = "fr-CA_NarrowbandModel"
	ModelFrFrBroadband  Model = "fr-FR_BroadbandModel"
	ModelFrFrNarrowband Model = "fr-FR_NarrowbandModel"
	ModelItItBroadband  Model = "it-IT_BroadbandModel"
	ModelItItNarrowband Model = "it-IT_NarrowbandModel"
	ModelJaJpBroadband  Model = "ja-JP_BroadbandModel"
	ModelJaJpNarrowband Model = "ja-JP_NarrowbandModel"
	ModelKoKrBroadband  Model = "ko-KR_BroadbandModel"
	ModelKoKrNarrowband Model = "ko-KR_NarrowbandModel"
	ModelNlNlBroadband  Model = "nl-NL_BroadbandModel"
	ModelNlNlNarrowband Model = "nl-NL_NarrowbandModel"
	ModelPtBrBroadband  Model = "pt-BR_BroadbandModel"
	ModelPtBrNarrowband Model = "pt-BR_NarrowbandModel"
	ModelZhCnBroadband  Model = "zh-CN_BroadbandModel"
	ModelZhCnNarrowband Model = "zh-CN_NarrowbandModel"
)

var (
	// Models lists every recognition model identifier understood by the
	// service.
	Models = []Model{
		ModelArMsBroadband,
		ModelDeDeBroadband, ModelDeDeNarrowband,
		ModelEnAuBroadband, ModelEnAuNarrowband,
		ModelEnGbBroadband, ModelEnGbNarrowband,
		ModelEnUsBroadband, ModelEnUsNarrowband, ModelEnUsShortForm,
		ModelEsEsBroadband, ModelEsEsNarrowband,
		ModelFrCaBroadband, ModelFrCaNarrowband,
		ModelFrFrBroadband, ModelFrFrNarrowband,
		ModelItItBroadband, ModelItItNarrowband,
		ModelJaJpBroadband, ModelJaJpNarrowband,
		ModelKoKrBroadband, ModelKoKrNarrowband,
		ModelNlNlBroadband, ModelNlNlNarrowband,
		ModelPtBrBroadband, ModelPtBrNarrowband,
		ModelZhCnBroadband, ModelZhCnNarrowband,
	}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Id returns the literal identifier the service expects.
func (m Model) Id() string {
	return string(m)
}

// ListModels lists the recognition models supported by the service.
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	var response struct {
		Models []schema.Model `json:"models"`
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "models")); err != nil {
		return nil, err
	}

	// Return success
	return response.Models, nil
}

// GetModel returns information about one recognition model.
func (c *Client) GetModel(ctx context.Context, model Model) (*schema.Model, error) {
	var response schema.Model

	if model == "" {
		return nil, httpresponse.ErrBadRequest.With("model is empty")
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("v1", "models", model.Id())); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
