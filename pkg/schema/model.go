package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Model describes one speech recognition language model.
type Model struct {
	Name              string                  `json:"name" writer:",width:28"`
	Language          string                  `json:"language" writer:",width:8"`
	URL               string                  `json:"url" writer:",width:40"`
	Rate              int64                   `json:"rate" writer:",width:8,right"`
	SupportedFeatures *ModelSupportedFeatures `json:"supported_features,omitempty" writer:"-"`
	Description       string                  `json:"description" writer:",width:40,wrap"`
}

// ModelSupportedFeatures describes the optional capabilities of a
// recognition model.
type ModelSupportedFeatures struct {
	CustomLanguageModel bool `json:"custom_language_model"`
	CustomAcousticModel bool `json:"custom_acoustic_model"`
	SpeakerLabels       bool `json:"speaker_labels"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
