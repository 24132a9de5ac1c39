package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Voice describes one synthesis voice offered by the service.
type Voice struct {
	URL               string             `json:"url" writer:",width:40"`
	Gender            string             `json:"gender" writer:",width:8"`
	Name              string             `json:"name" writer:",width:24"`
	Language          string             `json:"language" writer:",width:8"`
	Description       string             `json:"description" writer:",width:40,wrap"`
	Customizable      bool               `json:"customizable"`
	SupportedFeatures *SupportedFeatures `json:"supported_features,omitempty" writer:"-"`
	Customization     *CustomModel       `json:"customization,omitempty" writer:"-"`
}

// SupportedFeatures describes the optional capabilities of a voice.
type SupportedFeatures struct {
	CustomPronunciation bool `json:"custom_pronunciation"`
	VoiceTransformation bool `json:"voice_transformation"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (v Voice) String() string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
