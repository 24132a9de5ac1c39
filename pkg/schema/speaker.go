package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Speaker is an enrollment profile derived from a voice sample. The create
// operation returns only the speaker id.
type Speaker struct {
	SpeakerId      string                 `json:"speaker_id" writer:",width:36"`
	Name           string                 `json:"name,omitempty" writer:",width:24"`
	Customizations []SpeakerCustomization `json:"customizations,omitempty" writer:"-"`
}

// SpeakerCustomization lists the prompts defined for a speaker within one
// custom model.
type SpeakerCustomization struct {
	CustomizationId string   `json:"customization_id"`
	Prompts         []Prompt `json:"prompts,omitempty"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Speaker) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
