package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// CustomModel is a custom pronunciation model scoped to one language. The
// create operation returns only the customization id; words and prompts are
// returned only by the get operation.
type CustomModel struct {
	CustomizationId string   `json:"customization_id" writer:",width:36"`
	Name            string   `json:"name,omitempty" writer:",width:24"`
	Language        string   `json:"language,omitempty" writer:",width:8"`
	Owner           string   `json:"owner,omitempty" writer:"-"`
	Created         string   `json:"created,omitempty" writer:",width:24"`
	LastModified    string   `json:"last_modified,omitempty" writer:"-"`
	Description     string   `json:"description,omitempty" writer:",width:40,wrap"`
	Words           []Word   `json:"words,omitempty" writer:"-"`
	Prompts         []Prompt `json:"prompts,omitempty" writer:"-"`
}

// Word is a word-to-translation override within a custom model.
type Word struct {
	Word         string `json:"word" writer:",width:20"`
	Translation  string `json:"translation" writer:",width:40,wrap"`
	PartOfSpeech string `json:"part_of_speech,omitempty" writer:",width:12"`
}

// Prompt is a named (text, audio) pair within a custom model, optionally
// associated with a speaker model.
type Prompt struct {
	Prompt    string `json:"prompt" writer:",width:40,wrap"`
	PromptId  string `json:"prompt_id" writer:",width:20"`
	Status    string `json:"status,omitempty" writer:",width:12"`
	Error     string `json:"error,omitempty" writer:",width:30,wrap"`
	SpeakerId string `json:"speaker_id,omitempty" writer:",width:36"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m CustomModel) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (w Word) String() string {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (p Prompt) String() string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
