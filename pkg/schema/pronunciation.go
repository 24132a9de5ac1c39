package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Pronunciation is the phonetic rendering of a word or phrase.
type Pronunciation struct {
	Pronunciation string `json:"pronunciation" writer:",width:60,wrap"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Pronunciation) String() string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
