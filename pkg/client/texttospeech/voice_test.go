package texttospeech_test

import (
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/client/texttospeech"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Voice_001(t *testing.T) {
	assert := assert.New(t)

	// Voice identifiers are unique, non-empty and carry a language prefix
	seen := make(map[texttospeech.Voice]bool)
	for _, voice := range texttospeech.Voices {
		assert.NotEmpty(voice.Id())
		assert.False(seen[voice], "duplicate voice %q", voice.Id())
		assert.True(strings.HasSuffix(voice.Id(), "Voice"), "voice %q", voice.Id())
		assert.Equal(byte('_'), voice.Id()[5], "voice %q", voice.Id())
		seen[voice] = true
	}
	assert.True(seen[texttospeech.DefaultVoice])
}

func Test_Language_001(t *testing.T) {
	assert := assert.New(t)

	// Languages are unique and every voice prefix is a known language
	seen := make(map[texttospeech.Language]bool)
	for _, language := range texttospeech.Languages {
		assert.Len(language.Id(), 5)
		assert.False(seen[language], "duplicate language %q", language.Id())
		seen[language] = true
	}
	assert.True(seen[texttospeech.DefaultLanguage])

	for _, voice := range texttospeech.Voices {
		prefix := texttospeech.Language(voice.Id()[:5])
		assert.True(seen[prefix], "voice %q has unknown language %q", voice.Id(), prefix.Id())
	}
}
