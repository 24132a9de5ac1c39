package texttospeech_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Words_001(t *testing.T) {
	assert := assert.New(t)

	// Adding words posts the whole list as JSON
	var body map[string]any
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1/customizations/cust-123/words", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		assert.NoError(json.Unmarshal(data, &body))
		w.WriteHeader(http.StatusOK)
	})

	err := tts.AddWords(context.Background(), "cust-123", []schema.Word{
		{Word: "IEEE", Translation: "I triple E"},
		{Word: "NCAA", Translation: "N C double A"},
	})
	assert.NoError(err)
	words, ok := body["words"].([]any)
	if !assert.True(ok) {
		assert.FailNow("no words in body")
	}
	assert.Len(words, 2)

	// An empty list is rejected locally
	assert.Error(tts.AddWords(context.Background(), "cust-123", nil))
}

func Test_Words_002(t *testing.T) {
	assert := assert.New(t)

	// A single word is added with PUT and the translation body
	var method string
	var body map[string]any
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		assert.Equal("/v1/customizations/cust-123/words/IEEE", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		assert.NoError(json.Unmarshal(data, &body))
		w.WriteHeader(http.StatusOK)
	})

	err := tts.AddWord(context.Background(), "cust-123", schema.Word{
		Word:        "IEEE",
		Translation: "I triple E",
	})
	assert.NoError(err)
	assert.Equal(http.MethodPut, method)
	assert.Equal("I triple E", body["translation"])
	assert.NotContains(body, "part_of_speech")

	// A word without a translation is rejected locally
	assert.Error(tts.AddWord(context.Background(), "cust-123", schema.Word{Word: "IEEE"}))
}

func Test_Words_003(t *testing.T) {
	assert := assert.New(t)

	// The word itself is not in the response body, so it is filled in
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/customizations/cust-123/words/IEEE", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"translation": "I triple E"})
	})

	word, err := tts.GetWord(context.Background(), "cust-123", "IEEE")
	if !assert.NoError(err) {
		assert.FailNow("failed to get word")
	}
	assert.Equal("IEEE", word.Word)
	assert.Equal("I triple E", word.Translation)
}

func Test_Words_004(t *testing.T) {
	assert := assert.New(t)

	// Listing and deleting words
	var method string
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		switch r.Method {
		case http.MethodGet:
			assert.Equal("/v1/customizations/cust-123/words", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"words": []map[string]string{
					{"word": "IEEE", "translation": "I triple E"},
				},
			})
		case http.MethodDelete:
			assert.Equal("/v1/customizations/cust-123/words/IEEE", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	words, err := tts.ListWords(context.Background(), "cust-123")
	if !assert.NoError(err) {
		assert.FailNow("failed to list words")
	}
	assert.Len(words, 1)
	assert.Equal("IEEE", words[0].Word)

	assert.NoError(tts.DeleteWord(context.Background(), "cust-123", "IEEE"))
	assert.Equal(http.MethodDelete, method)
}
