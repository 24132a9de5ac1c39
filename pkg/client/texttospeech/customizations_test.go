package texttospeech_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/client"
	"github.com/mutablelogic/go-watson/pkg/client/texttospeech"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Customizations_001(t *testing.T) {
	assert := assert.New(t)

	// Creating a model posts the name and optional fields as JSON
	var body map[string]any
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1/customizations", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		body = nil
		assert.NoError(json.Unmarshal(data, &body))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"customization_id": "cust-123"})
	})

	model, err := tts.CreateCustomModel(context.Background(), "My model", texttospeech.LangDeDe, "A test model")
	if !assert.NoError(err) {
		assert.FailNow("failed to create model")
	}
	assert.Equal("cust-123", model.CustomizationId)
	assert.Equal("My model", body["name"])
	assert.Equal("de-DE", body["language"])
	assert.Equal("A test model", body["description"])

	// The language and description fields are omitted when empty
	_, err = tts.CreateCustomModel(context.Background(), "Other model", "", "")
	assert.NoError(err)
	assert.Equal("Other model", body["name"])
	assert.NotContains(body, "language")
	assert.NotContains(body, "description")

	// The name is required
	_, err = tts.CreateCustomModel(context.Background(), "", texttospeech.LangDeDe, "")
	assert.Error(err)
}

func Test_Customizations_002(t *testing.T) {
	assert := assert.New(t)

	// Listing decodes the wrapper object, with an optional language filter
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("en-US", r.URL.Query().Get("language"))
		json.NewEncoder(w).Encode(map[string]any{
			"customizations": []map[string]any{
				{"customization_id": "cust-123", "name": "My model", "language": "en-US"},
				{"customization_id": "cust-456", "name": "Other model", "language": "en-US"},
			},
		})
	})

	models, err := tts.ListCustomModels(context.Background(), texttospeech.LangEnUs)
	if !assert.NoError(err) {
		assert.FailNow("failed to list models")
	}
	assert.Len(models, 2)
	assert.Equal("cust-123", models[0].CustomizationId)
	assert.Equal("Other model", models[1].Name)
}

func Test_Customizations_003(t *testing.T) {
	assert := assert.New(t)

	// A not-authorized response carries the customization id back
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := tts.GetCustomModel(context.Background(), "cust-123")
	assert.Error(err)
	assert.ErrorIs(err, client.ErrNotAuthorized)
	assert.Contains(err.Error(), "cust-123")
}

func Test_Customizations_004(t *testing.T) {
	assert := assert.New(t)

	// Updating posts the changed fields, and delete issues a DELETE
	var method, path string
	var body map[string]any
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		body = nil
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		w.WriteHeader(http.StatusOK)
	})

	err := tts.UpdateCustomModel(context.Background(), "cust-123", "New name", "", nil)
	assert.NoError(err)
	assert.Equal(http.MethodPost, method)
	assert.Equal("/v1/customizations/cust-123", path)
	assert.Equal("New name", body["name"])
	assert.NotContains(body, "description")
	assert.NotContains(body, "words")

	err = tts.DeleteCustomModel(context.Background(), "cust-123")
	assert.NoError(err)
	assert.Equal(http.MethodDelete, method)
	assert.Equal("/v1/customizations/cust-123", path)

	// The customization id is required
	assert.Error(tts.UpdateCustomModel(context.Background(), "", "New name", "", nil))
	assert.Error(tts.DeleteCustomModel(context.Background(), ""))
}
