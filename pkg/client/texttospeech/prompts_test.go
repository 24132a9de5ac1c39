package texttospeech_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	// Packages
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Prompts_001(t *testing.T) {
	assert := assert.New(t)

	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/customizations/cust-123/prompts", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"prompts": []map[string]string{
				{"prompt": "Thank you for calling.", "prompt_id": "greeting", "status": "available"},
			},
		})
	})

	prompts, err := tts.ListPrompts(context.Background(), "cust-123")
	if !assert.NoError(err) {
		assert.FailNow("failed to list prompts")
	}
	assert.Len(prompts, 1)
	assert.Equal("greeting", prompts[0].PromptId)
	assert.Equal("available", prompts[0].Status)
}

func Test_Prompts_002(t *testing.T) {
	assert := assert.New(t)

	// Adding a prompt uploads a metadata part and a WAV file part
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1/customizations/cust-123/prompts/greeting", r.URL.Path)
		assert.NoError(r.ParseMultipartForm(1 << 20))

		var metadata struct {
			Prompt    string `json:"prompt"`
			SpeakerId string `json:"speaker_id"`
		}
		assert.NoError(json.Unmarshal([]byte(r.FormValue("metadata")), &metadata))
		assert.Equal("Thank you for calling.", metadata.Prompt)
		assert.Equal("spk-456", metadata.SpeakerId)

		file, header, err := r.FormFile("file")
		if !assert.NoError(err) {
			assert.FailNow("no file part")
		}
		defer file.Close()
		assert.Equal("greeting.wav", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal("RIFF", string(data))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"prompt":    "Thank you for calling.",
			"prompt_id": "greeting",
			"status":    "processing",
		})
	})

	prompt, err := tts.AddPrompt(context.Background(), "cust-123", "greeting", "Thank you for calling.", "spk-456", strings.NewReader("RIFF"))
	if !assert.NoError(err) {
		assert.FailNow("failed to add prompt")
	}
	assert.Equal("greeting", prompt.PromptId)
	assert.Equal("processing", prompt.Status)
}

func Test_Prompts_003(t *testing.T) {
	assert := assert.New(t)

	// Prompt id, text and audio are required
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Fail("unexpected request")
	})

	_, err := tts.AddPrompt(context.Background(), "cust-123", "", "text", "", strings.NewReader("RIFF"))
	assert.Error(err)
	_, err = tts.AddPrompt(context.Background(), "cust-123", "greeting", "", "", strings.NewReader("RIFF"))
	assert.Error(err)
	_, err = tts.AddPrompt(context.Background(), "cust-123", "greeting", "text", "", nil)
	assert.Error(err)
}

func Test_Prompts_004(t *testing.T) {
	assert := assert.New(t)

	// Getting and deleting a prompt address it by id
	var method string
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		assert.Equal("/v1/customizations/cust-123/prompts/greeting", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{
				"prompt":    "Thank you for calling.",
				"prompt_id": "greeting",
				"status":    "available",
			})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	prompt, err := tts.GetPrompt(context.Background(), "cust-123", "greeting")
	if !assert.NoError(err) {
		assert.FailNow("failed to get prompt")
	}
	assert.Equal("available", prompt.Status)

	assert.NoError(tts.DeletePrompt(context.Background(), "cust-123", "greeting"))
	assert.Equal(http.MethodDelete, method)
}
