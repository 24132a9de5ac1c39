package texttospeech_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/client"
	"github.com/mutablelogic/go-watson/pkg/client/texttospeech"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Speakers_001(t *testing.T) {
	assert := assert.New(t)

	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/speakers", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"speakers": []map[string]string{
				{"speaker_id": "spk-123", "name": "Announcer"},
			},
		})
	})

	speakers, err := tts.ListSpeakers(context.Background())
	if !assert.NoError(err) {
		assert.FailNow("failed to list speakers")
	}
	assert.Len(speakers, 1)
	assert.Equal("spk-123", speakers[0].SpeakerId)
	assert.Equal("Announcer", speakers[0].Name)
}

func Test_Speakers_002(t *testing.T) {
	assert := assert.New(t)

	// Enrollment streams the audio body with the name in the query
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1/speakers", r.URL.Path)
		assert.Equal("Announcer", r.URL.Query().Get("speaker_name"))
		assert.Equal(texttospeech.ContentTypeWav, r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		assert.Equal("RIFF", string(data))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"speaker_id": "spk-123"})
	})

	speaker, err := tts.CreateSpeaker(context.Background(), "Announcer", strings.NewReader("RIFF"))
	if !assert.NoError(err) {
		assert.FailNow("failed to create speaker")
	}
	assert.Equal("spk-123", speaker.SpeakerId)

	// The name and audio are required
	_, err = tts.CreateSpeaker(context.Background(), "", strings.NewReader("RIFF"))
	assert.Error(err)
	_, err = tts.CreateSpeaker(context.Background(), "Announcer", nil)
	assert.Error(err)
}

func Test_Speakers_003(t *testing.T) {
	assert := assert.New(t)

	// The speaker id is not in the response body, so it is filled in
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/speakers/spk-123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"customizations": []map[string]any{
				{
					"customization_id": "cust-123",
					"prompts": []map[string]string{
						{"prompt": "Thank you for calling.", "prompt_id": "greeting", "status": "available"},
					},
				},
			},
		})
	})

	speaker, err := tts.GetSpeaker(context.Background(), "spk-123")
	if !assert.NoError(err) {
		assert.FailNow("failed to get speaker")
	}
	assert.Equal("spk-123", speaker.SpeakerId)
	if !assert.Len(speaker.Customizations, 1) {
		assert.FailNow("expected one customization")
	}
	assert.Equal("cust-123", speaker.Customizations[0].CustomizationId)
	assert.Len(speaker.Customizations[0].Prompts, 1)
}

func Test_Speakers_004(t *testing.T) {
	assert := assert.New(t)

	// A conditional-get short-circuit is an error value, not a panic
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	})

	_, err := tts.GetSpeaker(context.Background(), "spk-123")
	assert.Error(err)
	assert.ErrorIs(err, client.ErrNotModified)
}

func Test_UserData_001(t *testing.T) {
	assert := assert.New(t)

	// Deletion is asynchronous and the service responds immediately
	tts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodDelete, r.Method)
		assert.Equal("/v1/user_data/customer-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(tts.DeleteUserData(context.Background(), "customer-1"))
	assert.Error(tts.DeleteUserData(context.Background(), ""))
}
