package watson_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/client"
	"github.com/mutablelogic/go-watson/pkg/watson"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Watson_001(t *testing.T) {
	assert := assert.New(t)

	// Login exchanges the key and creates a client for each configured
	// service instance
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "tok-123",
				"token_type":   "Bearer",
				"expires_in":   3600,
				"expiration":   time.Now().Add(time.Hour).Unix(),
			})
		case r.URL.Path == "/v1/voices":
			assert.Equal("Bearer tok-123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"voices": []map[string]string{
					{"name": "en-US_TestVoice", "language": "en-US"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("WATSON_API_KEY", "my-api-key")
	t.Setenv("WATSON_TTS_URL", server.URL)
	t.Setenv("WATSON_STT_URL", "")

	// The endpoint override points the token exchange at the test server
	c, err := watson.New(client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}
	assert.True(c.Expired())
	assert.Nil(c.TextToSpeech())

	if !assert.NoError(c.Login(context.Background())) {
		assert.FailNow("failed to login")
	}
	assert.False(c.Expired())
	assert.Equal("tok-123", c.Token().AccessToken)
	assert.NotNil(c.TextToSpeech())
	assert.Nil(c.SpeechToText())

	voices, err := c.TextToSpeech().ListVoices(context.Background())
	assert.NoError(err)
	assert.Len(voices, 1)
}

func Test_Watson_002(t *testing.T) {
	assert := assert.New(t)

	// Login fails without an API key
	t.Setenv("WATSON_API_KEY", "")
	c, err := watson.New()
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}
	assert.Error(c.Login(context.Background()))
}
