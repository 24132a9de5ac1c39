package texttospeech_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/client/texttospeech"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// HELPERS

func newTestClient(t *testing.T, handler http.HandlerFunc) *texttospeech.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := texttospeech.New(server.URL, "test-token")
	if err != nil {
		t.Fatal(err)
	}
	return client
}

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Client_001(t *testing.T) {
	assert := assert.New(t)

	client, err := texttospeech.New("https://api.example.com/instances/abc", "test-token")
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}
	assert.Equal(texttospeech.DefaultVoice, client.Voice())

	// WithVoice returns a copy and leaves the receiver untouched
	other := client.WithVoice(texttospeech.VoiceDeDeBirgitV3)
	assert.Equal(texttospeech.VoiceDeDeBirgitV3, other.Voice())
	assert.Equal(texttospeech.DefaultVoice, client.Voice())
}

func Test_Client_002(t *testing.T) {
	assert := assert.New(t)

	// An endpoint is required
	_, err := texttospeech.New("", "test-token")
	assert.Error(err)
}
