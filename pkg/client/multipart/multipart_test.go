package multipart_test

import (
	"bytes"
	"io"
	"mime"
	gomultipart "mime/multipart"
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-watson/pkg/client/multipart"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Form_001(t *testing.T) {
	assert := assert.New(t)

	// Fields are emitted in declaration order and escaped
	var buf bytes.Buffer
	enc := multipart.NewFormEncoder(&buf)
	err := enc.Encode(struct {
		GrantType string `json:"grant_type"`
		ApiKey    string `json:"apikey"`
	}{
		GrantType: "urn:ibm:params:oauth:grant-type:apikey",
		ApiKey:    "key with spaces",
	})
	assert.NoError(err)
	assert.NoError(enc.Close())
	assert.Equal(multipart.ContentTypeForm, enc.ContentType())
	assert.Equal("grant_type=urn%3Aibm%3Aparams%3Aoauth%3Agrant-type%3Aapikey&apikey=key+with+spaces", buf.String())
}

func Test_Form_002(t *testing.T) {
	assert := assert.New(t)

	// Nil pointers and empty omitempty fields are skipped
	var buf bytes.Buffer
	enc := multipart.NewFormEncoder(&buf)
	err := enc.Encode(struct {
		Name        string  `json:"name"`
		Language    *string `json:"language,omitempty"`
		Description string  `json:"description,omitempty"`
	}{
		Name: "My model",
	})
	assert.NoError(err)
	assert.NoError(enc.Close())
	assert.Equal("name=My+model", buf.String())
}

func Test_Form_003(t *testing.T) {
	assert := assert.New(t)

	// File fields are rejected in form bodies, and non-structs are rejected
	var buf bytes.Buffer
	enc := multipart.NewFormEncoder(&buf)
	assert.Error(enc.Encode(struct {
		Audio multipart.File `json:"audio"`
	}{}))
	assert.Error(enc.Encode("not a struct"))
	assert.Error(enc.Encode(nil))
}

func Test_Multipart_001(t *testing.T) {
	assert := assert.New(t)

	// A metadata field and a file part round-trip through the reader
	var buf bytes.Buffer
	enc := multipart.NewMultipartEncoder(&buf)
	err := enc.Encode(struct {
		Metadata string         `json:"metadata"`
		File     multipart.File `json:"file"`
	}{
		Metadata: `{"prompt_text":"Hello"}`,
		File: multipart.File{
			Path: "prompts/greeting.wav",
			Body: strings.NewReader("RIFF"),
		},
	})
	assert.NoError(err)
	assert.NoError(enc.Close())

	mediatype, params, err := mime.ParseMediaType(enc.ContentType())
	assert.NoError(err)
	assert.Equal("multipart/form-data", mediatype)

	reader := gomultipart.NewReader(&buf, params["boundary"])
	part, err := reader.NextPart()
	if !assert.NoError(err) {
		assert.FailNow("no metadata part")
	}
	assert.Equal("metadata", part.FormName())
	data, err := io.ReadAll(part)
	assert.NoError(err)
	assert.Equal(`{"prompt_text":"Hello"}`, string(data))

	part, err = reader.NextPart()
	if !assert.NoError(err) {
		assert.FailNow("no file part")
	}
	assert.Equal("file", part.FormName())
	assert.Equal("greeting.wav", part.FileName())
	data, err = io.ReadAll(part)
	assert.NoError(err)
	assert.Equal("RIFF", string(data))

	_, err = reader.NextPart()
	assert.ErrorIs(err, io.EOF)
}
