package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	// Packages
	multipart "github.com/mutablelogic/go-watson/pkg/client/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Payload is a request body together with its method, content type and
// expected response type.
type Payload interface {
	io.Reader

	Method() string
	Accept() string
	Type() string
}

type payload struct {
	io.Reader
	method   string
	accept   string
	mimetype string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeAny  = "*/*"
	ContentTypeJSON = "application/json"
	ContentTypeForm = multipart.ContentTypeForm
)

var (
	// MethodGet is a payload for a GET request with no body.
	MethodGet Payload = &payload{method: http.MethodGet, accept: ContentTypeJSON}

	// MethodDelete is a payload for a DELETE request with no body.
	MethodDelete Payload = &payload{method: http.MethodDelete, accept: ContentTypeJSON}

	// MethodPost is a payload for a POST request with no body.
	MethodPost Payload = &payload{method: http.MethodPost, accept: ContentTypeJSON}
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewJSONRequest returns a POST payload with a JSON-encoded body.
func NewJSONRequest(in any, accept ...string) (Payload, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	return &payload{
		Reader:   buf,
		method:   http.MethodPost,
		accept:   acceptFor(accept),
		mimetype: ContentTypeJSON,
	}, nil
}

// NewFormRequest returns a POST payload with a form-urlencoded body. Fields
// are emitted in struct declaration order.
func NewFormRequest(in any, accept ...string) (Payload, error) {
	buf := new(bytes.Buffer)
	enc := multipart.NewFormEncoder(buf)
	if err := enc.Encode(in); err != nil {
		return nil, err
	} else if err := enc.Close(); err != nil {
		return nil, err
	}
	return &payload{
		Reader:   buf,
		method:   http.MethodPost,
		accept:   acceptFor(accept),
		mimetype: enc.ContentType(),
	}, nil
}

// NewMultipartRequest returns a POST payload with a multipart/form-data
// body. Fields of type multipart.File become file parts.
func NewMultipartRequest(in any, accept ...string) (Payload, error) {
	buf := new(bytes.Buffer)
	enc := multipart.NewMultipartEncoder(buf)
	if err := enc.Encode(in); err != nil {
		return nil, err
	} else if err := enc.Close(); err != nil {
		return nil, err
	}
	return &payload{
		Reader:   buf,
		method:   http.MethodPost,
		accept:   acceptFor(accept),
		mimetype: enc.ContentType(),
	}, nil
}

// NewAudioRequest returns a POST payload which streams raw audio of the
// given MIME type, used for speaker enrollment uploads.
func NewAudioRequest(r io.Reader, mimetype string) Payload {
	return &payload{
		Reader:   r,
		method:   http.MethodPost,
		accept:   ContentTypeJSON,
		mimetype: mimetype,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (p *payload) Method() string {
	return p.method
}

func (p *payload) Accept() string {
	return p.accept
}

func (p *payload) Type() string {
	return p.mimetype
}

func (p *payload) Read(data []byte) (int, error) {
	if p.Reader == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(data)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func acceptFor(accept []string) string {
	if len(accept) > 0 && accept[0] != "" {
		return accept[0]
	}
	return ContentTypeJSON
}
