// Package multipart encodes a struct into multipart/form-data or
// application/x-www-form-urlencoded request bodies. Fields are named by
// their json tags, and fields of type File become file parts.
package multipart

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// File represents a file part of a multipart request. The Path is used as
// the filename hint and the Body is streamed into the part.
type File struct {
	Path string
	Body io.Reader
}

// Encoder writes structs to an underlying writer in either multipart or
// form-urlencoded representation.
type Encoder struct {
	w    io.Writer
	form bool
	mw   *multipart.Writer
	n    int
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeForm = "application/x-www-form-urlencoded"
)

var (
	fileType = reflect.TypeOf(File{})
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMultipartEncoder returns an encoder which writes multipart/form-data
// to w.
func NewMultipartEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, mw: multipart.NewWriter(w)}
}

// NewFormEncoder returns an encoder which writes form-urlencoded data to w.
// Fields are emitted in struct declaration order.
func NewFormEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, form: true}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ContentType returns the MIME type of the encoded body, including the
// multipart boundary where relevant.
func (enc *Encoder) ContentType() string {
	if enc.form {
		return ContentTypeForm
	}
	return enc.mw.FormDataContentType()
}

// Encode writes the fields of v, which must be a struct or pointer to
// struct, to the underlying writer. Nil pointer fields and empty fields
// tagged omitempty are skipped. Anonymous struct fields are flattened.
func (enc *Encoder) Encode(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return errors.ErrBadParameter.With("Encode")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errors.ErrBadParameter.With("Encode")
	}
	return enc.encodeStruct(rv)
}

// Close finishes the body. For multipart bodies this writes the trailing
// boundary.
func (enc *Encoder) Close() error {
	if enc.form {
		return nil
	}
	return enc.mw.Close()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (enc *Encoder) encodeStruct(rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		value := rv.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Type != fileType {
			if err := enc.encodeStruct(value); err != nil {
				return err
			}
			continue
		}

		name, omitempty := tagName(field)
		if name == "-" {
			continue
		}

		// Dereference optional fields
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		}

		switch {
		case value.Type() == fileType:
			if err := enc.writeFile(name, value.Interface().(File)); err != nil {
				return err
			}
		default:
			if omitempty && value.IsZero() {
				continue
			}
			if err := enc.writeField(name, fmt.Sprint(value.Interface())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (enc *Encoder) writeField(name, value string) error {
	if enc.form {
		var err error
		if enc.n > 0 {
			_, err = fmt.Fprintf(enc.w, "&%s=%s", url.QueryEscape(name), url.QueryEscape(value))
		} else {
			_, err = fmt.Fprintf(enc.w, "%s=%s", url.QueryEscape(name), url.QueryEscape(value))
		}
		enc.n++
		return err
	}
	return enc.mw.WriteField(name, value)
}

func (enc *Encoder) writeFile(name string, file File) error {
	if enc.form {
		return errors.ErrBadParameter.Withf("file field %q in form request", name)
	}
	if file.Body == nil {
		return errors.ErrBadParameter.Withf("file field %q has no body", name)
	}
	path := file.Path
	if path == "" {
		path = name
	}
	part, err := enc.mw.CreateFormFile(name, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file.Body)
	return err
}

func tagName(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}
	omitempty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}
