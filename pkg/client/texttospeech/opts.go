package texttospeech

import (
	"slices"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request options for synthesis and pronunciation
type opts struct {
	voice         Voice
	accept        *Accept
	customization string
	phonemes      string
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PhonemeIBM = "ibm"
	PhonemeIPA = "ipa"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(voice Voice, opt ...Opt) (*opts, error) {
	o := opts{voice: voice}
	for _, opt := range opt {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the voice, overriding the client default
func OptVoice(v Voice) Opt {
	return func(o *opts) error {
		if !slices.Contains(Voices, v) {
			return httpresponse.ErrBadRequest.Withf("voice %q not supported", string(v))
		}
		o.voice = v
		return nil
	}
}

// Set the audio format for synthesis
func OptFormat(f AudioFormat) Opt {
	return func(o *opts) error {
		if !slices.Contains(Formats, f) {
			return httpresponse.ErrBadRequest.Withf("format %d not supported", int(f))
		}
		if o.accept == nil {
			o.accept = new(Accept)
		}
		o.accept.Format = f
		return nil
	}
}

// Set the sampling rate in Hz, for formats which accept or require one
func OptRate(rate uint) Opt {
	return func(o *opts) error {
		if rate == 0 {
			return httpresponse.ErrBadRequest.With("rate must be non-zero")
		}
		if o.accept == nil {
			o.accept = new(Accept)
		}
		o.accept.Rate = rate
		return nil
	}
}

// Set the byte order for raw PCM output
func OptEndianness(v Endianness) Opt {
	return func(o *opts) error {
		if v != LittleEndian && v != BigEndian {
			return httpresponse.ErrBadRequest.Withf("endianness %q not supported", string(v))
		}
		if o.accept == nil {
			o.accept = new(Accept)
		}
		o.accept.Endianness = v
		return nil
	}
}

// Set the customization id (GUID) of a custom model to apply
func OptCustomization(id string) Opt {
	return func(o *opts) error {
		if id == "" {
			return httpresponse.ErrBadRequest.With("customization id is empty")
		}
		o.customization = id
		return nil
	}
}

// Set the phoneme format for pronunciation (ibm, ipa)
func OptPhonemeFormat(v string) Opt {
	return func(o *opts) error {
		if v != PhonemeIBM && v != PhonemeIPA {
			return httpresponse.ErrBadRequest.Withf("phoneme format %q not supported", v)
		}
		o.phonemes = v
		return nil
	}
}
