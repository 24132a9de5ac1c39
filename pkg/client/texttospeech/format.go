package texttospeech

import (
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// AudioFormat is a synthesis output format.
type AudioFormat int

// Endianness selects the byte order for raw PCM formats. When unset the
// service assumes little-endian.
type Endianness string

// Accept is an audio format with its optional sampling rate and
// endianness, rendered as the MIME type the service expects. A zero Rate
// applies the documented default for the format.
type Accept struct {
	Format     AudioFormat
	Rate       uint
	Endianness Endianness
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Alaw AudioFormat = iota
	Basic
	Flac
	L16
	MP3
	MPEG
	Mulaw
	Ogg
	OggOpus
	OggVorbis
	WAV
	WebM
	WebMOpus
	WebMVorbis
)

const (
	LittleEndian Endianness = "little-endian"
	BigEndian    Endianness = "big-endian"
)

const (
	defaultRate     = 22050
	defaultOpusRate = 48000
)

var (
	// Formats lists every synthesis output format.
	Formats = []AudioFormat{
		Alaw, Basic, Flac, L16, MP3, MPEG, Mulaw,
		Ogg, OggOpus, OggVorbis, WAV, WebM, WebMOpus, WebMVorbis,
	}

	// DefaultAccept is the format used when synthesis is requested without
	// one: opus in an ogg container at 48 kHz.
	DefaultAccept = Accept{Format: OggOpus}
)

// mimetypes maps each format to the literal MIME type the service expects.
// The rate parameter is appended by Accept.MIME.
var mimetypes = map[AudioFormat]string{
	Alaw:       "audio/alaw",
	Basic:      "audio/basic",
	Flac:       "audio/flac",
	L16:        "audio/l16",
	MP3:        "audio/mp3",
	MPEG:       "audio/mpeg",
	Mulaw:      "audio/mulaw",
	Ogg:        "audio/ogg",
	OggOpus:    "audio/ogg;codecs=opus",
	OggVorbis:  "audio/ogg;codecs=vorbis",
	WAV:        "audio/wav",
	WebM:       "audio/webm",
	WebMOpus:   "audio/webm;codecs=opus",
	WebMVorbis: "audio/webm;codecs=vorbis",
}

// rates maps each format to its default sampling rate. Formats with a
// fixed service-side rate (basic, webm, webm opus) and formats where the
// caller must supply a rate (alaw, l16, mulaw) map to zero.
var rates = map[AudioFormat]uint{
	Flac:       defaultRate,
	MP3:        defaultRate,
	MPEG:       defaultRate,
	Ogg:        defaultRate,
	OggOpus:    defaultOpusRate,
	OggVorbis:  defaultRate,
	WAV:        defaultRate,
	WebMVorbis: defaultRate,
}

// names maps the short format names used on the command line.
var names = map[string]AudioFormat{
	"alaw":        Alaw,
	"basic":       Basic,
	"flac":        Flac,
	"l16":         L16,
	"mp3":         MP3,
	"mpeg":        MPEG,
	"mulaw":       Mulaw,
	"ogg":         Ogg,
	"ogg-opus":    OggOpus,
	"ogg-vorbis":  OggVorbis,
	"wav":         WAV,
	"webm":        WebM,
	"webm-opus":   WebMOpus,
	"webm-vorbis": WebMVorbis,
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Id returns the base MIME type for the format, without parameters.
func (f AudioFormat) Id() string {
	return mimetypes[f]
}

// ParseFormat returns the format for a short name like "mp3" or
// "ogg-opus", or false when the name is not recognised.
func ParseFormat(name string) (AudioFormat, bool) {
	f, exists := names[name]
	return f, exists
}

// RateRequired reports whether the format has no default sampling rate and
// the caller must supply one.
func (f AudioFormat) RateRequired() bool {
	switch f {
	case Alaw, L16, Mulaw:
		return true
	}
	return false
}

// MIME renders the format with its rate and endianness parameters. A zero
// rate applies the documented default; formats with a fixed service-side
// rate carry no rate parameter. Endianness is emitted only for raw PCM.
func (a Accept) MIME() string {
	mime := a.Format.Id()
	rate := a.Rate
	if rate == 0 {
		rate = rates[a.Format]
	}
	if rate > 0 {
		mime += ";rate=" + strconv.FormatUint(uint64(rate), 10)
	}
	if a.Format == L16 && a.Endianness != "" {
		mime += ";endianness=" + string(a.Endianness)
	}
	return mime
}

func (a Accept) String() string {
	return a.MIME()
}
