package main

import (
	"fmt"
	"os"

	// Packages
	wav "github.com/go-audio/wav"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	texttospeech "github.com/mutablelogic/go-watson/pkg/client/texttospeech"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SynthesizeCmd struct {
	Text          string `arg:"" help:"Text to synthesize"`
	Out           string `flag:"out" help:"Path to write the audio to" required:""`
	Voice         string `flag:"" help:"Voice to use"`
	Format        string `flag:"" help:"Audio format" enum:",alaw,basic,flac,l16,mp3,mpeg,mulaw,ogg,ogg-opus,ogg-vorbis,wav,webm,webm-opus,webm-vorbis" default:""`
	Rate          uint   `flag:"" help:"Sampling rate in Hz"`
	Endianness    string `flag:"" help:"Byte order for l16 output" enum:",little-endian,big-endian" default:""`
	Customization string `flag:"" help:"Customization id (GUID) of a custom model to apply"`
}

type PronunciationCmd struct {
	Text          string `arg:"" help:"Word to look up"`
	Voice         string `flag:"" help:"Voice to use"`
	Phonemes      string `flag:"" help:"Phoneme format" enum:",ibm,ipa" default:""`
	Customization string `flag:"" help:"Customization id (GUID) of a custom model to apply"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd SynthesizeCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}

	// Gather the synthesis parameters
	opts := []texttospeech.Opt{}
	if cmd.Voice != "" {
		opts = append(opts, texttospeech.OptVoice(texttospeech.Voice(cmd.Voice)))
	}
	if cmd.Format != "" {
		format, exists := texttospeech.ParseFormat(cmd.Format)
		if !exists {
			return httpresponse.ErrBadRequest.Withf("format %q not supported", cmd.Format)
		}
		opts = append(opts, texttospeech.OptFormat(format))
	}
	if cmd.Rate > 0 {
		opts = append(opts, texttospeech.OptRate(cmd.Rate))
	}
	if cmd.Endianness != "" {
		opts = append(opts, texttospeech.OptEndianness(texttospeech.Endianness(cmd.Endianness)))
	}
	if cmd.Customization != "" {
		opts = append(opts, texttospeech.OptCustomization(cmd.Customization))
	}

	// Synthesize and write the audio to the output file
	data, err := tts.Synthesize(app.ctx, cmd.Text, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.Out, data, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes to %q\n", len(data), cmd.Out)

	// Report the duration when the output is a WAV file
	if cmd.Format == "wav" {
		f, err := os.Open(cmd.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		if duration, err := wav.NewDecoder(f).Duration(); err == nil {
			fmt.Printf("duration %v\n", duration)
		}
	}

	// Return success
	return nil
}

func (cmd PronunciationCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	opts := []texttospeech.Opt{}
	if cmd.Voice != "" {
		opts = append(opts, texttospeech.OptVoice(texttospeech.Voice(cmd.Voice)))
	}
	if cmd.Phonemes != "" {
		opts = append(opts, texttospeech.OptPhonemeFormat(cmd.Phonemes))
	}
	if cmd.Customization != "" {
		opts = append(opts, texttospeech.OptCustomization(cmd.Customization))
	}
	pronunciation, err := tts.Pronunciation(app.ctx, cmd.Text, opts...)
	if err != nil {
		return err
	}
	fmt.Println(pronunciation.Pronunciation)

	// Return success
	return nil
}
