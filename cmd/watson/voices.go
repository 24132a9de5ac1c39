package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	texttospeech "github.com/mutablelogic/go-watson/pkg/client/texttospeech"
)

type VoicesCmd struct{}

type VoiceCmd struct {
	Voice         string `arg:"" help:"Voice name"`
	Customization string `flag:"" help:"Customization id (GUID) to include word information for"`
}

func (cmd VoicesCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	voices, err := tts.ListVoices(app.ctx)
	if err != nil {
		return err
	} else if len(voices) == 0 {
		return httpresponse.ErrNotFound.With("no voices found")
	} else {
		return app.writer.Write(voices, tablewriter.OptHeader())
	}
}

func (cmd VoiceCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	opts := []texttospeech.Opt{}
	if cmd.Customization != "" {
		opts = append(opts, texttospeech.OptCustomization(cmd.Customization))
	}
	voice, err := tts.GetVoice(app.ctx, texttospeech.Voice(cmd.Voice), opts...)
	if err != nil {
		return err
	} else {
		return app.writer.Write(voice, tablewriter.OptHeader())
	}
}
