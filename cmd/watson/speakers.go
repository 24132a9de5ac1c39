package main

import (
	"fmt"
	"os"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	wav "github.com/go-audio/wav"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SpeakersCmd struct{}

type AddSpeakerCmd struct {
	Name string `arg:"" help:"Name for the speaker model"`
	Path string `arg:"" help:"Path to a WAV file with the speaker's voice"`
}

type SpeakerCmd struct {
	Speaker string `arg:"" help:"Speaker id (GUID)"`
}

type DeleteSpeakerCmd struct {
	Speaker string `arg:"" help:"Speaker id (GUID)"`
}

type DeleteUserDataCmd struct {
	Customer string `arg:"" help:"Customer id"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd SpeakersCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	speakers, err := tts.ListSpeakers(app.ctx)
	if err != nil {
		return err
	} else if len(speakers) == 0 {
		return httpresponse.ErrNotFound.With("no speakers found")
	} else {
		return app.writer.Write(speakers, tablewriter.OptHeader())
	}
}

func (cmd AddSpeakerCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}

	// Open the audio file and check it is a valid WAV file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	if !wav.NewDecoder(f).IsValidFile() {
		return httpresponse.ErrBadRequest.Withf("%q is not a valid WAV file", cmd.Path)
	} else if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	// Upload the speaker enrollment audio
	speaker, err := tts.CreateSpeaker(app.ctx, cmd.Name, f)
	if err != nil {
		return err
	}
	fmt.Println(speaker.SpeakerId)

	// Return success
	return nil
}

func (cmd SpeakerCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	speaker, err := tts.GetSpeaker(app.ctx, cmd.Speaker)
	if err != nil {
		return err
	} else {
		return app.writer.Write(speaker, tablewriter.OptHeader())
	}
}

func (cmd DeleteSpeakerCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.DeleteSpeaker(app.ctx, cmd.Speaker)
}

func (cmd DeleteUserDataCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.DeleteUserData(app.ctx, cmd.Customer)
}
