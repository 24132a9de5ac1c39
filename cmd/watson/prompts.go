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

type PromptsCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
}

type AddPromptCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Prompt        string `arg:"" help:"Prompt id"`
	Text          string `arg:"" help:"Text of the prompt"`
	Path          string `arg:"" help:"Path to a WAV file with the spoken prompt"`
	Speaker       string `flag:"" help:"Speaker id (GUID) the prompt belongs to"`
}

type PromptCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Prompt        string `arg:"" help:"Prompt id"`
}

type DeletePromptCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Prompt        string `arg:"" help:"Prompt id"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd PromptsCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	prompts, err := tts.ListPrompts(app.ctx, cmd.Customization)
	if err != nil {
		return err
	} else if len(prompts) == 0 {
		return httpresponse.ErrNotFound.With("no prompts found")
	} else {
		return app.writer.Write(prompts, tablewriter.OptHeader())
	}
}

func (cmd AddPromptCmd) Run(app *Globals) error {
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

	// Upload the prompt
	prompt, err := tts.AddPrompt(app.ctx, cmd.Customization, cmd.Prompt, cmd.Text, cmd.Speaker, f)
	if err != nil {
		return err
	}
	fmt.Println(prompt.PromptId)

	// Return success
	return nil
}

func (cmd PromptCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	prompt, err := tts.GetPrompt(app.ctx, cmd.Customization, cmd.Prompt)
	if err != nil {
		return err
	} else {
		return app.writer.Write(prompt, tablewriter.OptHeader())
	}
}

func (cmd DeletePromptCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.DeletePrompt(app.ctx, cmd.Customization, cmd.Prompt)
}
