package main

import (
	"fmt"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	texttospeech "github.com/mutablelogic/go-watson/pkg/client/texttospeech"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CustomizationsCmd struct {
	Language string `flag:"" help:"Only list custom models for this language"`
}

type CustomizationCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
}

type CreateCustomizationCmd struct {
	Name        string `arg:"" help:"Name for the custom model"`
	Language    string `flag:"" help:"Language of the custom model"`
	Description string `flag:"" help:"Description of the custom model"`
}

type UpdateCustomizationCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Name          string `flag:"" help:"New name for the custom model"`
	Description   string `flag:"" help:"New description for the custom model"`
}

type DeleteCustomizationCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd CustomizationsCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	models, err := tts.ListCustomModels(app.ctx, texttospeech.Language(cmd.Language))
	if err != nil {
		return err
	} else if len(models) == 0 {
		return httpresponse.ErrNotFound.With("no custom models found")
	} else {
		return app.writer.Write(models, tablewriter.OptHeader())
	}
}

func (cmd CustomizationCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	model, err := tts.GetCustomModel(app.ctx, cmd.Customization)
	if err != nil {
		return err
	} else {
		return app.writer.Write(model, tablewriter.OptHeader())
	}
}

func (cmd CreateCustomizationCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	model, err := tts.CreateCustomModel(app.ctx, cmd.Name, texttospeech.Language(cmd.Language), cmd.Description)
	if err != nil {
		return err
	}
	fmt.Println(model.CustomizationId)

	// Return success
	return nil
}

func (cmd UpdateCustomizationCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.UpdateCustomModel(app.ctx, cmd.Customization, cmd.Name, cmd.Description, nil)
}

func (cmd DeleteCustomizationCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.DeleteCustomModel(app.ctx, cmd.Customization)
}
