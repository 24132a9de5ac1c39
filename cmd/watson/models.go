package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	speechtotext "github.com/mutablelogic/go-watson/pkg/client/speechtotext"
)

type ModelsCmd struct{}

type ModelCmd struct {
	Model string `arg:"" help:"Model name"`
}

func (cmd ModelsCmd) Run(app *Globals) error {
	stt, err := app.SpeechToText()
	if err != nil {
		return err
	}
	models, err := stt.ListModels(app.ctx)
	if err != nil {
		return err
	} else if len(models) == 0 {
		return httpresponse.ErrNotFound.With("no models found")
	} else {
		return app.writer.Write(models, tablewriter.OptHeader())
	}
}

func (cmd ModelCmd) Run(app *Globals) error {
	stt, err := app.SpeechToText()
	if err != nil {
		return err
	}
	model, err := stt.GetModel(app.ctx, speechtotext.Model(cmd.Model))
	if err != nil {
		return err
	} else {
		return app.writer.Write(model, tablewriter.OptHeader())
	}
}
