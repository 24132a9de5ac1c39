package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	schema "github.com/mutablelogic/go-watson/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WordsCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
}

type AddWordCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Word          string `arg:"" help:"Word to add or replace"`
	Translation   string `arg:"" help:"Translation of the word"`
	PartOfSpeech  string `flag:"" help:"Japanese part of speech"`
}

type WordCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Word          string `arg:"" help:"Word to look up"`
}

type DeleteWordCmd struct {
	Customization string `arg:"" help:"Customization id (GUID)"`
	Word          string `arg:"" help:"Word to delete"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd WordsCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	words, err := tts.ListWords(app.ctx, cmd.Customization)
	if err != nil {
		return err
	} else if len(words) == 0 {
		return httpresponse.ErrNotFound.With("no words found")
	} else {
		return app.writer.Write(words, tablewriter.OptHeader())
	}
}

func (cmd AddWordCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.AddWord(app.ctx, cmd.Customization, schema.Word{
		Word:         cmd.Word,
		Translation:  cmd.Translation,
		PartOfSpeech: cmd.PartOfSpeech,
	})
}

func (cmd WordCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	word, err := tts.GetWord(app.ctx, cmd.Customization, cmd.Word)
	if err != nil {
		return err
	} else {
		return app.writer.Write(word, tablewriter.OptHeader())
	}
}

func (cmd DeleteWordCmd) Run(app *Globals) error {
	tts, err := app.TextToSpeech()
	if err != nil {
		return err
	}
	return tts.DeleteWord(app.ctx, cmd.Customization, cmd.Word)
}
