package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-watson/pkg/client"
	iam "github.com/mutablelogic/go-watson/pkg/client/iam"
	speechtotext "github.com/mutablelogic/go-watson/pkg/client/speechtotext"
	texttospeech "github.com/mutablelogic/go-watson/pkg/client/texttospeech"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	ApiKey string `name:"api-key" help:"IBM Cloud API key (can be set from WATSON_API_KEY env)" default:"${WATSON_API_KEY}"`
	TtsUrl string `name:"tts-url" help:"Text to Speech instance URL (can be set from WATSON_TTS_URL env)" default:"${WATSON_TTS_URL}"`
	SttUrl string `name:"stt-url" help:"Speech to Text instance URL (can be set from WATSON_STT_URL env)" default:"${WATSON_STT_URL}"`
	Debug  bool   `name:"debug" help:"Enable debug output"`

	// Writer, service clients and context
	writer *tablewriter.Writer
	tts    *texttospeech.Client
	stt    *speechtotext.Client
	ctx    context.Context
}

type CLI struct {
	Globals

	Voices        VoicesCmd        `cmd:"voices" help:"List voices"`
	Voice         VoiceCmd         `cmd:"voice" help:"Get a voice"`
	Synthesize    SynthesizeCmd    `cmd:"synthesize" help:"Synthesize text to an audio file"`
	Pronunciation PronunciationCmd `cmd:"pronunciation" help:"Get the pronunciation of a word"`

	Models ModelsCmd `cmd:"models" help:"List transcription models"`
	Model  ModelCmd  `cmd:"model" help:"Get a transcription model"`

	Customizations      CustomizationsCmd      `cmd:"customizations" help:"List custom models"`
	Customization       CustomizationCmd       `cmd:"customization" help:"Get a custom model"`
	CreateCustomization CreateCustomizationCmd `cmd:"create-customization" help:"Create a custom model"`
	UpdateCustomization UpdateCustomizationCmd `cmd:"update-customization" help:"Update a custom model"`
	DeleteCustomization DeleteCustomizationCmd `cmd:"delete-customization" help:"Delete a custom model"`

	Words      WordsCmd      `cmd:"words" help:"List the words of a custom model"`
	AddWord    AddWordCmd    `cmd:"add-word" help:"Add or replace a word in a custom model"`
	Word       WordCmd       `cmd:"word" help:"Get a word from a custom model"`
	DeleteWord DeleteWordCmd `cmd:"delete-word" help:"Delete a word from a custom model"`

	Prompts      PromptsCmd      `cmd:"prompts" help:"List the prompts of a custom model"`
	AddPrompt    AddPromptCmd    `cmd:"add-prompt" help:"Add a prompt to a custom model"`
	Prompt       PromptCmd       `cmd:"prompt" help:"Get a prompt from a custom model"`
	DeletePrompt DeletePromptCmd `cmd:"delete-prompt" help:"Delete a prompt from a custom model"`

	Speakers      SpeakersCmd      `cmd:"speakers" help:"List speaker models"`
	AddSpeaker    AddSpeakerCmd    `cmd:"add-speaker" help:"Create a speaker model from an audio file"`
	Speaker       SpeakerCmd       `cmd:"speaker" help:"Get a speaker model"`
	DeleteSpeaker DeleteSpeakerCmd `cmd:"delete-speaker" help:"Delete a speaker model"`

	DeleteUserData DeleteUserDataCmd `cmd:"delete-user-data" help:"Delete all data associated with a customer id"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("text to speech and speech to text service client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"WATSON_API_KEY": os.Getenv("WATSON_API_KEY"),
			"WATSON_TTS_URL": os.Getenv("WATSON_TTS_URL"),
			"WATSON_STT_URL": os.Getenv("WATSON_STT_URL"),
		},
	)

	// Set client options
	opts := []client.ClientOpt{}
	if cli.Globals.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, true))
	}

	// Create a tablewriter object with text output
	writer := tablewriter.New(os.Stdout, tablewriter.OptOutputText())
	cli.Globals.writer = writer

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Exchange the API key for a token, then create a client for each
	// configured service instance
	if err := login(&cli, opts); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

func login(cli *CLI, opts []client.ClientOpt) error {
	if cli.Globals.ApiKey == "" {
		return httpresponse.ErrBadRequest.With("missing --api-key")
	}

	// Authenticate
	auth, err := iam.New(opts...)
	if err != nil {
		return err
	}
	token, err := auth.Authenticate(cli.Globals.ctx, cli.Globals.ApiKey)
	if err != nil {
		return err
	}

	// texttospeech client
	if endpoint := cli.Globals.TtsUrl; endpoint != "" {
		if client, err := texttospeech.New(endpoint, token.AccessToken, opts...); err != nil {
			return err
		} else {
			cli.Globals.tts = client
		}
	}

	// speechtotext client
	if endpoint := cli.Globals.SttUrl; endpoint != "" {
		if client, err := speechtotext.New(endpoint, token.AccessToken, opts...); err != nil {
			return err
		} else {
			cli.Globals.stt = client
		}
	}

	// Return success
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) TextToSpeech() (*texttospeech.Client, error) {
	if g.tts == nil {
		return nil, httpresponse.ErrBadRequest.With("missing --tts-url")
	}
	return g.tts, nil
}

func (g *Globals) SpeechToText() (*speechtotext.Client, error) {
	if g.stt == nil {
		return nil, httpresponse.ErrBadRequest.With("missing --stt-url")
	}
	return g.stt, nil
}
