package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/tdewolff/argp"

	"github.com/BramAlkema/svg2pptx-sub017/dml"
)

type Convert struct {
	Output      string `short:"o" desc:"Output file (default stdout)"`
	Width       int64  `default:"9144000" desc:"Slide width in EMU"`
	Height      int64  `default:"6858000" desc:"Slide height in EMU"`
	Minify      bool   `short:"m" desc:"Minify the slide XML"`
	NoNormalize bool   `desc:"Disable off-canvas content normalization"`
	Verbose     bool   `short:"v" desc:"Verbose logging"`
	Input       string `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "SVG to PowerPoint DrawingML converter")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	if cmd.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	w := os.Stdout
	if cmd.Output != "" && cmd.Output != "-" {
		if w, err = os.Create(cmd.Output); err != nil {
			return err
		}
		defer w.Close()
	}

	c := dml.NewConverter(dml.Options{
		Width:       cmd.Width,
		Height:      cmd.Height,
		NoNormalize: cmd.NoNormalize,
		Minify:      cmd.Minify,
		Logger:      &logger,
	})
	if err := c.Convert(w, f); err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}
	return nil
}
