package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BeatGlow/swatch"
	"github.com/BeatGlow/swatch/internal/config"
	"github.com/BeatGlow/swatch/palette"
)

type options struct {
	file    string
	size    int
	scale   int
	display bool
	output  string
	font    string
	config  string
	watch   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(o *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("swatches", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.file, "f", "", "Path to a file containing hex codes, separated by whitespace")
	fs.StringVar(&o.file, "file", "", "Long form of -f")
	fs.IntVar(&o.size, "s", swatch.DefaultSwatchSize, "Size of each color swatch")
	fs.IntVar(&o.size, "size", swatch.DefaultSwatchSize, "Long form of -s")
	fs.IntVar(&o.scale, "sc", swatch.DefaultScale, "Scale factor for the swatch size and padding")
	fs.IntVar(&o.scale, "scale", swatch.DefaultScale, "Long form of -sc")
	fs.BoolVar(&o.display, "d", false, "Display the image after generating it")
	fs.BoolVar(&o.display, "display", false, "Long form of -d")
	fs.StringVar(&o.output, "o", swatch.DefaultOutput, "Output image file path")
	fs.StringVar(&o.output, "output", swatch.DefaultOutput, "Long form of -o")
	fs.StringVar(&o.font, "font", swatch.DefaultFont, "TrueType font file for the labels")
	fs.StringVar(&o.config, "c", "", "TOML file with default settings")
	fs.StringVar(&o.config, "config", "", "Long form of -c")
	fs.BoolVar(&o.watch, "w", false, "Render again whenever the file given with -f changes")
	fs.BoolVar(&o.watch, "watch", false, "Long form of -w")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [hex codes...]\n\n", fs.Name())
		fmt.Fprintln(fs.Output(), "Generate an image of color swatches from hex codes.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses flags interleaved with positional hex codes.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var codes []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return codes, nil
		}
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(codes, rest...), nil
		}
		codes = append(codes, rest[0])
		args = rest[1:]
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		o      options
		fs     = newFlagSet(&o, stderr)
		logger = log.New(stderr, "swatches: ", 0)
	)
	positional, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	c := &swatch.Config{Logger: logger}
	if o.config != "" {
		file, err := config.Load(o.config)
		if err != nil {
			logger.Println(err)
			return 1
		}
		file.Apply(c)
	}
	if set["s"] || set["size"] {
		c.SwatchSize = o.size
	}
	if set["sc"] || set["scale"] {
		c.Scale = o.scale
	}
	if set["d"] || set["display"] {
		c.Display = o.display
	}
	if set["o"] || set["output"] || c.Output == "" {
		c.Output = o.output
	}
	if set["font"] || c.Font == "" {
		c.Font = o.font
	}
	if (set["s"] || set["size"]) && o.size <= 0 || (set["sc"] || set["scale"]) && o.scale <= 0 {
		logger.Println("size and scale must be positive")
		fs.Usage()
		return 2
	}

	if o.watch {
		if o.file == "" {
			logger.Println("watching requires a file (-f)")
			return 2
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(stdout, "watching %s, hit control-c to stop...\n", o.file)
		if err := watch(ctx, o.file, c, logger); err != nil {
			logger.Println(err)
			return 1
		}
		return 0
	}

	codes, err := palette.Resolve(positional, o.file)
	if err != nil {
		logger.Println(err)
		return 1
	}
	if len(codes) == 0 {
		logger.Println("no hex codes provided, please specify hex codes directly or through a file")
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	if err = swatch.Render(codes, c); err != nil {
		logger.Println(err)
		return 1
	}
	fmt.Fprintf(stdout, "saved %d swatches to %s\n", len(codes), c.Output)
	return 0
}
