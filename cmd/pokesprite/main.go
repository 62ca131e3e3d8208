// Package main implements a thin CLI wrapper around the sprite decoder: it
// reads a compressed stream from a file, applies an optional seek offset and
// declared-size override, and writes the decoded 2bpp bitmap (and optionally
// a greyscale PNG preview) to disk. None of this is the hard part — see
// internal/sprite for that — this package only glues file I/O, flags, and
// logging around it.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arcsprite/gbsprite/internal/config"
	"github.com/arcsprite/gbsprite/internal/logging"
	"github.com/arcsprite/gbsprite/internal/render"
	"github.com/arcsprite/gbsprite/internal/sprite"
)

var (
	appName    = "Pokésprite Decoder"
	appVersion = "dev" // injected at build time via -ldflags
)

func main() {
	args, action := parseFlags()
	if action == "error" {
		os.Exit(1)
	}
	if action != "" {
		return
	}
	if err := run(args); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}

// parsedArgs holds the parsed command line arguments.
type parsedArgs struct {
	inPath   string
	seek     int64
	width    int
	height   int
	logLevel string
	outPath  string
	pngPath  string
}

// parseFlags parses os.Args and returns the parsed args.
func parseFlags() (parsedArgs, string) {
	return parseFlagsWithArgs(os.Args[1:])
}

// parseFlagsWithArgs parses the given arguments and returns the parsed args.
// Returns a non-empty action string if help/version was shown ("help" or
// "version"; the caller should return early in that case) or if the -size
// value was malformed ("error"; the caller should exit non-zero).
func parseFlagsWithArgs(args []string) (parsedArgs, string) {
	fs := flag.NewFlagSet("pokesprite", flag.ContinueOnError)

	inPath := fs.String("in", "", "path to the compressed sprite file")
	seek := fs.Int64("seek", 0, "byte offset into the file to start reading from")
	size := fs.String("size", "", "declared sprite size override, as WxH (e.g. 5x5)")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	outPath := fs.String("out", "", "path to write the raw 784-byte 2bpp output")
	pngPath := fs.String("png", "", "path to write an upscaled greyscale PNG preview")
	helpFlag := fs.Bool("help", false, "show help")
	versionFlag := fs.Bool("version", false, "show version")

	_ = fs.Parse(args)

	if *helpFlag {
		showHelp()
		return parsedArgs{}, "help"
	}
	if *versionFlag {
		showVersion()
		return parsedArgs{}, "version"
	}

	width, height, err := parseSize(*size)
	if err != nil {
		logging.Error("invalid -size value %q: %v", *size, err)
		return parsedArgs{}, "error"
	}

	return parsedArgs{
		inPath:   strings.TrimSpace(*inPath),
		seek:     *seek,
		width:    width,
		height:   height,
		logLevel: strings.TrimSpace(*logLevel),
		outPath:  strings.TrimSpace(*outPath),
		pngPath:  strings.TrimSpace(*pngPath),
	}, ""
}

// parseSize parses a "W,H" or "WxH" declared-size override. An empty string
// means "no override" and returns (0, 0, nil).
func parseSize(s string) (width, height int, err error) {
	if s == "" {
		return 0, 0, nil
	}

	sep := "x"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH or W,H")
	}

	width, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	return width, height, nil
}

// run decodes the sprite named by args and writes its requested outputs.
func run(args parsedArgs) error {
	cfg, err := config.LoadWithOverrides(config.LoadOptions{LogLevel: args.logLevel})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetLevelFromString(cfg.Logging.Level)

	if args.inPath == "" {
		return fmt.Errorf("-in is required")
	}
	if args.width*args.height > cfg.Decode.MaxDeclaredTiles {
		return fmt.Errorf("-size %dx%d exceeds the configured maximum of %d tiles", args.width, args.height, cfg.Decode.MaxDeclaredTiles)
	}

	data, err := readFrom(args.inPath, args.seek)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args.inPath, err)
	}

	opts := sprite.Options{Width: args.width, Height: args.height}
	result := sprite.Decode(bytes.NewReader(data), opts)
	logging.Info("decoded a %dx%d tile sprite from %s", result.Width, result.Height, args.inPath)

	if args.outPath != "" {
		if err := writeRaw(args.outPath, result); err != nil {
			return fmt.Errorf("failed to write %s: %w", args.outPath, err)
		}
	}

	if args.pngPath != "" {
		if err := writePNG(args.pngPath, result); err != nil {
			return fmt.Errorf("failed to write %s: %w", args.pngPath, err)
		}
	}

	return nil
}

func writeRaw(path string, result sprite.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(result.PlaneA); err != nil {
		return err
	}
	_, err = f.Write(result.PlaneB)
	return err
}

func writePNG(path string, result sprite.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.WritePNG(f, result.PlaneA, result.PlaneB)
}

func showHelp() {
	fmt.Printf("%s\n\n", appName)
	fmt.Println("Usage: pokesprite -in <file> [-seek N] [-size WxH] [-out raw.2bpp] [-png preview.png]")
	fmt.Println()
	fmt.Println("  -in        path to the compressed sprite file")
	fmt.Println("  -seek      byte offset into the file to start reading from")
	fmt.Println("  -size      declared sprite size override, as WxH (e.g. 5x5)")
	fmt.Println("  -log-level log level (debug, info, warn, error)")
	fmt.Println("  -out       path to write the raw 784-byte 2bpp output")
	fmt.Println("  -png       path to write an upscaled greyscale PNG preview")
}

func showVersion() {
	fmt.Printf("%s %s\n", appName, appVersion)
}
