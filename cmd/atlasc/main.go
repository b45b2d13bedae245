package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/septag/atlasc"
	"github.com/septag/atlasc/utils"
)

const helpBanner = `
┌─┐┌┬┐┬  ┌─┐┌─┐┌─┐
├─┤ │ │  ├─┤└─┐│
┴ ┴ ┴ ┴─┘┴ ┴└─┘└─┘

Sprite atlas compiler.
    Version: %s

`

// version is set at build time via -ldflags.
var version = "dev"

// inputList is a repeatable -i/--input flag, in the spirit of caire's
// custom flag handling: both registrations share one backing slice.
type inputList []string

func (l *inputList) String() string { return strings.Join(*l, ",") }
func (l *inputList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	log.SetFlags(0)

	var inputs inputList
	var output string
	var maxWidth, maxHeight int
	var border, padding int
	var pot, mesh bool
	var maxVerts, alphaThreshold int
	var showVersion, quiet bool

	defaults := atlasc.DefaultOptions()

	flag.Var(&inputs, "i", "Input sprite image (repeatable)")
	flag.Var(&inputs, "input", "Input sprite image (repeatable)")
	flag.StringVar(&output, "o", "", "Output descriptor path")
	flag.StringVar(&output, "output", "", "Output descriptor path")
	flag.IntVar(&maxWidth, "W", defaults.MaxWidth, "Sheet max width")
	flag.IntVar(&maxWidth, "max-width", defaults.MaxWidth, "Sheet max width")
	flag.IntVar(&maxHeight, "H", defaults.MaxHeight, "Sheet max height")
	flag.IntVar(&maxHeight, "max-height", defaults.MaxHeight, "Sheet max height")
	flag.IntVar(&border, "B", defaults.Border, "Pixels reserved between packed rectangles")
	flag.IntVar(&border, "border", defaults.Border, "Pixels reserved between packed rectangles")
	flag.IntVar(&padding, "P", defaults.Padding, "Pixels reserved inside each sheet entry")
	flag.IntVar(&padding, "padding", defaults.Padding, "Pixels reserved inside each sheet entry")
	flag.BoolVar(&pot, "2", false, "Round sheet dimensions up to a power of two")
	flag.BoolVar(&pot, "pot", false, "Round sheet dimensions up to a power of two")
	flag.BoolVar(&mesh, "m", false, "Emit per-sprite meshes and UVs")
	flag.BoolVar(&mesh, "mesh", false, "Emit per-sprite meshes and UVs")
	flag.IntVar(&maxVerts, "M", defaults.MaxVerts, "Vertex budget per mesh")
	flag.IntVar(&maxVerts, "max-verts", defaults.MaxVerts, "Vertex budget per mesh")
	flag.IntVar(&alphaThreshold, "A", defaults.AlphaThreshold, "Alpha threshold")
	flag.IntVar(&alphaThreshold, "alpha-threshold", defaults.AlphaThreshold, "Alpha threshold")
	flag.BoolVar(&showVersion, "V", false, "Print version and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&quiet, "q", false, "Suppress progress output")
	flag.BoolVar(&quiet, "quiet", false, "Suppress progress output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	if len(inputs) == 0 || output == "" {
		flag.Usage()
		fmt.Fprintln(os.Stdout, "atlasc: at least one -i/--input and -o/--output are required")
		os.Exit(1)
	}

	opts := atlasc.Options{
		MaxWidth:       maxWidth,
		MaxHeight:      maxHeight,
		Border:         border,
		Padding:        padding,
		POT:            pot,
		Mesh:           mesh,
		MaxVerts:       maxVerts,
		AlphaThreshold: alphaThreshold,
	}

	sheetPath := strings.TrimSuffix(output, filepath.Ext(output)) + ".png"
	opts.SheetName = filepath.Base(sheetPath)

	var spinner *utils.Spinner
	if !quiet {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ ATLASC", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("⇢ packing %d sprites...", len(inputs)), utils.DefaultMessage),
		)
		spinner = utils.NewSpinner(msg, time.Millisecond*80, true)
		spinner.Start()
	}

	start := time.Now()
	pipeline := &atlasc.Pipeline{Options: opts}
	desc, sheet, err := pipeline.Run([]string(inputs))

	if spinner != nil {
		spinner.StopMsg = ""
		spinner.Stop()
	}

	if err != nil {
		fmt.Fprintln(os.Stdout, utils.DecorateText(fmt.Sprintf("atlasc: %v", err), utils.ErrorMessage))
		os.Exit(1)
	}

	if err := atlasc.WriteSheet(sheetPath, sheet); err != nil {
		fmt.Fprintln(os.Stdout, utils.DecorateText(fmt.Sprintf("atlasc: %v", err), utils.ErrorMessage))
		os.Exit(1)
	}
	if err := atlasc.WriteDescriptor(output, desc); err != nil {
		fmt.Fprintln(os.Stdout, utils.DecorateText(fmt.Sprintf("atlasc: %v", err), utils.ErrorMessage))
		os.Exit(1)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "\nDone in %s\n", utils.DecorateText(utils.FormatTime(time.Since(start)), utils.SuccessMessage))
	}
}
