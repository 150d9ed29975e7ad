package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/smaxiso/poster-maker/internal/config"
	"github.com/smaxiso/poster-maker/internal/imaging"
	"github.com/smaxiso/poster-maker/internal/layout"
	"github.com/smaxiso/poster-maker/internal/memory"
	"github.com/smaxiso/poster-maker/internal/poster"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("poster-maker %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	fs := flag.NewFlagSet("poster-maker", flag.ExitOnError)
	var (
		parts      = fs.Int("parts", 0, "split into N parts along the dominant axis")
		grid       = fs.String("grid", "", "split into a rows x cols grid, e.g. 3x3")
		dpi        = fs.Int("dpi", 0, "print resolution (default from config, 300)")
		outputDir  = fs.String("output-dir", "", "base output directory (default from config)")
		format     = fs.String("format", "", "output format for parts (jpg, png, ...); default keeps the source format")
		resizeMode = fs.String("resize-mode", "maintain", "aspect handling: maintain, stretch, crop, pad_white, pad_black")
		genPDF     = fs.Bool("pdf", false, "assemble the parts into a printable PDF")
		pdfOutput  = fs.String("pdf-output", "", "PDF output path (default: next to the parts)")
		preserve   = fs.Bool("preserve-previous", false, "move an existing parts directory aside instead of overwriting")
		configPath = fs.String("config", "", "YAML settings file")
		verbose    = fs.Bool("verbose", false, "verbose logging")
		yes        = fs.Bool("yes", false, "skip the high memory confirmation prompt")
	)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "poster-maker - split an image into print-ready A4 poster parts")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: poster-maker [options] <image>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	sourcePath := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *outputDir != "" {
		cfg.Paths.BaseOutputDir = *outputDir
	}
	setupLogging(cfg.Logging, *verbose)

	spec, err := buildSpec(*parts, *grid, cfg.Image.DefaultParts)
	if err != nil {
		log.Fatalf("Layout error: %v", err)
	}
	mode, err := imaging.ParseResizeMode(*resizeMode)
	if err != nil {
		log.Fatalf("Option error: %v", err)
	}

	runDPI := *dpi
	if runDPI == 0 {
		runDPI = cfg.Image.DefaultDPI
	}
	if err := config.ValidateDPI(runDPI); err != nil {
		log.Fatalf("Option error: %v", err)
	}

	if !checkMemory(sourcePath, runDPI, spec, cfg, *yes) {
		fmt.Println("Aborted.")
		os.Exit(1)
	}

	proc := poster.New(cfg)
	sum, err := proc.Process(sourcePath, poster.Options{
		Spec:             spec,
		DPI:              runDPI,
		ResizeMode:       mode,
		Format:           *format,
		GeneratePDF:      *genPDF,
		PDFOutput:        *pdfOutput,
		PreservePrevious: *preserve,
	})
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}

	printSummary(sum)
}

// setupLogging applies the config's logging section: debug level (or the
// -verbose flag) adds source locations, and a log file, when set, receives a
// copy of everything written to stderr.
func setupLogging(lc config.Logging, verbose bool) {
	if verbose || strings.EqualFold(lc.Level, "debug") {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}
	if lc.File == "" {
		return
	}
	f, err := os.OpenFile(lc.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("warning: cannot open log file %s: %v", lc.File, err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}

// buildSpec resolves the layout flags: -grid wins over -parts, and with
// neither set the configured default part count applies.
func buildSpec(parts int, grid string, defaultParts int) (layout.Spec, error) {
	if grid != "" {
		rows, cols, ok := layout.ParseGrid(grid)
		if !ok {
			return layout.Spec{}, fmt.Errorf("invalid grid %q (expected rows x cols, e.g. 3x3)", grid)
		}
		return layout.Grid(rows, cols)
	}
	if parts > 0 {
		return layout.Strip(parts)
	}
	return layout.Strip(defaultParts)
}

// checkMemory estimates the run's peak RAM and, for very large runs, asks the
// user to confirm unless -yes was given. Returns false when the user aborts.
func checkMemory(sourcePath string, dpi int, spec layout.Spec, cfg *config.Config, skipPrompt bool) bool {
	_, info, err := imaging.Stat(sourcePath)
	if err != nil {
		// Process will report the real error with context.
		return true
	}

	est := memory.EstimateUsage(info.Width, info.Height, dpi, spec, cfg.PageSize())
	if est.High() {
		log.Printf("Estimated memory usage: %.0f MB (%.0f%% of system RAM)", est.MB, est.SystemPercent)
	}
	if !est.NeedsConfirmation() || skipPrompt {
		return true
	}

	fmt.Printf("This run may use about %.0f MB of memory. Continue? [y/N] ", est.MB)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func printSummary(sum *poster.Summary) {
	fmt.Printf("Source: %s (%dx%d)\n", sum.SourcePath, sum.Source.Width, sum.Source.Height)
	fmt.Printf("Canvas: %dx%d px, %d rows x %d columns\n", sum.CanvasW, sum.CanvasH, sum.Rows, sum.Cols)
	fmt.Printf("Parts:  %d\n", len(sum.Parts))
	for _, p := range sum.Parts {
		fmt.Printf("  part %d: %s (%dx%d)\n", p.Index, p.Path, p.Width, p.Height)
	}
	if sum.PDF != nil {
		fmt.Printf("PDF:    %s (%d pages, %.1f KB)\n", sum.PDF.Path, sum.PDF.Pages, float64(sum.PDF.SizeBytes)/1024)
		if len(sum.PDF.Features) > 0 {
			fmt.Printf("        features: %s\n", strings.Join(sum.PDF.Features, ", "))
		}
	}
	fmt.Printf("Done in %s\n", sum.Elapsed.Round(10*time.Millisecond))
}
