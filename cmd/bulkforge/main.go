package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrsinham/bulkforge/cmd/bulkforge/wizard"
	"github.com/mrsinham/bulkforge/internal/bulk"
	"github.com/mrsinham/bulkforge/internal/identity"
	"github.com/mrsinham/bulkforge/internal/logging"
	"github.com/mrsinham/bulkforge/internal/patient"
	"github.com/mrsinham/bulkforge/internal/sheet"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		fs := flag.NewFlagSet("wizard", flag.ExitOnError)
		from := fs.String("from", "", "Prefill the form from a YAML config file")
		_ = fs.Parse(os.Args[2:])
		if err := wizard.Run(context.Background(), *from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	fileName := flag.String("file", "", "Output file name without extension (required)")
	prefix := flag.String("prefix", "", "Prefix for patient names and emails (default: Test)")
	count := flag.String("count", "", "Number of patients to generate (required)")
	outputDir := flag.String("output", "", "Output directory (default: .)")
	format := flag.String("format", "", "Output format: xlsx, csv (default: xlsx)")
	locale := flag.String("locale", "", "Identity locale: en, fr (default: en)")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (optional, random if not specified)")

	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "Log format: text, json")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("bulkforge %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	logger := logging.Setup(os.Stderr, *logLevel, *logFormat)
	ctx := logging.WithLogger(context.Background(), logger)

	if *interactive {
		if err := wizard.Run(ctx, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg := wizard.DefaultConfig()
	if *configFile != "" {
		loaded, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.FileName = *fileName
		case "prefix":
			cfg.NamePrefix = *prefix
		case "count":
			cfg.PatientAmount = *count
		case "output":
			cfg.OutputDir = *outputDir
		case "format":
			cfg.Format = *format
		case "locale":
			cfg.Locale = *locale
		case "seed":
			cfg.Seed = *seed
		}
	})

	opts, err := cfg.ServiceOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	svc := bulk.New(opts)
	effective := svc.Options()
	logger.Debug("settings",
		"output_dir", effective.OutputDir,
		"format", string(effective.Format),
		"locale", effective.Locale.String(),
		"seeded", effective.Seed != 0)

	out, err := svc.Submit(ctx, cfg.Raw())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, patient.ErrGenerationExhausted) {
			fmt.Fprintf(os.Stderr, "At most %d patients with distinct phone numbers can be generated\n", patient.PhoneSpace)
		}
		os.Exit(1)
	}
	if !out.OK() {
		for _, msg := range out.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	// Save config if requested
	if *saveConfig != "" {
		if err := wizard.SaveToYAML(cfg, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	fmt.Println(out.Message)
	fmt.Printf("  Output file: %s\n", out.Path)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  bulkforge --file <NAME> --count <N> [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("bulkforge")
	fmt.Println("=========")
	fmt.Println()
	fmt.Println("Generate synthetic patients for testing bulk-upload pipelines.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bulkforge --file <NAME> --count <N> [options]")
	fmt.Println("  bulkforge wizard [--from <CONFIG>]")
	fmt.Println()
	fmt.Println("Required arguments:")
	fmt.Println("  --file <NAME>         Output file name, the extension is added for you")
	fmt.Println("  --count <N>           Number of patients (0 writes the header only)")
	fmt.Println()
	fmt.Println("Optional arguments:")
	fmt.Printf("  --prefix <TEXT>       Prefix for names and emails (default: '%s')\n", patient.DefaultNamePrefix)
	fmt.Println("  --output <DIR>        Output directory (default: '.')")
	fmt.Printf("  --format <FMT>        Output format: %s (default: xlsx)\n", joinFormats())
	fmt.Printf("  --locale <LANG>       Name locale: %s (default: %s)\n",
		strings.Join(identity.SupportedLocales(), ", "), identity.DefaultLocale)
	fmt.Println("  --seed <N>            Seed for reproducibility (random if not specified)")
	fmt.Println("  --log-level <LEVEL>   debug, info, warn, error (default: warn)")
	fmt.Println("  --log-format <FMT>    text, json (default: text)")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  --config <FILE>       Load settings from YAML, flags override file values")
	fmt.Println("  --save-config <FILE>  Save the settings to YAML after generation")
	fmt.Println("  -i, --interactive     Launch the interactive form")
	fmt.Println()
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Three patients named Test-... in batch1.xlsx")
	fmt.Println("  bulkforge --file batch1 --count 3")
	fmt.Println()
	fmt.Println("  # French names, CSV output, reproducible")
	fmt.Println("  bulkforge --file lot --count 200 --locale fr --format csv --seed 42")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  One sheet with the columns Full Name, Email, Phone, DOB, Gender, BMI.")
	fmt.Println("  DOB, Gender and BMI are left empty. Phone numbers are unique per file")
	fmt.Println("  and follow the fictitious NNN-555-0NNN pattern.")
	fmt.Println("  An existing file with the same name is replaced.")
}

func joinFormats() string {
	names := make([]string, 0, len(sheet.AllFormats()))
	for _, f := range sheet.AllFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
