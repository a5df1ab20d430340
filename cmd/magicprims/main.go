// Command magicprims identifies file contents with libmagic.
//
// It is a thin front end over the magic bindings, mostly useful for
// checking what a given libmagic build and database report.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/3leaps/magicprims/bindings/go/magic"
	"github.com/3leaps/magicprims/internal/log"
)

var (
	appName = "magicprims"

	// Persistent flags
	mimeType     bool
	mimeEncoding bool
	mimeBoth     bool
	extraFlags   []string
	magicFile    string
	logLevel     string
	logFile      string
	logJSON      bool

	logger *log.Logger

	colorRed    = color.New(color.FgRed, color.Bold)
	colorCyan   = color.New(color.FgCyan)
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		colorRed.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Identify file contents with libmagic",
	Long: `magicprims describes files, standard input or magic databases using
the system libmagic, the library behind file(1).

Examples:
  # Describe files
  magicprims file /bin/ls logo.png

  # MIME type and encoding, 8 workers
  magicprims file --mime -j 8 *.dat

  # Describe data piped on stdin
  curl -s https://example.com | magicprims stdin --mime-type

  # Compile a magic source file into ./mymagic.mgc
  magicprims compile ./mymagic`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.Parse(logLevel)
		if err != nil {
			return err
		}
		logger = log.NewLogger(appName, level, logFile, false)
		logger.JSON = logJSON
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&mimeType, "mime-type", false, "output the MIME type")
	pf.BoolVar(&mimeEncoding, "mime-encoding", false, "output the MIME encoding")
	pf.BoolVarP(&mimeBoth, "mime", "i", false, "output the MIME type and encoding")
	pf.StringSliceVar(&extraFlags, "flag", nil, "additional libmagic flag by name (repeatable), e.g. compress,symlink")
	pf.StringVarP(&magicFile, "magic-file", "m", "", "colon-separated list of magic databases (default: libmagic default or $MAGIC)")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "also write logs to this file (rotated)")
	pf.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(fileCmd, stdinCmd, checkCmd, compileCmd, listCmd, watchCmd, versionCmd)
}

// buildConfig maps command-line flags onto a magic.Config.
func buildConfig() (magic.Config, error) {
	cfg := magic.DefaultConfig()
	cfg.Database = magicFile

	if mimeType {
		cfg.Flags = append(cfg.Flags, magic.MimeType)
	}
	if mimeEncoding {
		cfg.Flags = append(cfg.Flags, magic.MimeEncoding)
	}
	if mimeBoth {
		cfg.Flags = append(cfg.Flags, magic.Mime)
	}
	for _, name := range extraFlags {
		f, err := magic.ParseFlag(name)
		if err != nil {
			return cfg, err
		}
		cfg.Flags = append(cfg.Flags, f)
	}

	logger.Debug("flags=%s database=%q backend=%s", magic.Combine(cfg.Flags...), cfg.Database, magic.Backend())
	return cfg, nil
}
