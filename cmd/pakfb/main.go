package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/internal/gamedir"
	"github.com/provide-io/pakfb/pkg"
	"github.com/provide-io/pakfb/pkg/logging"
	"github.com/provide-io/pakfb/pkg/pak"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	baseDir     string
	pakFiles    []string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
	logger      hclog.Logger = hclog.NewNullLogger()
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "pakfb %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", getBuildTimestamp())
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pakfb",
		Short:         "Inspect pak archives and render with their palette",
		Long:          `Inspect, extract and build Quake pak archives, convert lmp images and render framebuffer scenes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger("pakfb", logging.ResolveLogLevel(logLevel), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&baseDir, "basedir", "", "Game directory holding pak0.pak, pak1.pak, ... (env PAKFB_BASEDIR, default ./id1)")
	cmd.PersistentFlags().StringArrayVar(&pakFiles, "pak", nil, "Mount this archive instead of the game directory (repeatable, first wins)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	cmd.AddCommand(
		newListCmd(),
		newCatCmd(),
		newExtractCmd(),
		newExportCmd(),
		newPaletteCmd(),
		newLmp2PngCmd(),
		newRenderCmd(),
		newVerifyCmd(),
		newPackCmd(),
	)
	return cmd
}

func init() {
	rootCmd = newRootCmd()
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openCatalog mounts the --pak archives if any were given, otherwise the
// numbered archives of the game directory.
func openCatalog() (*pak.Catalog, error) {
	if len(pakFiles) > 0 {
		logger.Debug("mounting explicit archives", "paks", pakFiles)
		return pkg.OpenArchives(pakFiles, logger)
	}

	dir := gamedir.ResolveBaseDir(baseDir)
	if err := gamedir.Validate(dir); err != nil {
		return nil, err
	}
	logger.Debug("mounting game directory", "dir", dir)
	return pkg.OpenCatalog(dir, logger)
}

// writeOutput writes data to path, or to out when path is "-".
func writeOutput(out io.Writer, path string, data []byte, mode os.FileMode) error {
	if path == "-" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote file", "path", path, "bytes", len(data))
	return nil
}
