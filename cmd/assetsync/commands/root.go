// Package commands implements the CLI for the assetsync tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/assetsync/internal/app"
	"go.trai.ch/assetsync/internal/build"
	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	argCount = 4

	logFormatText = "text"
	logFormatJSON = "json"
)

// CLI represents the command line interface for assetsync.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "assetsync <source-dir> <build-dir> <compiler> <configuration>",
		Short: "Mirror a resource tree into a build tree, compiling shaders to SPIR-V",
		Long: "Copies every asset of <source-dir> into <build-dir>, compiling shader stages with the\n" +
			"given glslc or glslangValidator executable using the flags of <configuration>\n" +
			"(Debug, Release, RelWithDebInfo or MinSizeRel).",
		Args:          exactArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runSync,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("pipeline", "p", "", "Path to a pipeline file overriding extensions and flags")
	rootCmd.Flags().String("target-env", "", "Target environment passed to the compiler (default "+domain.DefaultTargetEnv+")")
	rootCmd.Flags().String("output-suffix", "", "Suffix appended to compiled shader file names, e.g. .spv")
	rootCmd.Flags().BoolP("no-cache", "n", false, "Ignore shader build records and compile every stale shader")
	rootCmd.Flags().BoolP("watch", "w", false, "Keep synchronizing whenever the source tree changes")
	rootCmd.PersistentFlags().String("log-format", logFormatText, "Log output format: text or json")

	c.rootCmd = rootCmd
	return c
}

func exactArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(argCount)(cmd, args); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArguments, err.Error()), "count", len(args))
	}
	return nil
}

func (c *CLI) runSync(cmd *cobra.Command, args []string) error {
	pipeline, _ := cmd.Flags().GetString("pipeline")
	targetEnv, _ := cmd.Flags().GetString("target-env")
	outputSuffix, _ := cmd.Flags().GetString("output-suffix")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	watch, _ := cmd.Flags().GetBool("watch")

	return c.app.Run(cmd.Context(), app.Invocation{
		SourceDir:     args[0],
		BuildDir:      args[1],
		Compiler:      args[2],
		Configuration: args[3],
		PipelinePath:  pipeline,
		TargetEnv:     targetEnv,
		OutputSuffix:  outputSuffix,
		NoCache:       noCache,
		Watch:         watch,
	})
}

// SetLogFormatHook sets up a PersistentPreRun function that validates the log-format flag
// and calls the provided callback with whether JSON output was requested.
func (c *CLI) SetLogFormatHook(fn func(json bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("log-format")
		if err != nil {
			return err
		}
		switch format {
		case logFormatText, logFormatJSON:
		default:
			return zerr.With(zerr.Wrap(domain.ErrInvalidArguments, "unknown log format"), "format", format)
		}
		fn(format == logFormatJSON)
		return nil
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
