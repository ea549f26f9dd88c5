package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fahmitech/blogguard/pkg/config"
	"github.com/fahmitech/blogguard/pkg/guard"
	"github.com/fahmitech/blogguard/pkg/logger"
	"github.com/fahmitech/blogguard/pkg/predeploy"
	"github.com/fahmitech/blogguard/pkg/types"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose message was already written to stderr.
var errReported = errors.New("check failed")

type checkOptions struct {
	file       string
	configFile string
	profile    string
}

type predeployOptions struct {
	root string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool
	opts := &checkOptions{}

	rootCmd := &cobra.Command{
		Use:           "blogguard",
		Short:         "Blog content guard - Reject unsafe inline HTML before publishing",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output to stderr")
	addCheckFlags(rootCmd, opts)

	checkOpts := &checkOptions{}
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate blog data for unsafe <script> tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkOpts, stdout, stderr)
		},
	}
	addCheckFlags(checkCmd, checkOpts)
	rootCmd.AddCommand(checkCmd)

	pdOpts := &predeployOptions{}
	predeployCmd := &cobra.Command{
		Use:   "predeploy",
		Short: "Verify required site files and hosting configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := predeploy.Check(pdOpts.root, stdout)
			if err != nil {
				return err
			}
			if !rep.OK() {
				return errReported
			}
			return nil
		},
	}
	predeployCmd.Flags().StringVar(&pdOpts.root, "root", ".", "Site root directory")
	rootCmd.AddCommand(predeployCmd)

	return rootCmd
}

func addCheckFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Content file path (default "+guard.DefaultPath+")")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Optional YAML config file")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Config profile name")
}

func resolveTarget(opts *checkOptions) (types.Target, error) {
	cfg := config.Default(guard.DefaultPath, guard.DefaultLabel, guard.DefaultMarker)
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return types.Target{}, err
		}
		cfg = loaded
		logger.Info("loaded config %s", opts.configFile)
	}

	target, err := config.SelectProfile(cfg, opts.profile)
	if err != nil {
		return types.Target{}, err
	}
	if opts.file != "" {
		target.Path = opts.file
	}
	if target.Path == "" {
		target.Path = guard.DefaultPath
	}
	if len(target.Markers) == 0 {
		target.Markers = types.Markers{guard.DefaultMarker}
	}
	if err := config.Validate(&target); err != nil {
		return types.Target{}, fmt.Errorf("invalid config: %w", err)
	}
	return target, nil
}

func runCheck(opts *checkOptions, stdout, stderr io.Writer) error {
	target, err := resolveTarget(opts)
	if err != nil {
		return err
	}
	logger.Debug("checking %s for %v", target.Path, []string(target.Markers))

	status := guard.RunWithOptions(target.Path, guard.Options{
		Label:   target.Label,
		Markers: target.Markers,
	}, stdout, stderr)
	if status != guard.ExitOK {
		return errReported
	}
	return nil
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return int(guard.ExitFailure)
	}
	return int(guard.ExitOK)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
