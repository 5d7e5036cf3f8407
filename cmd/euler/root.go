package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"undergo/dynamic"
	"undergo/internal/euler"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	logger := zap.NewNop()

	cmd := &cobra.Command{
		Use:          "euler <max>",
		Short:        "Sum the multiples of 3 or 5 below max",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			built, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = built
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseLimit(dynamic.New(dynamic.WithLogger(logger)), args[0])
			if err != nil {
				return err
			}
			answer := euler.Problem1(limit)
			logger.Debug("euler.solved", zap.Int("max", limit), zap.Int("answer", answer))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "And the answer is .... %d\n", answer)
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// parseLimit reads the upper bound the same way the library's toNumber
// does, then insists on a non-negative integer.
func parseLimit(lib *dynamic.Library, arg string) (int, error) {
	n, err := lib.Call("toNumber", arg)
	if err != nil {
		return 0, fmt.Errorf("invalid max %q: %w", arg, err)
	}
	limit, ok := n.(int)
	if !ok {
		return 0, fmt.Errorf("invalid max %q: must be an integer", arg)
	}
	if limit < 0 {
		return 0, fmt.Errorf("invalid max %q: must not be negative", arg)
	}
	return limit, nil
}
