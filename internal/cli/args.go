package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

// exactArgs is cobra.ExactArgs reporting an argument error with usage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return clierrors.NewArgumentErrorWithUsage(
				fmt.Sprintf("accepts %d arg(s), received %d", n, len(args)),
				cmd.UseLine(),
			)
		}
		return nil
	}
}

// maxArgs is cobra.MaximumNArgs reporting an argument error with usage.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return clierrors.NewArgumentErrorWithUsage(
				fmt.Sprintf("accepts at most %d arg(s), received %d", n, len(args)),
				cmd.UseLine(),
			)
		}
		return nil
	}
}
