package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// requireArgs rejects fewer than min positionals. Shape errors exit non-zero;
// bad values inside well-shaped arguments are reported by the engine instead.
func requireArgs(min int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min {
			return fmt.Errorf("missing %s\nusage: %s", what, cmd.UseLine())
		}
		return nil
	}
}

// requireGroups expects one or more complete groups of size positionals,
// e.g. <task> <date> <time> triples.
func requireGroups(size int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%size != 0 {
			return fmt.Errorf("expected groups of %d arguments (%s), got %d\nusage: %s", size, what, len(args), cmd.UseLine())
		}
		return nil
	}
}
