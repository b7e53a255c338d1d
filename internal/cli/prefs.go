package cli

import (
	"fmt"
	"strconv"

	"gamecatalog/backend/internal/preferences"

	"github.com/spf13/cobra"
)

func newPrefsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or change display preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print every preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, name := range preferences.Names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", name, a.Preferences.GetFlag(cmd.Context(), name))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <isLargeText|isHighContrast> <true|false>",
		Short: "Persist one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := preferences.ParseName(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			a, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.Preferences.SetFlag(cmd.Context(), name, value)
		},
	})
	return cmd
}
