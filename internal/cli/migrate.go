package cli

import (
	"fmt"

	pgStorage "bitbuddy/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending activity store migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := pgStorage.Migrate(cmd.Context(), e.pool, e.log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
