package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReconcileCmd(opts *options) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-run badge rules for an address and grant anything missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			unlocked, err := e.rewards().ReconcileBadges(cmd.Context(), owner)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(unlocked) == 0 {
				fmt.Fprintf(out, "%s: nothing to grant\n", owner)
				return nil
			}
			for _, b := range unlocked {
				fmt.Fprintf(out, "%s: granted %s\n", owner, b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "wallet address to reconcile")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
