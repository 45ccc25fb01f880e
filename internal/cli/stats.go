package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"bitbuddy/internal/core/domain"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate activity for an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			stats, err := e.rewards().GetStats(cmd.Context(), owner)
			if err != nil {
				return err
			}
			writeStats(cmd.OutOrStdout(), owner, stats)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "wallet address to report on")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func writeStats(out io.Writer, owner string, s *domain.UserStats) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintf(w, "OWNER\t%s\n", owner)
	_, _ = fmt.Fprintf(w, "GIFTS SENT\t%d\n", s.TotalGiftsSent)
	_, _ = fmt.Fprintf(w, "SATS GIFTED\t%d\n", s.TotalSatsGifted)
	_, _ = fmt.Fprintf(w, "ACTIVE GOALS\t%d\n", s.ActiveSavingsGoals)
	_, _ = fmt.Fprintf(w, "COMPLETED GOALS\t%d\n", s.CompletedSavingsGoals)
	_, _ = fmt.Fprintf(w, "SATS SAVED\t%d\n", s.TotalSavedSats)
	_, _ = fmt.Fprintf(w, "BADGES\t%d\n", s.TotalBadges)
	last := "-"
	if s.LastActivity != nil {
		last = s.LastActivity.UTC().Format(time.RFC3339)
	}
	_, _ = fmt.Fprintf(w, "LAST ACTIVITY\t%s\n", last)
	_ = w.Flush()
}
