package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings/models"
)

func newBookingsCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookings",
		Aliases: []string{"b"},
		Short:   "Browse your bookings and requests",
	}
	cmd.AddCommand(newBookingsListCommand(s))
	return cmd
}

func newBookingsListCommand(s *state) *cobra.Command {
	var (
		past       bool
		typeFilter string
		search     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active or past bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &models.ListBookingsRequest{
				Tab:    domain.TabActive,
				Type:   typeFilter,
				Search: search,
			}
			if past {
				req.Tab = domain.TabPast
			}

			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			list, err := s.app.Bookings.List(ctx, req)
			if err != nil {
				return userError(err, "Failed to load bookings")
			}

			if len(list) == 0 {
				fmt.Fprintln(s.out, "No bookings found")
				return nil
			}

			tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tSTATUS\tPAYMENT\tCREATED")
			for _, b := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.ServiceType, b.Title, b.Status, b.PaymentStatus, b.CreatedAt)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&past, "past", false, "show completed and cancelled bookings")
	cmd.Flags().StringVar(&typeFilter, "type", "", "filter by type: all, mandap, waste, pollution, complaints, cesspool, misc")
	cmd.Flags().StringVar(&search, "search", "", "search in title, type and status")
	return cmd
}
