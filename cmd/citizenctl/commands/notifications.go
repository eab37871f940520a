package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

func newNotificationsCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"n"},
		Short:   "List and open notifications",
	}
	cmd.AddCommand(newNotificationsListCommand(s), newNotificationsOpenCommand(s))
	return cmd
}

func newNotificationsListCommand(s *state) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch notifications, new first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseCategory(category)
			if err != nil {
				return err
			}

			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			if _, err := s.app.Session.Token(ctx); err != nil {
				return userError(err, "")
			}
			if err := s.app.Notifications.Refresh(ctx, true); err != nil {
				return userError(err, "Failed to load notifications")
			}

			snapshot := s.app.Notifications.Snapshot()
			fresh, previous := notificationsService.Partition(notificationsService.FilterByCategory(snapshot.Items, filter))

			fmt.Fprintf(s.out, "Unread: %d\n", snapshot.Unread)
			printNotifications(s, "New", fresh)
			printNotifications(s, "Previous", previous)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "all", "filter: all, payment, booking, promo, promotion")
	return cmd
}

func newNotificationsOpenCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "open <booking_id> <service_type>",
		Short: "Mark a notification as viewed and show booking details",
		Long: "Mark a notification as viewed and show booking details.\n" +
			"Arguments are matched exactly as the server sends them: 10 is a number, '\"10\"' is a string.\n" +
			"Pass the BOOKING and SERVICE columns of 'notifications list' as printed; " + absentArg + " stands for a missing value.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair := domain.SeenPair{
				BookingID:   parseArg(args[0]),
				ServiceType: parseArg(args[1]),
			}

			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			if err := s.app.Notifications.Refresh(ctx, true); err != nil {
				return userError(err, "Failed to load notifications")
			}
			details, err := s.app.Notifications.Open(ctx, pair)
			if err != nil {
				switch {
				case errors.Is(err, notificationsService.ErrNotificationNotFound):
					return fmt.Errorf("notification %s %s not found", formatArg(pair.BookingID), formatArg(pair.ServiceType))
				case errors.Is(err, notificationsService.ErrNotInteractive):
					return fmt.Errorf("notification %s %s is already closed", formatArg(pair.BookingID), formatArg(pair.ServiceType))
				}
				return userError(err, "Failed to load details")
			}

			printDetails(s, details)
			return nil
		},
	}
}

func parseCategory(value string) (domain.NotificationCategory, error) {
	for _, c := range domain.NotificationCategories {
		if strings.EqualFold(string(c), value) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// absentArg обозначение отсутствующего booking_id или service_type в выводе и аргументах
const absentArg = "-"

// parseArg JSON-скаляр из аргумента; всё, что не разбирается как JSON, считается строкой
func parseArg(arg string) types.RawScalar {
	if arg == absentArg {
		return ""
	}
	if json.Valid([]byte(arg)) {
		if v, err := types.ParseScalar([]byte(arg)); err == nil && !v.IsAbsent() {
			return v
		}
	}
	return types.ScalarFromString(arg)
}

func printNotifications(s *state, title string, list []domain.Notification) {
	fmt.Fprintf(s.out, "\n%s (%d)\n", title, len(list))
	if len(list) == 0 {
		return
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOKING\tSERVICE\tCATEGORY\tTITLE\tBADGE\tCREATED")
	for i := range list {
		n := &list[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			formatArg(n.BookingID), formatArg(n.ServiceType), n.Category, n.Title, n.Badge(), n.CreatedAt)
	}
	_ = tw.Flush()
}

// formatArg значение пары в том виде, в котором его принимает parseArg
func formatArg(v types.RawScalar) string {
	if v.IsAbsent() {
		return absentArg
	}
	return string(v)
}

func printDetails(s *state, d *domain.NotificationDetails) {
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Booking:\t%s\n", d.BookingID)
	fmt.Fprintf(tw, "Service:\t%s\n", d.ServiceType)
	fmt.Fprintf(tw, "Category:\t%s\n", d.CategoryName)
	if d.SubcategoryName != "" {
		fmt.Fprintf(tw, "Subcategory:\t%s\n", d.SubcategoryName)
	}
	fmt.Fprintf(tw, "Status:\t%s\n", d.Status)
	fmt.Fprintf(tw, "Description:\t%s\n", d.Description)
	fmt.Fprintf(tw, "Address:\t%s\n", d.Address)
	if d.Amount != "" {
		fmt.Fprintf(tw, "Amount:\t%s\n", d.Amount)
	}
	fmt.Fprintf(tw, "Can pay:\t%t\n", d.CanPay())
	for _, img := range d.Images {
		fmt.Fprintf(tw, "Image:\t%s\n", img)
	}
	_ = tw.Flush()
}
