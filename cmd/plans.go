package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinepass-cli/service"
	"cinepass-cli/subscription"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Show subscription plans",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		sub, err := client.GetMySubscription(context.Background())
		if err != nil && !service.IsUnauthorized(err) {
			fail(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Plan", "Price", "Discount", "Free Tickets", "Features"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 5, WidthMax: 48},
		})
		t.Style().Options.SeparateRows = true

		for _, plan := range subscription.Plans {
			name := plan.Name
			if sub.Active() && sub.Plan == plan.Slug {
				name += " (current)"
			}
			t.AppendRow(table.Row{
				name,
				fmt.Sprintf("$%.2f/month", plan.Price),
				fmt.Sprintf("%.0f%%", plan.DiscountPercent),
				fmt.Sprintf("%d/month", plan.FreeTicketsPerMonth),
				strings.Join(plan.Features, "\n"),
			})
		}
		t.Render()

		if sub.Active() {
			fmt.Printf("\nCurrent plan: %s • %d free tickets remaining",
				subscription.PlanName(sub), sub.FreeTicketsRemaining)
			if sub.CancelAtPeriodEnd {
				fmt.Printf(" • cancels %s", sub.CurrentPeriodEnd)
			}
			fmt.Println()
		}
	},
}
