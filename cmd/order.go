package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order <checkout-session-id>",
	Short: "Look up the tickets bought in a checkout session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		order, err := client.GetOrderBySession(context.Background(), args[0])
		if err != nil {
			fail(err)
		}
		if order == nil {
			fmt.Println("No order found for this session yet. Payment may still be processing.")
			return
		}

		fmt.Printf("%s • %s • %s\n", order.MovieTitle, order.CinemaName, order.RoomName)
		if order.StartTime != "" {
			fmt.Printf("%s - %s\n", order.StartTime, order.EndTime)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Ticket", "Seat"})
		for _, ticket := range order.Tickets {
			t.AppendRow(table.Row{
				fmt.Sprintf("#%d", ticket.Id),
				ticket.Seat.Row + ticket.Seat.Column,
			})
		}
		t.Render()
	},
}
