package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinepass-cli/seatmap"
	"cinepass-cli/subscription"
)

// seatCursor addresses one cell of the layout grid: row index into
// Layout.Rows, cell index into that row.
type seatCursor struct {
	row int
	col int
}

func firstSeatCursor(layout *seatmap.Layout) seatCursor {
	for r, row := range layout.Rows {
		if row.Aisle {
			continue
		}
		for c, cell := range row.Cells {
			if cell.Kind == seatmap.CellSeat {
				return seatCursor{row: r, col: c}
			}
		}
	}
	return seatCursor{}
}

func (sc seatCursor) seatID(layout *seatmap.Layout) (int, bool) {
	if sc.row < 0 || sc.row >= len(layout.Rows) {
		return 0, false
	}
	row := layout.Rows[sc.row]
	if row.Aisle || sc.col < 0 || sc.col >= len(row.Cells) {
		return 0, false
	}
	cell := row.Cells[sc.col]
	if cell.Kind != seatmap.CellSeat {
		return 0, false
	}
	return cell.Seat.Id, true
}

// moveHorizontal steps to the next seat cell in the row, skipping gaps.
func (sc seatCursor) moveHorizontal(layout *seatmap.Layout, delta int) seatCursor {
	if sc.row < 0 || sc.row >= len(layout.Rows) {
		return sc
	}
	cells := layout.Rows[sc.row].Cells
	for c := sc.col + delta; c >= 0 && c < len(cells); c += delta {
		if cells[c].Kind == seatmap.CellSeat {
			return seatCursor{row: sc.row, col: c}
		}
	}
	return sc
}

// moveVertical steps to the nearest seat cell in the next seat row, skipping
// aisle rows entirely.
func (sc seatCursor) moveVertical(layout *seatmap.Layout, delta int) seatCursor {
	for r := sc.row + delta; r >= 0 && r < len(layout.Rows); r += delta {
		row := layout.Rows[r]
		if row.Aisle {
			continue
		}
		if c, ok := nearestSeatCell(row, sc.col); ok {
			return seatCursor{row: r, col: c}
		}
	}
	return sc
}

func nearestSeatCell(row seatmap.Row, col int) (int, bool) {
	best := -1
	bestDist := 0
	for c, cell := range row.Cells {
		if cell.Kind != seatmap.CellSeat {
			continue
		}
		dist := col - c
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func (m appModel) renderSeatGrid() string {
	layout := m.flow.Layout()
	if layout.SeatCount() == 0 {
		return "No seat layout available for this room."
	}

	cellWidth := 2
	if m.showSeatNumbers {
		for _, row := range layout.Rows {
			for _, cell := range row.Cells {
				if cell.Kind != seatmap.CellSeat {
					continue
				}
				if l := len(fmt.Sprintf("%d", cell.Seat.SeatColumnLabel)); l > cellWidth {
					cellWidth = l
				}
			}
		}
	}

	styleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	styleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleCursor := lipgloss.NewStyle().Reverse(true).Bold(true)

	rowWidth := 2
	var b strings.Builder
	gridWidth := 0
	for r, row := range layout.Rows {
		if row.Aisle {
			b.WriteString("\n")
			continue
		}
		label := rowLabel(row)
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c, cell := range row.Cells {
			if cell.Kind != seatmap.CellSeat {
				b.WriteString(strings.Repeat(" ", cellWidth))
				if c < len(row.Cells)-1 {
					b.WriteString(" ")
				}
				continue
			}

			text := "[]"
			if m.showSeatNumbers {
				text = fmt.Sprintf("%d", cell.Seat.SeatColumnLabel)
			}
			id := cell.Seat.Id
			rendered := padCell(text, cellWidth)
			switch {
			case m.cursor.row == r && m.cursor.col == c:
				rendered = styleCursor.Render(rendered)
			case m.flow.Selection.Booked(id):
				if !m.showSeatNumbers {
					rendered = padCell("XX", cellWidth)
				}
				rendered = styleBooked.Render(rendered)
			case m.flow.Selection.Has(id):
				if !m.showSeatNumbers {
					rendered = padCell("()", cellWidth)
				}
				rendered = styleSelected.Render(rendered)
			default:
				rendered = styleAvailable.Render(rendered)
			}
			b.WriteString(rendered)
			if c < len(row.Cells)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
		if w := len(row.Cells)*(cellWidth+1) - 1; w > gridWidth {
			gridWidth = w
		}
	}

	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	screenBar := screenBarBlock(gridWidth, "SCREEN")
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	legend := "Legend: [] available • () selected • XX booked"
	if m.showSeatNumbers {
		legend = "Legend: color shows status • numbers are seat labels"
	}
	selected := labelSeats(layout, m.flow.SeatIDs())
	status := fmt.Sprintf("Selected: %s • Total: %s", selected, formatPrice(m.flow.TotalPrice()))
	if len(m.flow.SeatIDs()) == 0 {
		status = "Selected: none"
	}
	return b.String() + hint(legend) + "\n" + hint(status)
}

func rowLabel(row seatmap.Row) string {
	for _, cell := range row.Cells {
		if cell.Kind == seatmap.CellSeat {
			return cell.Seat.SeatRowLabel
		}
	}
	return ""
}

func labelSeats(layout *seatmap.Layout, ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, layout.Label(id))
	}
	return strings.Join(labels, ", ")
}

func (m appModel) renderConfirm() string {
	flow := m.flow
	if flow.Showtime == nil || flow.Selection == nil {
		return "Nothing to confirm."
	}

	breakdown := subscription.CalculatePrice(m.sub, flow.Showtime.TicketPrice, flow.Selection.Count())

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Render("Confirm purchase")
	b.WriteString(title + "\n\n")
	if flow.Cinema != nil {
		b.WriteString(fmt.Sprintf("Cinema    %s\n", flow.Cinema.Name))
	}
	b.WriteString(fmt.Sprintf("Date      %s\n", flow.Date))
	b.WriteString(fmt.Sprintf("Time      %s - %s\n", flow.Showtime.StartTime, flow.Showtime.EndTime))
	if flow.RoomName != "" {
		b.WriteString(fmt.Sprintf("Room      %s\n", flow.RoomName))
	}
	b.WriteString(fmt.Sprintf("Seats     %s\n", labelSeats(flow.Layout(), flow.SeatIDs())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tickets   %d × %s = %s\n", flow.Selection.Count(), formatPrice(flow.Showtime.TicketPrice), formatPrice(breakdown.OriginalTotal)))
	if breakdown.FreeTicketsApplied > 0 {
		b.WriteString(fmt.Sprintf("Free      %d ticket(s) from your plan\n", breakdown.FreeTicketsApplied))
	}
	if breakdown.DiscountAmount > 0 {
		b.WriteString(fmt.Sprintf("Discount  -%s (%s, %.0f%% off)\n", formatPrice(breakdown.DiscountAmount), subscription.PlanName(m.sub), breakdown.DiscountPercent))
	}
	totalStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total     %s", formatPrice(breakdown.FinalTotal))))
	b.WriteString("\n\n")

	if breakdown.FinalTotal <= 0 {
		b.WriteString(hint("enter confirm (covered by your plan) • esc back"))
	} else {
		b.WriteString(hint("enter pay in browser • esc back"))
	}
	if m.err != nil {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
	}
	return b.String()
}

func (m appModel) renderSuccess() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Render("Tickets confirmed!")
	b.WriteString(title + "\n\n")
	order := m.flow.Result
	if order == nil {
		b.WriteString("Your payment was received. Tickets will show up in your account shortly.\n")
		b.WriteString("\n" + hint("enter back to movies • ctrl+c quit"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Movie   %s\n", order.MovieTitle))
	if order.CinemaName != "" {
		b.WriteString(fmt.Sprintf("Cinema  %s\n", order.CinemaName))
	}
	if order.RoomName != "" {
		b.WriteString(fmt.Sprintf("Room    %s\n", order.RoomName))
	}
	if order.StartTime != "" {
		b.WriteString(fmt.Sprintf("Time    %s - %s\n", order.StartTime, order.EndTime))
	}
	seats := make([]string, 0, len(order.Tickets))
	for _, ticket := range order.Tickets {
		seats = append(seats, ticket.Seat.Row+ticket.Seat.Column)
	}
	if len(seats) > 0 {
		b.WriteString(fmt.Sprintf("Seats   %s\n", strings.Join(seats, ", ")))
	}
	b.WriteString("\n" + hint("enter back to movies • ctrl+c quit"))
	return b.String()
}

func (m appModel) renderAwaitPayment() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Render("Complete your payment in the browser")
	b.WriteString(title + "\n\n")
	if m.checkoutURL != "" {
		b.WriteString("Payment page: " + m.checkoutURL + "\n\n")
	}
	b.WriteString("After paying, come back here and press enter to confirm your order.\n\n")
	b.WriteString(hint("enter check order • o reopen payment page • esc cancel"))
	if m.err != nil {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
	}
	return b.String()
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
