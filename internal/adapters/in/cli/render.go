// internal/adapters/in/cli/render.go
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/application/query/dto"
)

var (
	colorAccent = lipgloss.Color("#5FAFD7")
	colorMuted  = lipgloss.Color("#6C7A89")
	colorNotice = lipgloss.Color("#F4D03F")
	colorFail   = lipgloss.Color("#E74C3C")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleNotice = lipgloss.NewStyle().Foreground(colorNotice)
	styleError  = lipgloss.NewStyle().Foreground(colorFail)
	styleTotal  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

// renderCartView prints the reconciled cart the way the cart page lays it
// out: one row per resolved line item, then the totals.
func renderCartView(w io.Writer, view *dto.CartView) {
	switch view.State {
	case dto.StateEmpty:
		fmt.Fprintln(w, styleMuted.Render("Your cart is empty."))
		return
	case dto.StateLoading:
		fmt.Fprintln(w, styleMuted.Render("Loading..."))
		return
	case dto.StateError:
		fmt.Fprintln(w, styleError.Render("Could not load your cart. Please try again."))
		return
	}

	fmt.Fprintln(w, styleTitle.Render("Your cart"))
	fmt.Fprintln(w, styleHeader.Render(padRow("ID", "Product", "Price", "Qty", "Subtotal")))
	for _, row := range view.Rows {
		qty := strconv.Itoa(row.Qty)
		if !row.CanIncrement {
			qty += " (max)"
		}
		fmt.Fprintln(w, padRow(
			strconv.Itoa(row.ID),
			row.Name,
			dto.FormatAmount(row.UnitPrice),
			qty,
			dto.FormatAmount(row.Subtotal),
		))
	}
	if view.Orphans > 0 {
		fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("%d item(s) no longer available", view.Orphans)))
	}
	fmt.Fprintln(w, styleTotal.Render("Total: "+dto.FormatAmount(view.Total)))
}

func padRow(cols ...string) string {
	widths := []int{4, 28, 10, 9, 10}
	parts := make([]string, len(cols))
	for i, c := range cols {
		wd := 10
		if i < len(widths) {
			wd = widths[i]
		}
		// cells are sized in runes so multibyte names survive truncation
		r := []rune(c)
		if len(r) > wd {
			r = append(r[:wd-1], '…')
			c = string(r)
		}
		if pad := wd - len(r); pad > 0 {
			c += strings.Repeat(" ", pad)
		}
		parts[i] = c
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

// renderFooter prints the transient notices, the badge count and any
// pending navigation target, in that order.
func renderFooter(w io.Writer, a *app) {
	for _, msg := range a.c.Notices.Messages() {
		fmt.Fprintln(w, styleNotice.Render(msg))
	}
	if n, ok := a.badge.Count(); ok && n > 0 {
		fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("Cart (%d)", n)))
	}
	if target, ok := a.nav.Target(); ok {
		fmt.Fprintln(w, styleAccentArrow()+target)
	}
}

func styleAccentArrow() string {
	return lipgloss.NewStyle().Foreground(colorAccent).Render("-> ")
}
