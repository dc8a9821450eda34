// Package menu implements the interactive numbered-menu session over an
// inventory store. All parsing of user text happens here; the store only
// ever sees typed values.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/larderhq/larder/pkg/types"
)

const dateFormat = "2006-01-02"

// Menu drives a numbered prompt loop over a store. Reads come from in,
// output goes to out.
type Menu struct {
	store types.Store
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a menu session bound to the store and streams.
func New(store types.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops until the user picks exit or input ends. Failures of individual
// operations are printed and the loop continues; running out of input is a
// normal way to end the session.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Larder:")
		fmt.Fprintln(m.out, "1) Add item")
		fmt.Fprintln(m.out, "2) Update item")
		fmt.Fprintln(m.out, "3) Delete item")
		fmt.Fprintln(m.out, "4) View items")
		fmt.Fprintln(m.out, "5) Predict restock date")
		fmt.Fprintln(m.out, "6) Exit")

		choice, ok := m.prompt("Choose an option (1-6): ")
		if !ok {
			return m.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.addItem()
		case "2":
			m.updateItem()
		case "3":
			m.deleteItem()
		case "4":
			m.viewItems()
		case "5":
			m.predictRestock()
		case "6":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter 1-6.")
		}
	}
}

// prompt prints the label and reads one line. ok is false when input is
// exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) addItem() {
	name, ok := m.prompt("Enter item name: ")
	if !ok {
		return
	}
	qtyText, ok := m.prompt("Enter quantity: ")
	if !ok {
		return
	}
	threshText, ok := m.prompt("Enter threshold: ")
	if !ok {
		return
	}

	quantity, qErr := ParseCount(qtyText)
	threshold, tErr := ParseCount(threshText)
	if qErr != nil || tErr != nil {
		fmt.Fprintln(m.out, "Error: quantity and threshold must be integers.")
		return
	}

	item, err := m.store.AddItem(name, quantity, threshold)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Item %q added (quantity %d, threshold %d).\n",
		item.Name, item.Quantity, item.Threshold)
}

func (m *Menu) updateItem() {
	name, ok := m.prompt("Enter item name to update: ")
	if !ok {
		return
	}

	current, err := m.store.GetItem(name)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Current: quantity %d, threshold %d, last updated %s, daily use %.2f\n",
		current.Quantity, current.Threshold,
		current.LastUpdated.Format(dateFormat), current.DailyUsage)

	qtyText, ok := m.prompt("New quantity (leave blank to keep): ")
	if !ok {
		return
	}
	threshText, ok := m.prompt("New threshold (leave blank to keep): ")
	if !ok {
		return
	}

	quantity, qErr := ParseOptionalCount(qtyText)
	threshold, tErr := ParseOptionalCount(threshText)
	if qErr != nil || tErr != nil {
		fmt.Fprintln(m.out, "Error: quantity and threshold must be integers.")
		return
	}

	item, err := m.store.UpdateItem(name, quantity, threshold)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Item %q updated: quantity %d, threshold %d, daily use %.2f.\n",
		item.Name, item.Quantity, item.Threshold, item.DailyUsage)
	if item.BelowThreshold() {
		fmt.Fprintf(m.out, "Alert: %q is below its threshold (%d). Consider restocking.\n",
			item.Name, item.Threshold)
	}
}

func (m *Menu) deleteItem() {
	name, ok := m.prompt("Enter item name to delete: ")
	if !ok {
		return
	}
	if err := m.store.DeleteItem(name); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Item %q deleted.\n", name)
}

func (m *Menu) viewItems() {
	items, err := m.store.ListItems()
	if err != nil {
		m.report(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No items in inventory.")
		return
	}
	fmt.Fprint(m.out, RenderTable(items))
}

func (m *Menu) predictRestock() {
	name, ok := m.prompt("Enter item name: ")
	if !ok {
		return
	}
	forecast, err := m.store.PredictRestock(name)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprint(m.out, RenderForecast(forecast))
}

// report prints a friendly line for the failure and keeps the session going.
func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, types.ErrDuplicateItem):
		fmt.Fprintln(m.out, "That item is already tracked.")
	case errors.Is(err, types.ErrItemNotFound):
		fmt.Fprintln(m.out, "Item not found.")
	case errors.Is(err, types.ErrInsufficientData):
		fmt.Fprintln(m.out, "Not enough usage data yet. Update the item after some use.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

// RenderTable formats items as an aligned table, marking rows that sit below
// their threshold.
func RenderTable(items []types.Item) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tQTY\tTHRESHOLD\tLAST UPDATED\tDAILY USE\tSTATUS")
	fmt.Fprintln(w, "----\t---\t---------\t------------\t---------\t------")
	for _, it := range items {
		status := ""
		if it.BelowThreshold() {
			status = "LOW"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%.2f\t%s\n",
			it.Name, it.Quantity, it.Threshold,
			it.LastUpdated.Format(dateFormat), it.DailyUsage, status)
	}
	w.Flush()
	return sb.String()
}

// RenderForecast formats a forecast the way both the menu and the predict
// command print it.
func RenderForecast(f types.Forecast) string {
	if f.AlreadyLow {
		return fmt.Sprintf("%q is already below its threshold!\n", f.Item.Name)
	}
	return fmt.Sprintf("Estimate: ~%d days until %q reaches its threshold.\n    (Approx restock date: %s)\n",
		f.Days, f.Item.Name, f.RestockDate.Format(dateFormat))
}

// ParseCount parses caller text into a count. The text must be an integer
// once surrounding space is trimmed; sign is accepted as given.
func ParseCount(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", types.ErrInvalidInput, trimmed)
	}
	return n, nil
}

// ParseOptionalCount parses optional caller text: blank means keep the
// stored value.
func ParseOptionalCount(text string) (*int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	n, err := ParseCount(text)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
