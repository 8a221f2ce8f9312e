// Package report prints the outcome of a discovery run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"matrix-contacts/domain"
	"matrix-contacts/errors"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

var Formats = []string{FormatPlain, FormatTable, FormatJSON}

type Renderer interface {
	Render(w io.Writer, report domain.Report) error
}

func NewRenderer(format string, colours bool) (Renderer, error) {
	switch format {
	case FormatPlain:
		return PlainRenderer{Colours: colours}, nil
	case FormatTable:
		return TableRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", errors.ErrInvalidConfig, format)
	}
}

// PlainRenderer prints a header followed by one contact per line.
type PlainRenderer struct {
	Colours bool
}

func (p PlainRenderer) Render(w io.Writer, report domain.Report) error {
	if !report.HasRooms() {
		return noRooms(w, report)
	}

	header := fmt.Sprintf("Contacts for %s:", report.Identity)
	if p.Colours {
		header = color.New(color.FgGreen).Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, contact := range report.Contacts {
		if _, err := fmt.Fprintln(w, contact); err != nil {
			return err
		}
	}
	return nil
}

// TableRenderer prints the contacts as a numbered, borderless table.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, report domain.Report) error {
	if !report.HasRooms() {
		return noRooms(w, report)
	}

	if _, err := fmt.Fprintf(w, "Contacts for %s (%d rooms, %d skipped):\n",
		report.Identity, len(report.Rooms), len(report.SkippedRooms)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Contact"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, contact := range report.Contacts {
		table.Append([]string{strconv.Itoa(i + 1), contact.String()})
	}
	table.Render()
	return nil
}

type jsonReport struct {
	UserID       string   `json:"user_id"`
	Rooms        int      `json:"rooms"`
	Contacts     []string `json:"contacts"`
	SkippedRooms []string `json:"skipped_rooms"`
}

// JSONRenderer always emits a document, with an empty contact list when there are no rooms.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, report domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		UserID: report.Identity.String(),
		Rooms:  len(report.Rooms),
		Contacts: lo.Map(report.Contacts, func(item domain.Identity, _ int) string {
			return item.String()
		}),
		SkippedRooms: lo.Map(report.SkippedRooms, func(item domain.RoomID, _ int) string {
			return item.String()
		}),
	})
}

func noRooms(w io.Writer, report domain.Report) error {
	_, err := fmt.Fprintf(w, "no rooms found for %s\n", report.Identity)
	return err
}
