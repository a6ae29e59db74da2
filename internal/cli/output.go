package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-forum/models"
)

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Message prints a one-line status, or {"message": ...} in JSON mode.
func (f *OutputFormatter) Message(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if f.Format == "json" {
		return f.json(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(f.Writer, msg)
	return err
}

func (f *OutputFormatter) Discussions(discussions []models.Discussion) error {
	if f.Format == "json" {
		return f.json(discussions)
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCONTENT")
	for _, d := range discussions {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.DiscussionID, d.Title, d.Content)
	}
	return tw.Flush()
}

func (f *OutputFormatter) Posts(posts []models.Post) error {
	if f.Format == "json" {
		return f.json(posts)
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWRITER\tPOSTED\tTITLE\tCONTENT")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.PostID, p.Writer, p.CreatedAt.Format(time.DateTime), p.Title, p.Content)
	}
	return tw.Flush()
}
