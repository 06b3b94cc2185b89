package lib7x3

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/pkg/errors"
)

const (
	ProgramName     = "go7x3 Fano Plane Automorphism Finder"
	GeneratedLayout = "2006-01-02 15:04:05"
)

// ListingHeader returns the first line of a listing.
func ListingHeader(kind go7x3.OutputKind, generated time.Time) string {
	return fmt.Sprintf("%s | %v Output | Generated: %s", ProgramName, kind, generated.Format(GeneratedLayout))
}

// ListingFooter returns the last line of a listing.
func ListingFooter(kind go7x3.OutputKind, count int) string {
	return fmt.Sprintf("Number of %v: %d", kind, count)
}

// WriteListing writes the header, one row per line, a blank line, and the count footer.
func WriteListing(w io.Writer, kind go7x3.OutputKind, rows []string, generated time.Time) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, ListingHeader(kind, generated))
	for _, row := range rows {
		out.WriteString(row)
		out.WriteByte('\n')
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, ListingFooter(kind, len(rows)))
	return out.Flush()
}

// SaveListing writes a listing to the given file, replacing any existing file.
func SaveListing(pathname string, kind go7x3.OutputKind, rows []string, generated time.Time) error {
	if dir := filepath.Dir(pathname); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, "creating %q", dir)
		}
	}

	file, err := os.OpenFile(pathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening %q", pathname)
	}

	err = WriteListing(file, kind, rows, generated)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrapf(err, "writing %q", pathname)
}

// FormatRows renders each ordering via FormatRow.
func FormatRows(perms []go7x3.Ordering, opts go7x3.PrintOpts) []string {
	rows := make([]string, len(perms))
	for i, X := range perms {
		rows[i] = FormatRow(X, opts)
	}
	return rows
}
