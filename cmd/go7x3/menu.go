package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/pkg/errors"
	"github.com/2x3systems/go7x3/lib7x3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	titleColor  = color.New(color.FgBlue, color.Bold)
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed, color.Bold)
	okColor     = color.New(color.FgGreen, color.Bold)
)

// menu runs the interactive loop over a line reader.
type menu struct {
	*app
	in  *bufio.Scanner
	out io.Writer
}

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive prompt for listing permutations or automorphisms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Color {
				for _, c := range []*color.Color{titleColor, promptColor, errorColor, okColor} {
					c.DisableColor()
				}
			}
			m := &menu{
				app: a,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return m.run(cmd)
		},
	}
}

// readLine returns the next input line with all spaces removed.  ok is false once input is exhausted.
func (m *menu) readLine() (line string, ok bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.ReplaceAll(strings.TrimSpace(m.in.Text()), " ", ""), true
}

func (m *menu) printError(format string, args ...interface{}) {
	errorColor.Fprintf(m.out, "ERROR: "+format+"\n", args...)
}

// selectKind prompts until A, B, or Exit is given.  ok is false on Exit or end of input.
func (m *menu) selectKind() (kind go7x3.OutputKind, ok bool) {
	for {
		fmt.Fprintln(m.out)
		promptColor.Fprintln(m.out, "Select what you would like to output:")
		fmt.Fprintf(m.out, "A) Permutations of a Fano plane collection (%s)\n", m.cfg.Symbols)
		fmt.Fprintln(m.out, "B) Automorphisms of the Fano plane")
		fmt.Fprintln(m.out, "Exit) Stop and exit the program.")
		promptColor.Fprint(m.out, "Your choice: ")

		input, more := m.readLine()
		if !more {
			fmt.Fprintln(m.out)
			return 0, false
		}

		switch strings.ToUpper(input) {
		case "":
			m.printError("You must provide a selection! Try again...")
		case "EXIT":
			fmt.Fprintln(m.out, "Goodbye!")
			return 0, false
		case "A":
			return go7x3.Permutations, true
		case "B":
			return go7x3.Automorphisms, true
		default:
			m.printError("Sorry, %s is not a valid selection. Try again...", input)
		}
	}
}

// readSymbols prompts until a comma delimited symbol list is given.  An empty answer keeps the configured symbols.
// ok is false at end of input.
func (m *menu) readSymbols() (origin go7x3.Ordering, ok bool) {
	for {
		promptColor.Fprintf(m.out, "Symbols to permute, comma delimited (Enter for %s): ", m.cfg.Symbols)
		if !m.in.Scan() {
			fmt.Fprintln(m.out)
			return nil, false
		}

		input := strings.TrimSpace(m.in.Text())
		if input == "" {
			input = m.cfg.Symbols
		}

		origin, err := lib7x3.ParseSymbolList(input)
		if err == nil {
			return origin, true
		}
		if !errors.Is(err, go7x3.ErrMalformedInput) {
			m.printError("%v", err)
			return nil, false
		}
		m.printError("%v. Try again...", err)
	}
}

// confirmSave prompts until Y or N is given.
func (m *menu) confirmSave() bool {
	for {
		fmt.Fprintln(m.out)
		promptColor.Fprint(m.out, "Would you like to write the previous output to a file? (Y or N) ")

		input, more := m.readLine()
		if !more {
			fmt.Fprintln(m.out)
			return false
		}

		switch strings.ToUpper(input) {
		case "":
			m.printError("You must provide a selection! Try again...")
		case "Y":
			return true
		case "N":
			return false
		default:
			m.printError("Sorry, %s is not a valid selection. Try again...", input)
		}
	}
}

func (m *menu) run(cmd *cobra.Command) error {
	titleColor.Fprintln(m.out, lib7x3.ProgramName)

	for {
		kind, ok := m.selectKind()
		if !ok {
			return nil
		}

		var origin go7x3.Ordering
		if kind == go7x3.Permutations {
			if origin, ok = m.readSymbols(); !ok {
				return nil
			}
		}

		rows, err := m.listing(cmd, kind, origin)
		if err != nil {
			m.printError("%v", err)
			continue
		}

		for _, row := range rows {
			fmt.Fprintln(m.out, row)
		}
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, lib7x3.ListingFooter(kind, len(rows)))

		if m.confirmSave() {
			if err := lib7x3.SaveListing(m.cfg.Output, kind, rows, m.now()); err != nil {
				m.printError("%v", err)
				continue
			}
			okColor.Fprintf(m.out, "SUCCESS! Output saved to %q\n", m.cfg.Output)
		}
	}
}

// listing returns the rows for the given kind over origin, or over the configured symbols if origin is nil.
func (m *menu) listing(cmd *cobra.Command, kind go7x3.OutputKind, origin go7x3.Ordering) ([]string, error) {
	var err error
	if origin == nil {
		if origin, err = m.origin(""); err != nil {
			return nil, err
		}
	}

	if kind == go7x3.Permutations {
		perms := lib7x3.EnumPermutations(cmd.Context(), origin).Collect()
		return lib7x3.FormatRows(perms, go7x3.PrintOpts{}), nil
	}

	fano, err := lib7x3.NewFanoPlane(origin)
	if err != nil {
		return nil, err
	}
	autos, err := lib7x3.FindAutomorphisms(cmd.Context(), origin, fano)
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(autos))
	for i, auto := range autos {
		rows[i] = auto.Cycles
	}
	return rows, nil
}
