package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/2x3systems/go7x3/lib7x3"
	"github.com/2x3systems/go7x3/lib7x3/catalog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// persistOpts says where a listing goes once it has been printed.
type persistOpts struct {
	SavePath   string
	CatalogDir string
}

func (a *app) persist(out io.Writer, kind go7x3.OutputKind, origin go7x3.Ordering, perms []go7x3.Ordering, rows []string, opts persistOpts) error {
	if opts.SavePath != "" {
		if err := lib7x3.SaveListing(opts.SavePath, kind, rows, a.now()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Listing written to %s\n", opts.SavePath)
	}

	if opts.CatalogDir != "" {
		added, err := a.storePerms(opts.CatalogDir, origin, kind, perms)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Catalog %s: %d new %v\n", opts.CatalogDir, added, kind)
	}
	return nil
}

func (a *app) permsCmd() *cobra.Command {
	var (
		symbols string
		unique  bool
		persist persistOpts
	)

	cmd := &cobra.Command{
		Use:   "perms",
		Short: "List every permutation of a symbol list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := a.origin(symbols)
			if err != nil {
				return err
			}
			if persist.CatalogDir == "" {
				persist.CatalogDir = a.cfg.Catalog
			}

			out := cmd.OutOrStdout()
			stream := lib7x3.EnumPermutations(cmd.Context(), origin)
			if unique {
				stream = stream.DropDupes()
			}
			perms := stream.Print(nopCloser{out}, go7x3.PrintOpts{}).Collect()

			fmt.Fprintln(out)
			fmt.Fprintln(out, lib7x3.ListingFooter(go7x3.Permutations, len(perms)))

			rows := lib7x3.FormatRows(perms, go7x3.PrintOpts{})
			return a.persist(out, go7x3.Permutations, origin, perms, rows, persist)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&symbols, "symbols", "s", "", `comma separated symbols to permute, e.g. "a,b,c" (default from config)`)
	flags.BoolVarP(&unique, "unique", "u", false, "drop permutations that repeat an earlier one")
	flags.StringVar(&persist.SavePath, "save", "", "write the listing to this file")
	flags.StringVar(&persist.CatalogDir, "catalog", "", "add the permutations to the catalog in this dir")
	return cmd
}

func (a *app) autosCmd() *cobra.Command {
	var persist persistOpts

	cmd := &cobra.Command{
		Use:   "autos",
		Short: "List the automorphisms of the Fano plane in cycle notation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := a.origin("")
			if err != nil {
				return err
			}
			fano, err := lib7x3.NewFanoPlane(origin)
			if err != nil {
				return err
			}
			if persist.CatalogDir == "" {
				persist.CatalogDir = a.cfg.Catalog
			}

			autos, err := lib7x3.FindAutomorphisms(cmd.Context(), origin, fano)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([]string, len(autos))
			perms := make([]go7x3.Ordering, len(autos))
			for i, auto := range autos {
				rows[i] = auto.Cycles
				perms[i] = auto.Perm
				fmt.Fprintln(out, auto.Cycles)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, lib7x3.ListingFooter(go7x3.Automorphisms, len(autos)))

			return a.persist(out, go7x3.Automorphisms, origin, perms, rows, persist)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&persist.SavePath, "save", "", "write the listing to this file")
	flags.StringVar(&persist.CatalogDir, "catalog", "", "add the automorphisms to the catalog in this dir")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check EXPR",
		Short: `Test whether a permutation in cycle notation, e.g. "(1 2)(3 4)", is a Fano plane automorphism`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := a.origin("")
			if err != nil {
				return err
			}
			fano, err := lib7x3.NewFanoPlane(origin)
			if err != nil {
				return err
			}

			perm, err := lib7x3.ParseCycleNotation(origin, args[0])
			if err != nil {
				return err
			}
			cycles, err := lib7x3.ToCycleNotation(origin, perm)
			if err != nil {
				return err
			}
			cycleList, err := lib7x3.Cycles(origin, perm)
			if err != nil {
				return err
			}
			isAuto, err := lib7x3.IsAutomorphism(perm, origin, fano)
			if err != nil {
				return err
			}

			// order of a permutation is the lcm of its cycle lengths
			order := 1
			for _, cycle := range cycleList {
				x, y := order, len(cycle)
				for y != 0 {
					x, y = y, x%y
				}
				order = order / x * len(cycle)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Permutation:  %v\n", perm)
			fmt.Fprintf(out, "Cycles:       %s\n", cycles)
			fmt.Fprintf(out, "Order:        %d\n", order)
			fmt.Fprintf(out, "Automorphism: %v\n", isAuto)
			return nil
		},
	}
}

func (a *app) linesCmd() *cobra.Command {
	var custom string

	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Print the lines of the Fano plane over the configured symbols, or check a given set of lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := a.origin("")
			if err != nil {
				return err
			}

			var structure *lib7x3.FanoPlane
			if custom == "" {
				structure, err = lib7x3.NewFanoPlane(origin)
			} else {
				var lines []go7x3.Line
				if lines, err = parseLines(custom); err == nil {
					structure = lib7x3.NewStructure(origin, lines)
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range structure.Lines() {
				fmt.Fprintln(out, line)
			}
			if err := structure.Validate(); err != nil {
				fmt.Fprintf(out, "Axioms: %v\n", err)
				return err
			}
			fmt.Fprintln(out, "Axioms: ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&custom, "check", "", `comma separated lines to check instead, e.g. "1 2 3, 1 4 5, ..."`)
	return cmd
}

// parseLines reads comma separated groups of 3 whitespace separated symbols.
func parseLines(str string) ([]go7x3.Line, error) {
	var lines []go7x3.Line
	for _, group := range strings.Split(str, ",") {
		syms := strings.Fields(group)
		if len(syms) != go7x3.LineSize {
			return nil, errors.Wrapf(go7x3.ErrMalformedInput, "line %q does not hold %d symbols", strings.TrimSpace(group), go7x3.LineSize)
		}
		lines = append(lines, go7x3.Line{syms[0], syms[1], syms[2]})
	}
	return lines, nil
}

func (a *app) exportCmd() *cobra.Command {
	var (
		catalogDir string
		kindName   string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a listing from a stored catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogDir == "" {
				catalogDir = a.cfg.Catalog
			}
			if catalogDir == "" {
				return errors.Wrap(go7x3.ErrBadCatalogParam, "no catalog given (use --catalog)")
			}
			kind, err := go7x3.ParseOutputKind(kindName)
			if err != nil {
				return errors.Wrapf(err, "--kind %q", kindName)
			}

			return a.withCatalog(go7x3.CatalogOpts{
				DbPathName: catalogDir,
				ReadOnly:   true,
			}, func(cat go7x3.Catalog) error {
				if outPath == "" {
					return catalog.ExportListing(cat, kind, cmd.OutOrStdout(), a.now())
				}

				file, err := os.Create(outPath)
				if err != nil {
					return errors.Wrapf(err, "creating %q", outPath)
				}
				err = catalog.ExportListing(cat, kind, file, a.now())
				if closeErr := file.Close(); err == nil {
					err = closeErr
				}
				return err
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&catalogDir, "catalog", "", "catalog dir (default from config)")
	flags.StringVar(&kindName, "kind", "autos", `"perms" or "autos"`)
	flags.StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
