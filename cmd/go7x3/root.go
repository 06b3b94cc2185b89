package main

import (
	"time"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/2x3systems/go7x3/lib7x3"
	"github.com/2x3systems/go7x3/lib7x3/catalog"
	"github.com/spf13/cobra"
)

// app holds the state shared by the go7x3 commands for a single invocation.
type app struct {
	configPath string
	verbosity  int
	cfg        Config
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg: DefaultConfig(),
		now: time.Now,
	}

	root := &cobra.Command{
		Use:   "go7x3",
		Short: "Fano plane automorphism finder",
		Long: "go7x3 enumerates permutations of a symbol list and finds the 168 automorphisms of the Fano plane,\n" +
			"listing them in disjoint cycle notation.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.IntVarP(&a.verbosity, "verbosity", "v", 0, "log verbosity level (overrides config)")

	root.AddCommand(
		a.permsCmd(),
		a.autosCmd(),
		a.checkCmd(),
		a.linesCmd(),
		a.menuCmd(),
		a.exportCmd(),
		a.pyCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbosity") {
		cfg.Verbosity = a.verbosity
	}
	a.cfg = cfg

	setupLogging(cfg.Verbosity, cfg.Color)
	return nil
}

// origin returns the symbols given by flag, otherwise those from the config.
func (a *app) origin(symbols string) (go7x3.Ordering, error) {
	if symbols == "" {
		symbols = a.cfg.Symbols
	}
	return lib7x3.ParseSymbolList(symbols)
}

// withCatalog opens a catalog, calls fn, then closes the catalog.
func (a *app) withCatalog(opts go7x3.CatalogOpts, fn func(cat go7x3.Catalog) error) error {
	ctx := go7x3.NewCatalogContext()
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	cat, err := catalog.OpenCatalog(ctx, opts)
	if err != nil {
		return err
	}

	err = fn(cat)
	if closeErr := cat.Close(); err == nil {
		err = closeErr
	}
	return err
}

// storePerms adds each given permutation to the catalog at dir, returning how many were new.
func (a *app) storePerms(dir string, origin go7x3.Ordering, kind go7x3.OutputKind, perms []go7x3.Ordering) (int, error) {
	added := 0
	err := a.withCatalog(go7x3.CatalogOpts{
		DbPathName: dir,
		Origin:     origin,
	}, func(cat go7x3.Catalog) error {
		adder := catalog.NewAdder(cat, kind)
		for _, X := range perms {
			if adder.TryAddPerm(X) {
				added++
			}
		}
		return nil
	})
	return added, err
}
