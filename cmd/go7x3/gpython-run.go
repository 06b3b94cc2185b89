package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	_ "github.com/2x3systems/go7x3/py7x3"
	_ "github.com/go-python/gpython/stdlib"
)

func (a *app) pyCmd() *cobra.Command {
	var startup string

	cmd := &cobra.Command{
		Use:   "py [SCRIPT]",
		Short: "Run a gpython script (or the REPL) with the py7x3 module available",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathname := ""
			if len(args) > 0 {
				pathname = args[0]
			}
			return runPython(cmd.OutOrStdout(), pathname, startup)
		},
	}
	cmd.Flags().StringVar(&startup, "startup", "", "script to run in the REPL module before the prompt")
	return cmd
}

// runPython executes the given script, or starts a REPL if pathname is empty.
func runPython(out io.Writer, pathname, startup string) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)
		if len(startup) > 0 {
			_, err = runFile(ctx, startup, replCtx.Module)
		}
		if err == nil {
			cli.RunREPL(replCtx)
		}

	} else {
		startTime := time.Now()
		fmt.Fprintf(out, "<<<>>>   executing '%s'   <<<>>>\n", pathname)

		_, err = runFile(ctx, pathname, nil)

		if err == nil {
			elapsed := time.Since(startTime)
			fmt.Fprintf(out, "<<<>>>   execution complete: %v   <<<>>>\n", elapsed)
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		return errors.Wrapf(err, "running %q", pathname)
	}
	return nil
}

// runFile runs the script at pathname (absolute or relative to the working dir).
//
// gpython resolves a run path against CompileOpts.CurDir and treats a leading '/' as relative, so the script is
// always run by its base name from its own dir.
func runFile(ctx py.Context, pathname string, inModule interface{}) (*py.Module, error) {
	abs, err := filepath.Abs(pathname)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %q", pathname)
	}
	return py.RunFile(ctx, filepath.Base(abs), py.CompileOpts{
		CurDir: filepath.Dir(abs),
	}, inModule)
}
