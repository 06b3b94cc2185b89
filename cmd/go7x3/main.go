package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/plan-systems/klog"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(verbosity int, useColor bool) {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          useColor,
	})
}
