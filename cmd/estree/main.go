// Command estree parses JavaScript and prints the ESTree JSON or the token
// stream.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flags struct {
	config     string
	ecma       int
	module     bool
	locations  bool
	ranges     bool
	sourceFile string
	verbose    bool
}

func rootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "estree",
		Short:         "parse JavaScript into an ESTree syntax tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "YAML file with parser options")
	pf.IntVar(&f.ecma, "ecma", 0, "ECMAScript version (edition or year, 0 for latest)")
	pf.BoolVarP(&f.module, "module", "m", false, "parse as an ES module")
	pf.BoolVar(&f.locations, "locations", false, "attach line/column locations")
	pf.BoolVar(&f.ranges, "ranges", false, "attach [start, end] ranges")
	pf.StringVar(&f.sourceFile, "source-file", "", "source name recorded in locations")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(parseCmd(f), tokensCmd(f), exprCmd(f))
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		logger, _ := newLogger(false)
		logger.Error("estree failed", zap.Error(err))
		os.Exit(1)
	}
}
