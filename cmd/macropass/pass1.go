package main

import (
	"fmt"
	"os"

	"github.com/nickwells/macropass.mod/macro"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var pass1Cmd = &cobra.Command{
	Use:   "pass1 [flags] [source_file]",
	Short: "build the macro tables and intermediate stream.",
	Long: `Run Pass-I of the macro processor over the source file: record every
MACRO...MEND definition in the macro-name and macro-definition tables,
rewrite formal parameters as positional placeholders and write the
intermediate stream (the source with the definitions removed) alongside
the tables for Pass-II. If the run fails nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		src := sourceArg(args)

		var opts []macro.OptFunc
		if getFlag(cmd, "strict") {
			opts = append(opts, macro.StrictParams())
		}

		p, err := macro.New(opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := p.ProcessFile(src); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log.Debugf("processed %q: %d macros, %d MDT entries",
			src, p.NameTable().Len(), len(p.MDT()))

		outDir := getString(cmd, "output-dir")

		if err := p.WriteArtifacts(outDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log.Debugf("artifacts written to %q", outDir)

		if err := p.Print(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pass1Cmd)
	pass1Cmd.Flags().StringP("output-dir", "o", "pass1_out",
		"directory for the intermediate, MNT, MDT and ALA files")
	pass1Cmd.Flags().Bool("strict", false,
		"fail on parameter-shaped tokens the macro header never declared")
}
