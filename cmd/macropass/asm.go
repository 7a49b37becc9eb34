package main

import (
	"fmt"
	"os"

	"github.com/nickwells/macropass.mod/asmpass"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm [flags] [source_file]",
	Short: "build the assembler's symbol and literal tables.",
	Long: `Run Pass-I of the assembler over the source file: maintain the location
counter, build the symbol table (recording forward references), the
literal table and the pool table, and write them with the intermediate
file for Pass-II.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		src := sourceArg(args)

		a := asmpass.New()

		if err := a.ProcessFile(src); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log.Debugf("assembled %q: %d symbols, %d literals",
			src, len(a.Symbols()), len(a.Literals()))

		outDir := getString(cmd, "output-dir")

		if err := a.WriteArtifacts(outDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log.Debugf("artifacts written to %q", outDir)

		if err := a.Print(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().StringP("output-dir", "o", "asm_out",
		"directory for the intermediate, symbol and literal table files")
}
