package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "macropass",
	Short: "Pass-I tools for a two-pass macro processor and assembler.",
	Long: `Pass-I tools for systems-programming coursework: build the macro tables
and intermediate stream for a two-pass macro processor, or the symbol and
literal tables for a two-pass assembler.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"increase logging verbosity")
}

// getFlag gets an expected bool flag, or exits if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getString gets an expected string flag, or exits if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging raises the log level when the verbose flag is set
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// sourceArg returns the source file path: the positional argument when one
// was given, otherwise a path read interactively. When stdin is not a
// terminal there is nobody to ask and the command fails instead.
func sourceArg(args []string) string {
	if len(args) >= 1 {
		return args[0]
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr,
			"no source file given and stdin is not a terminal")
		os.Exit(2)
	}

	fmt.Print("Enter source filename: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		fmt.Fprintln(os.Stderr, "no source file given")
		os.Exit(2)
	}

	return line
}
