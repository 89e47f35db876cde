package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/padezh/padezh"
)

// Version is set at build time.
var Version = "dev"

// app carries state shared by the subcommands.
type app struct {
	dataDir string
	verbose bool
	in      *padezh.Inflector
}

// inflector loads the data on first use.
func (a *app) inflector(cmd *cobra.Command) (*padezh.Inflector, error) {
	if a.in != nil {
		return a.in, nil
	}
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := []padezh.Option{padezh.WithLogger(log)}
	if a.dataDir != "" {
		opts = append(opts, padezh.WithFS(os.DirFS(a.dataDir)))
	}
	in, err := padezh.New(opts...)
	if err != nil {
		return nil, err
	}
	a.in = in
	return in, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "padezh",
		Short: "Decline Russian words, names, phrases and numerals",
		Long: `padezh puts Russian words, personal names, job titles, organization
names and numerals into any of the six grammatical cases, and spells
numbers as words.

Cases may be given in English or Russian: genitive, gen, родительный, род.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory with replacement data files")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newInflectCmd(a),
		newPhraseCmd(a),
		newNameCmd(a),
		newNumeralCmd(a),
		newSpellCmd(),
		newOrdinalCmd(),
		newParadigmCmd(a),
	)
	return root
}
