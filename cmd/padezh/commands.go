package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/padezh/padezh"
)

// caseFlag registers the required --case flag.
func caseFlag(cmd *cobra.Command, s *string) {
	cmd.Flags().StringVarP(s, "case", "c", "", "grammatical case (required)")
	_ = cmd.MarkFlagRequired("case")
	_ = cmd.RegisterFlagCompletionFunc("case", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, padezh.CaseCount)
		for c := padezh.Nominative; c < padezh.CaseCount; c++ {
			out = append(out, c.String())
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func writeLine(cmd *cobra.Command, s string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
}

func newInflectCmd(a *app) *cobra.Command {
	var caseName, typeName, gender, animate, plural string
	cmd := &cobra.Command{
		Use:   "inflect WORD",
		Short: "Decline a single word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := padezh.ParseCase(caseName)
			if err != nil {
				return err
			}
			wt, err := padezh.ParseWordType(typeName)
			if err != nil {
				return err
			}
			var attrs padezh.Attrs
			if attrs.Gender, err = padezh.ParseGender(gender); err != nil {
				return err
			}
			if attrs.Animate, err = padezh.ParseTernary(animate); err != nil {
				return err
			}
			if attrs.Plural, err = padezh.ParseTernary(plural); err != nil {
				return err
			}
			in, err := a.inflector(cmd)
			if err != nil {
				return err
			}
			out, err := in.Inflect(args[0], wt, c, attrs)
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
	caseFlag(cmd, &caseName)
	cmd.Flags().StringVarP(&typeName, "type", "t", "generic", "word type: generic, first_name, patronymic_name, family_name, numeral")
	cmd.Flags().StringVarP(&gender, "gender", "g", "", "gender: m, f or n")
	cmd.Flags().StringVar(&animate, "animate", "", "animacy: yes or no")
	cmd.Flags().StringVar(&plural, "plural", "", "number: yes for plural")
	return cmd
}

func newPhraseCmd(a *app) *cobra.Command {
	var caseName, kind string
	cmd := &cobra.Command{
		Use:   "phrase TEXT...",
		Short: "Decline a phrase: a job title, an organization or any term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := padezh.ParseCase(caseName)
			if err != nil {
				return err
			}
			in, err := a.inflector(cmd)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			var out string
			switch kind {
			case "any":
				out, err = in.InflectAny(text, c)
			case "profession":
				out, err = in.InflectNameOfProfession(text, c)
			case "organization":
				out, err = in.InflectNameOfOrganization(text, c)
			case "term":
				out, err = in.InflectRegularTerm(text, c, padezh.Unset)
			default:
				return fmt.Errorf("unknown phrase kind %q", kind)
			}
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
	caseFlag(cmd, &caseName)
	cmd.Flags().StringVarP(&kind, "kind", "k", "any", "phrase kind: any, profession, organization, term")
	return cmd
}

func newNameCmd(a *app) *cobra.Command {
	var caseName, part, gender string
	cmd := &cobra.Command{
		Use:   "name NAME...",
		Short: "Decline a personal name",
		Long: `Decline a personal name. By default the arguments are read as
"Surname Firstname Patronymic"; --part selects a single name part.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := padezh.ParseCase(caseName)
			if err != nil {
				return err
			}
			g, err := padezh.ParseGender(gender)
			if err != nil {
				return err
			}
			in, err := a.inflector(cmd)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			var out string
			switch part {
			case "full":
				out, err = in.InflectFullname(name, c)
			case "first":
				out, err = in.InflectFirstname(name, c, g)
			case "patronymic":
				out, err = in.InflectPatronymic(name, c, g)
			case "surname":
				out, err = in.InflectSurname(name, c, g)
			default:
				return fmt.Errorf("unknown name part %q", part)
			}
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
	caseFlag(cmd, &caseName)
	cmd.Flags().StringVarP(&part, "part", "p", "full", "name part: full, first, patronymic, surname")
	cmd.Flags().StringVarP(&gender, "gender", "g", "", "gender: m or f (inferred when empty)")
	return cmd
}

func newNumeralCmd(a *app) *cobra.Command {
	var caseName string
	cmd := &cobra.Command{
		Use:   "numeral N [UNIT...]",
		Short: "Decline a number together with the counted noun",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", padezh.ErrInvalidArgument, err)
			}
			c, err := padezh.ParseCase(caseName)
			if err != nil {
				return err
			}
			in, err := a.inflector(cmd)
			if err != nil {
				return err
			}
			out, err := in.InflectNumeral(n, strings.Join(args[1:], " "), c)
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
	caseFlag(cmd, &caseName)
	return cmd
}

func newSpellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spell NUMBER",
		Short: "Spell a decimal number as cardinal words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := padezh.ParseDecimal(args[0])
			if err != nil {
				return err
			}
			out, err := padezh.Spell(d)
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
}

func newOrdinalCmd() *cobra.Command {
	var gender string
	cmd := &cobra.Command{
		Use:   "ordinal NUMBER",
		Short: "Spell a non-negative integer as an ordinal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("%w: malformed integer %q", padezh.ErrInvalidArgument, args[0])
			}
			g, err := padezh.ParseGender(gender)
			if err != nil {
				return err
			}
			out, err := padezh.SpellOrdinal(n, g)
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&gender, "gender", "g", "m", "gender: m, f or n")
	return cmd
}

func newParadigmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paradigm TEXT...",
		Short: "Print a phrase in all six cases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.inflector(cmd)
			if err != nil {
				return err
			}
			forms, err := in.Paradigm(strings.Join(args, " "))
			if err != nil {
				return err
			}
			for c, f := range forms {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", padezh.Case(c), f)
			}
			return nil
		},
	}
}
