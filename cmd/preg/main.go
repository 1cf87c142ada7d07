// Command preg exposes the facade's match, grep, replace, and split
// operations on the command line. Subjects come from trailing
// arguments, or from stdin lines when no subject argument is given.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/preg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "preg",
		Short:         "PCRE-style matching, filtering, and rewriting of text",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMatchCmd())
	root.AddCommand(newGrepCmd())
	root.AddCommand(newReplaceCmd())
	root.AddCommand(newSplitCmd())
	return root
}

// readSubjects returns the trailing arguments, or stdin split into
// lines when there are none.
func readSubjects(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var subjects []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		subjects = append(subjects, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return subjects, nil
}

func newMatchCmd() *cobra.Command {
	var all bool
	var groups bool

	cmd := &cobra.Command{
		Use:   "match <pattern> [subject...]",
		Short: "Print the matched text of each subject",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			subjects, err := readSubjects(cmd, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range subjects {
				results, err := matchResults(pattern, s, all)
				if err != nil {
					return err
				}
				for _, m := range results {
					if groups {
						for i, g := range m.Groups() {
							fmt.Fprintf(out, "%d:%s\n", i, g)
						}
					} else {
						fmt.Fprintln(out, m.Group(0))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match, not just the first")
	cmd.Flags().BoolVarP(&groups, "groups", "g", false, "print capture groups as index:text lines")
	return cmd
}

func matchResults(pattern, subject string, all bool) ([]*preg.MatchResult, error) {
	if all {
		return preg.MatchAll(pattern, subject, 0)
	}
	m, err := preg.Match(pattern, subject, 0)
	if err != nil || m == nil {
		return nil, err
	}
	return []*preg.MatchResult{m}, nil
}

func newGrepCmd() *cobra.Command {
	var invert bool

	cmd := &cobra.Command{
		Use:   "grep <pattern> [subject...]",
		Short: "Print the subjects that match the pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := readSubjects(cmd, args[1:])
			if err != nil {
				return err
			}
			var kept []string
			if invert {
				kept, err = preg.GrepInverted(args[0], subjects)
			} else {
				kept, err = preg.Grep(args[0], subjects)
			}
			if err != nil {
				return err
			}
			for _, s := range kept {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&invert, "invert", "v", false, "print non-matching subjects instead")
	return cmd
}

func newReplaceCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "replace <pattern> <template> [subject...]",
		Short: "Rewrite each subject, expanding $1-style backreferences",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := readSubjects(cmd, args[2:])
			if err != nil {
				return err
			}
			out, err := preg.ReplaceSlice([]string{args[0]}, subjects, preg.Template(args[1]), limit)
			if err != nil {
				return err
			}
			for _, s := range out {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", -1, "maximum replacements per subject (-1 for unbounded)")
	return cmd
}

func newSplitCmd() *cobra.Command {
	var limit int
	var noEmpty bool
	var inclusive bool

	cmd := &cobra.Command{
		Use:   "split <pattern> <subject>",
		Short: "Print the segments of the subject, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var segs []string
			var err error
			switch {
			case inclusive:
				segs, err = preg.SplitInclusive(args[0], args[1], limit)
			case noEmpty:
				segs, err = preg.SplitFiltered(args[0], args[1], limit)
			default:
				segs, err = preg.Split(args[0], args[1], limit)
			}
			if err != nil {
				return err
			}
			for _, s := range segs {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", -1, "maximum segments (-1 for unbounded)")
	cmd.Flags().BoolVar(&noEmpty, "no-empty", false, "omit empty segments")
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "interleave the matched delimiters")
	return cmd
}
