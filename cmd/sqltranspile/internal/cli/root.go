// Package cli builds the sqltranspile command tree: parse, transpile,
// and dialects. Together with the main package, which calls log, it is
// the one place in this module that reads a file or touches os.Args;
// everything else in the repository is a pure function of (dialect
// configuration, input text).
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqltranspile/sqltranspile"
	"github.com/sqltranspile/sqltranspile/dialect"
)

// NewRootCmd builds the root sqltranspile command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sqltranspile",
		Short:         "Parse and transpile SQL across vendor dialects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newTranspileCmd())
	root.AddCommand(newDialectsCmd())
	return root
}

// readInput returns the SQL to operate on: the positional argument if
// given, the --file flag's contents if set, or stdin otherwise.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newParseCmd() *cobra.Command {
	var file, dialectName string
	cmd := &cobra.Command{
		Use:   "parse [sql]",
		Short: "Parse SQL and re-emit each statement with the default formatter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			stmts, err := sqltranspile.ParseAllDialect(sql, dialectName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d statement(s)\n", len(stmts))
			for i, stmt := range stmts {
				if stmt == nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i, sqltranspile.String(stmt))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read SQL from this file instead of the positional argument")
	cmd.Flags().StringVar(&dialectName, "dialect", "", "source dialect (default built-in)")
	return cmd
}

func newTranspileCmd() *cobra.Command {
	var file, read, write string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "transpile [sql]",
		Short: "Parse SQL in one dialect and regenerate it in another",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			out, err := sqltranspile.Transpile(sql, read, write, pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, ";\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read SQL from this file instead of the positional argument")
	cmd.Flags().StringVar(&read, "read", "", "source dialect (default built-in)")
	cmd.Flags().StringVar(&write, "write", "", "target dialect (default built-in)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the generated SQL")
	return cmd
}

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialect names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := dialect.Names()
			sort.Strings(names)
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
