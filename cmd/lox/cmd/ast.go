package cmd

import (
	"fmt"

	"github.com/loxlang/glox/internal/errors"
	"github.com/loxlang/glox/internal/lexer"
	"github.com/loxlang/glox/internal/parser"
	"github.com/loxlang/glox/pkg/printer"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed AST for a Lox file or expression",
	Long: `Parse a Lox program and print its AST in parenthesized prefix form,
per statement, without resolving or running it.

Examples:
  lox ast script.lox
  lox ast -e "1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: printAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func printAST(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	tokens, lexErrs := l.ScanTokens()
	if len(lexErrs) > 0 {
		out := make([]*errors.LoxError, len(lexErrs))
		for i, e := range lexErrs {
			le := errors.New(errors.ScanError, e.Pos, e.Message)
			le.Source = input
			le.File = filename
			out[i] = le
		}
		fmt.Println(errors.Report(out, !noColor))
		return fmt.Errorf("scanning failed with %d error(s)", len(out))
	}

	p := parser.New(tokens, input, filename)
	program := p.ParseProgram()
	if perrs := p.Errors(); len(perrs) > 0 {
		fmt.Println(errors.Report(perrs, !noColor))
		return fmt.Errorf("parsing failed with %d error(s)", len(perrs))
	}

	fmt.Println(printer.Print(program))
	return nil
}
