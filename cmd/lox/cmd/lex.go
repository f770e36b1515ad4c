package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/glox/internal/lexer"
	"github.com/spf13/cobra"
)

var onlyErrors bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file or expression",
	Long: `Tokenize (lex) a Lox program and print the resulting tokens.

This command is useful for debugging the scanner and understanding how Lox
source code is broken into tokens.

Examples:
  # Tokenize a script file
  lox lex script.lox

  # Tokenize an inline expression
  lox lex -e "1 + 2 * 3;"

  # Show token positions
  lox lex --show-pos script.lox

  # Show only illegal tokens
  lox lex --only-errors script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

var showPos bool

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	tokens, lexErrs := l.ScanTokens()

	if !onlyErrors {
		for _, tok := range tokens {
			printToken(tok)
		}
	}

	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.Pos, e.Message)
		}
		return fmt.Errorf("found %d illegal token(s)", len(lexErrs))
	}

	return nil
}

func printToken(tok lexer.Token) {
	output := tok.String()
	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}
