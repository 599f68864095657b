package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] expression",
		Short: "Show the tokens of an expression",
		Long: `Tokenize normalizes an expression and prints its tokens in source order, or
in evaluation order with --postfix.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("postfix", false, "print tokens in postfix order")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	postfix, _ := cmd.Flags().GetBool("postfix")

	toks := calc.Tokenize(calc.Normalize(args[0]))
	if postfix {
		for _, tok := range toks {
			if tok.Kind == calc.TokenInvalid {
				return fmt.Errorf("cannot order tokens: %w", &calc.Error{Kind: calc.InvalidCharacters, Col: tok.Pos, Text: tok.Text})
			}
		}
		toks = calc.Postfix(toks)
	}

	switch format {
	case "pretty":
		return formatTokensPretty(cmd.OutOrStdout(), toks)
	case "json":
		return formatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatTokensPretty(w io.Writer, toks []calc.Token) error {
	for _, tok := range toks {
		var err error
		if tok.Kind == calc.TokenNumber {
			text := runewidth.FillRight(tok.Text, 12)
			_, err = fmt.Fprintf(w, "%4d  %-8s %s %s\n", tok.Pos, tok.Kind, text, formatNum(tok.Value))
		} else {
			_, err = fmt.Fprintf(w, "%4d  %-8s %s\n", tok.Pos, tok.Kind, tok.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Value string `json:"value,omitempty"`
	Pos   int    `json:"pos"`
}

// formatTokensJSON writes tokens as a JSON array. Values are strings because
// JSON has no infinities.
func formatTokensJSON(w io.Writer, toks []calc.Token) error {
	out := make([]tokenJSON, len(toks))
	for i, tok := range toks {
		out[i] = tokenJSON{Kind: tok.Kind.String(), Text: tok.Text, Pos: tok.Pos}
		if tok.Kind == calc.TokenNumber {
			out[i].Value = formatNum(tok.Value)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
