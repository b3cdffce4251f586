// Command atndump drives AdaptivePredict against one of the engine's
// built-in demo grammars and prints the resulting DFA as Graphviz dot,
// along with whatever ambiguity or context-sensitivity diagnostics the
// run produced.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	antlr "github.com/go-antlr/adaptivell"
	"github.com/go-antlr/adaptivell/internal/diag"
)

var (
	tokensFlag  string
	verboseFlag bool
)

func main() {
	root := &cobra.Command{
		Use:   "atndump",
		Short: "Run AdaptivePredict against a demo ATN and dump its DFA",
		RunE:  run,
	}
	root.Flags().StringVar(&tokensFlag, "tokens", "", "comma-separated token type sequence, e.g. 1,2")
	root.Flags().BoolVar(&verboseFlag, "verbose", false, "enable info-level logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	atn, decision, idType, semiType := antlr.BuildAmbiguousIDDemo()

	tokens, err := parseTokens(tokensFlag, idType, semiType)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		tokens = []antlr.Token{&antlr.CommonToken{Type: idType}}
	}

	decisionToDFA := make([]*antlr.DFA, atn.GetNumberOfDecisions())
	for i, ds := range atn.DecisionToState {
		decisionToDFA[i] = antlr.NewDFA(ds, i)
	}
	cache := antlr.NewPredictionContextCache()

	level := zerolog.InfoLevel
	if !verboseFlag {
		level = zerolog.WarnLevel
	}
	logger := diag.New(zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger())

	sim := antlr.NewParserATNSimulator(atn, decisionToDFA, cache, nil, antlr.WithLogger(logger))

	stream := antlr.NewBufferedTokenStream(tokens, "demo")
	alt, err := sim.AdaptivePredict(stream, decision, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prediction failed: %v\n", err)
	} else {
		fmt.Printf("predicted alt: %d\n", alt)
	}

	fmt.Println(decisionToDFA[decision].ToDotString())
	return nil
}

func parseTokens(s string, idType, semiType int) ([]antlr.Token, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tokens := make([]antlr.Token, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		var tokType int
		switch strings.ToUpper(p) {
		case "ID":
			tokType = idType
		case "SEMI", ";":
			tokType = semiType
		default:
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("invalid token %q: %w", p, err)
			}
			tokType = n
		}
		tokens = append(tokens, &antlr.CommonToken{Type: tokType, TokenIndex: i})
	}
	return tokens, nil
}
