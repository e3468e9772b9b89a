package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solventworks/hansen/internal/application/estimate"
	"github.com/solventworks/hansen/pkg/errors"
	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// DistanceOptions holds flags for the distance command.
type DistanceOptions struct {
	A string
	B string
}

// NewDistanceCmd creates the "hansen distance" command.
func NewDistanceCmd() *cobra.Command {
	opts := &DistanceOptions{}

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Compute the Hansen distance Ra between two parameter triples",
		Long:  "Compute Ra = sqrt(4·ΔδD² + ΔδP² + ΔδH²) between two triples given as\ncomma-separated deltaD,deltaP,deltaH values.",
		Example: `  hansen distance --a 15.8,8.8,19.4 --b 15.5,10.4,7.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.A, "a", "", "first triple as deltaD,deltaP,deltaH (required)")
	f.StringVar(&opts.B, "b", "", "second triple as deltaD,deltaP,deltaH (required)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func runDistance(cmd *cobra.Command, opts *DistanceOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	a, err := parseTriple(opts.A)
	if err != nil {
		return err
	}
	b, err := parseTriple(opts.B)
	if err != nil {
		return err
	}

	out, err := cliCtx.Service.Distance(cmd.Context(), &estimate.DistanceInput{A: a, B: b})
	if err != nil {
		return err
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, out)
	}
	return printText(cmd, fmt.Sprintf("Ra = %.4f", out.Distance))
}

// parseTriple parses "deltaD,deltaP,deltaH" into a manual-tagged result.
func parseTriple(s string) (*htypes.Result, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, errors.InvalidParam("triple must be deltaD,deltaP,deltaH").
			WithDetail("value=" + s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.InvalidParam("triple component is not a number").
				WithDetail("value=" + p)
		}
		vals[i] = v
	}
	return htypes.NewResult(vals[0], vals[1], vals[2], 0, htypes.MethodManual), nil
}
