package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solventworks/hansen/internal/application/estimate"
)

// EstimateOptions holds flags for the estimate command.
type EstimateOptions struct {
	SMILES          string
	MolecularWeight float64
	Name            string
	EnglishName     string
	Method          string
}

// NewEstimateCmd creates the "hansen estimate" command.
func NewEstimateCmd() *cobra.Command {
	opts := &EstimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate Hansen solubility parameters for a molecule",
		Long:  "Estimate δD, δP and δH for a molecule given its SMILES structure and\nmolecular weight.  Without --method the engine picks the best method by\npolicy, preferring experimental reference data when the name is known.",
		Example: `  hansen estimate --smiles CCO --mw 46.07 --name ethanol
  hansen estimate --smiles "CC(=O)O" --mw 60.05 --method van_krevelen -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.SMILES, "smiles", "", "SMILES connectivity string")
	f.Float64Var(&opts.MolecularWeight, "mw", 0, "molecular weight in g/mol (required)")
	f.StringVar(&opts.Name, "name", "", "substance name for reference lookup")
	f.StringVar(&opts.EnglishName, "english-name", "", "alternate English name for reference lookup")
	f.StringVar(&opts.Method, "method", "", "force a specific method (van_krevelen, stefanis, eos, marcus, manual, experimental)")
	_ = cmd.MarkFlagRequired("mw")

	return cmd
}

func runEstimate(cmd *cobra.Command, opts *EstimateOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	out, err := cliCtx.Service.Estimate(cmd.Context(), &estimate.EstimateInput{
		Connectivity:    opts.SMILES,
		MolecularWeight: opts.MolecularWeight,
		Name:            opts.Name,
		EnglishName:     opts.EnglishName,
		Method:          opts.Method,
	})
	if err != nil {
		return err
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, out)
	}
	return printText(cmd, formatEstimate(out))
}

// formatEstimate renders an estimate as aligned text with the fragment
// breakdown underneath.
func formatEstimate(out *estimate.EstimateOutput) string {
	r := out.Result

	var sb strings.Builder
	fmt.Fprintf(&sb, "method:        %s\n", r.Method)
	fmt.Fprintf(&sb, "deltaD:        %8.2f MPa^0.5\n", r.DeltaD)
	fmt.Fprintf(&sb, "deltaP:        %8.2f MPa^0.5\n", r.DeltaP)
	fmt.Fprintf(&sb, "deltaH:        %8.2f MPa^0.5\n", r.DeltaH)
	fmt.Fprintf(&sb, "deltaT:        %8.2f MPa^0.5\n", r.DeltaT)
	fmt.Fprintf(&sb, "molar volume:  %8.1f cm3/mol\n", r.MolarVolume)

	if len(out.Fragments) > 0 {
		sb.WriteString("fragments:\n")
		for _, f := range out.Fragments {
			fmt.Fprintf(&sb, "  %dx %s\n", f.Count, f.Group)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
