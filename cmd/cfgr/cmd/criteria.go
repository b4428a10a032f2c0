package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// criteriaFlags collects the shopper criteria shared by recommend and score.
type criteriaFlags struct {
	usage       string
	budgetMin   int64
	budgetMax   int64
	brand       string
	portability string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.usage, "usage", "", "usage category (gaming, work, creation, student, multimedia)")
	cmd.Flags().Int64Var(&f.budgetMin, "min", 0, "minimum budget")
	cmd.Flags().Int64Var(&f.budgetMax, "max", 0, "maximum budget")
	cmd.Flags().StringVar(&f.brand, "brand", "", `preferred brand ("any" for no preference)`)
	cmd.Flags().StringVar(&f.portability, "portability", "",
		"preferred weight band (very_portable, portable, desktop_replacement)")
	_ = cmd.MarkFlagRequired("usage")
	_ = cmd.MarkFlagRequired("max")
}

func (f *criteriaFlags) criteria() domain.Criteria {
	return domain.Criteria{
		Usage:                 domain.Usage(f.usage),
		Budget:                domain.Budget{Min: f.budgetMin, Max: f.budgetMax},
		BrandPreference:       f.brand,
		PortabilityPreference: domain.Portability(f.portability),
	}
}
