package cli

import (
	"github.com/spf13/cobra"
)

func newRestaurantCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "restaurant",
		Short: "Show the restaurant details.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := apiFor(deps, flags)
			if err != nil {
				return err
			}
			format, _ := ParseFormat(flags.Format)

			r, err := api.Restaurant(cmd.Context())
			if err != nil {
				return err
			}

			if format != FormatTable {
				return renderPayload(cmd.OutOrStdout(), r, format)
			}
			return renderTable(cmd.OutOrStdout(), nil, [][]string{
				{"Name", r.Name},
				{"Type", "Restaurant " + r.Type},
				{"Today", r.Today},
				{"Hours", r.Hours},
				{"Address", r.Address},
				{"Website", r.Website},
				{"Phone", r.Phone},
				{"Dine-in", yesNo(r.DineIn)},
				{"Take-away", yesNo(r.TakeAway)},
			})
		},
	}
}
