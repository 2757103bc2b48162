package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/tajmahal/internal/client"
)

const commentColumnWidth = 60

func newReviewsCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	reviews := &cobra.Command{
		Use:   "reviews",
		Short: "List, add and summarize reviews.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// cobra only rejects unknown subcommands at the root.
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return cmd.Help()
		},
	}
	reviews.AddCommand(newReviewsListCommand(deps, flags))
	reviews.AddCommand(newReviewsAddCommand(deps, flags))
	reviews.AddCommand(newReviewsSummaryCommand(deps, flags))
	return reviews
}

func newReviewsListCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reviews, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := apiFor(deps, flags)
			if err != nil {
				return err
			}
			format, _ := ParseFormat(flags.Format)

			list, err := api.Reviews(cmd.Context())
			if err != nil {
				return err
			}

			if format != FormatTable {
				if list == nil {
					list = []client.Review{}
				}
				return renderPayload(cmd.OutOrStdout(), list, format)
			}

			rows := make([][]string, 0, len(list))
			for _, r := range list {
				rows = append(rows, []string{stars(r.Rating), r.Author, truncate(r.Comment, commentColumnWidth)})
			}
			return renderTable(cmd.OutOrStdout(), []string{"RATING", "AUTHOR", "COMMENT"}, rows)
		},
	}
}

func newReviewsAddCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	var in client.Review

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a new review.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := apiFor(deps, flags)
			if err != nil {
				return err
			}
			format, _ := ParseFormat(flags.Format)

			created, err := api.AddReview(cmd.Context(), in)
			if err != nil {
				return err
			}

			if format != FormatTable {
				return renderPayload(cmd.OutOrStdout(), created, format)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Review added (%s) by %q\n", stars(created.Rating), created.Author)
			return err
		},
	}
	cmd.Flags().StringVar(&in.Author, "author", "", "Display name of the reviewer.")
	cmd.Flags().StringVar(&in.Comment, "comment", "", "Review text (markdown allowed).")
	cmd.Flags().IntVar(&in.Rating, "rating", 0, "Star rating from 1 to 5.")
	cmd.Flags().StringVar(&in.AvatarURL, "avatar", "", "Avatar URL; the server default is used when empty.")
	_ = cmd.MarkFlagRequired("comment")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newReviewsSummaryCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show review count, average rating and distribution.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := apiFor(deps, flags)
			if err != nil {
				return err
			}
			format, _ := ParseFormat(flags.Format)

			s, err := api.Summary(cmd.Context())
			if err != nil {
				return err
			}

			if format != FormatTable {
				return renderPayload(cmd.OutOrStdout(), s, format)
			}

			rows := [][]string{
				{"Reviews", "(" + strconv.Itoa(s.Count) + ")"},
				{"Average", s.AverageLabel},
			}
			for rating := 5; rating >= 1; rating-- {
				rows = append(rows, []string{stars(rating), strconv.Itoa(s.Distribution[strconv.Itoa(rating)])})
			}
			return renderTable(cmd.OutOrStdout(), nil, rows)
		},
	}
}
