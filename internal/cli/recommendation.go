package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/recommendations/pkg/client"
)

func newRecommendationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recommendation",
		Aliases: []string{"rec"},
		Short:   "Manage recommendations",
	}

	cmd.AddCommand(newRecListCmd())
	cmd.AddCommand(newRecGetCmd())
	cmd.AddCommand(newRecCreateCmd())
	cmd.AddCommand(newRecUpdateCmd())
	cmd.AddCommand(newRecDeleteCmd())
	cmd.AddCommand(newRecLikeCmd())
	cmd.AddCommand(newRecUnlikeCmd())

	return cmd
}

func parseRecID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid recommendation ID: %s", arg)
	}
	return id, nil
}

func newRecListCmd() *cobra.Command {
	var (
		recType string
		liked   bool
		pid     int64
		amount  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &client.RecommendationListOptions{}
			if cmd.Flags().Changed("type") {
				opts.Type = &recType
			}
			if cmd.Flags().Changed("liked") {
				opts.Liked = &liked
			}
			if cmd.Flags().Changed("pid") {
				opts.PID = &pid
			}
			if cmd.Flags().Changed("amount") {
				if amount < 0 {
					return fmt.Errorf("--amount must not be negative")
				}
				opts.Amount = &amount
			}

			recs, err := apiClient.Recommendations().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list recommendations: %w", err)
			}
			return printRecommendations(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVar(&recType, "type", "", "filter by type (default, cross-sell, up-sell, accessory, frequently-together)")
	cmd.Flags().BoolVar(&liked, "liked", false, "filter by liked flag (use --liked=false for unliked)")
	cmd.Flags().Int64Var(&pid, "pid", 0, "filter by product ID")
	cmd.Flags().IntVar(&amount, "amount", 0, "maximum number of results")

	return cmd
}

func newRecGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get recommendation details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecID(args[0])
			if err != nil {
				return err
			}

			rec, err := apiClient.Recommendations().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get recommendation: %w", err)
			}
			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}
}

func newRecCreateCmd() *cobra.Command {
	var req client.CreateRecommendationRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recommendation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := apiClient.Recommendations().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create recommendation: %w", err)
			}
			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().Int64Var(&req.PID, "pid", 0, "product ID")
	cmd.Flags().Int64Var(&req.RecommendedPID, "recommended-pid", 0, "recommended product ID")
	cmd.Flags().StringVar(&req.Type, "type", "", "recommendation type (default, cross-sell, up-sell, accessory, frequently-together)")
	cmd.Flags().BoolVar(&req.Liked, "liked", false, "mark as liked")
	_ = cmd.MarkFlagRequired("pid")
	_ = cmd.MarkFlagRequired("recommended-pid")

	return cmd
}

func newRecUpdateCmd() *cobra.Command {
	var (
		pid, recommendedPID int64
		recType             string
		liked               bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a recommendation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecID(args[0])
			if err != nil {
				return err
			}

			var req client.UpdateRecommendationRequest
			if cmd.Flags().Changed("pid") {
				req.PID = &pid
			}
			if cmd.Flags().Changed("recommended-pid") {
				req.RecommendedPID = &recommendedPID
			}
			if cmd.Flags().Changed("type") {
				req.Type = &recType
			}
			if cmd.Flags().Changed("liked") {
				req.Liked = &liked
			}
			if req == (client.UpdateRecommendationRequest{}) {
				return fmt.Errorf("nothing to update: set at least one of --pid, --recommended-pid, --type, --liked")
			}

			rec, err := apiClient.Recommendations().Update(context.Background(), id, req)
			if err != nil {
				return fmt.Errorf("failed to update recommendation: %w", err)
			}
			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().Int64Var(&pid, "pid", 0, "product ID")
	cmd.Flags().Int64Var(&recommendedPID, "recommended-pid", 0, "recommended product ID")
	cmd.Flags().StringVar(&recType, "type", "", "recommendation type (default, cross-sell, up-sell, accessory, frequently-together)")
	cmd.Flags().BoolVar(&liked, "liked", false, "liked flag")

	return cmd
}

func newRecDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recommendation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecID(args[0])
			if err != nil {
				return err
			}

			if err := apiClient.Recommendations().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete recommendation: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recommendation %d deleted\n", id)
			return nil
		},
	}
}

func newRecLikeCmd() *cobra.Command {
	return newRecToggleCmd("like", "Mark a recommendation as liked", (*client.RecommendationService).Like)
}

func newRecUnlikeCmd() *cobra.Command {
	return newRecToggleCmd("unlike", "Clear the liked flag of a recommendation", (*client.RecommendationService).Unlike)
}

func newRecToggleCmd(name, short string, toggle func(*client.RecommendationService, context.Context, int64) (*client.Recommendation, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecID(args[0])
			if err != nil {
				return err
			}

			rec, err := toggle(apiClient.Recommendations(), context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to %s recommendation: %w", name, err)
			}
			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}
}
