package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server health and a recommendation summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			summary := map[string]interface{}{"server": apiClient.BaseURL()}

			health, err := apiClient.Health(ctx)
			if err != nil {
				summary["health"] = fmt.Sprintf("error: %v", err)
			} else {
				summary["health"] = health.Status
			}

			ready, err := apiClient.Ready(ctx)
			if err != nil {
				summary["database"] = fmt.Sprintf("error: %v", err)
			} else {
				summary["database"] = ready.Database
			}

			recs, err := apiClient.Recommendations().List(ctx, nil)
			if err != nil {
				summary["recommendations"] = fmt.Sprintf("error: %v", err)
			} else {
				liked := 0
				byType := map[string]int{}
				for _, r := range recs {
					if r.Liked {
						liked++
					}
					byType[r.Type]++
				}
				summary["recommendations"] = len(recs)
				summary["liked"] = liked
				summary["by_type"] = byType
			}

			if getOutputFormat() != "table" {
				return printOutput(out, summary)
			}

			fmt.Fprintln(out, "Recommendation Service")
			fmt.Fprintln(out, strings.Repeat("=", 40))
			fmt.Fprintf(out, "  Server:          %v\n", summary["server"])
			fmt.Fprintf(out, "  Health:          %v\n", summary["health"])
			fmt.Fprintf(out, "  Database:        %v\n", summary["database"])
			fmt.Fprintf(out, "  Recommendations: %v", summary["recommendations"])
			if n, ok := summary["liked"]; ok {
				fmt.Fprintf(out, " (%v liked)", n)
			}
			fmt.Fprintln(out)
			if byType, ok := summary["by_type"].(map[string]int); ok {
				for _, t := range []string{"default", "cross-sell", "up-sell", "accessory", "frequently-together"} {
					fmt.Fprintf(out, "    %-21s %d\n", t+":", byType[t])
				}
			}
			return nil
		},
	}
}
