package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		env.App.Initialize()
		stats := env.App.DashboardStats()

		fmt.Printf("%-24s %d\n", "Conversations", stats.TotalConversations)
		fmt.Printf("%-24s %d\n", "Unread", stats.UnreadCount)
		fmt.Printf("%-24s %d\n", "Active clients", stats.ActiveClients)
		fmt.Printf("%-24s %d\n", "At-risk clients", stats.AtRiskClients)
		fmt.Printf("%-24s %d\n", "Average health score", stats.AvgHealthScore)
		fmt.Printf("%-24s %d\n", "Pending actions", stats.PendingActions)
		fmt.Printf("%-24s %d\n", "Completed actions", stats.CompletedActions)
		fmt.Printf("%-24s %.0fh (%s)\n", "Avg response time", stats.ResponseTime.Avg, stats.ResponseTime.Trend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
