package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/clientflow/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to CSV or JSON",
	Long:  "Exports the client health report (csv), the conversation list (conversations-csv), or a full JSON snapshot of every collection (json).",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		env.App.Initialize()

		path := exportOut
		dateStr := time.Now().Format("2006-01-02")

		switch exportFormat {
		case "csv":
			if path == "" {
				path = fmt.Sprintf("clientflow-clients-%s.csv", dateStr)
			}
			err = export.ClientsToCSV(env.App.Clients(), path)
		case "conversations-csv":
			if path == "" {
				path = fmt.Sprintf("clientflow-conversations-%s.csv", dateStr)
			}
			err = export.ConversationsToCSV(env.App.Conversations(), path)
		case "json":
			if path == "" {
				path = fmt.Sprintf("clientflow-export-%s.json", dateStr)
			}
			err = export.ToJSON(export.Snapshot{
				SchemaVersion: 1,
				Conversations: env.App.Conversations(),
				Clients:       env.App.Clients(),
				ActionItems:   env.App.ActionItems(),
				Templates:     env.App.Templates(),
				Summaries:     env.App.Summaries(),
				Settings:      env.App.Settings(),
			}, path)
		default:
			return fmt.Errorf("unknown format %q (want csv, conversations-csv or json)", exportFormat)
		}
		if err != nil {
			return err
		}

		fmt.Println("exported to", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: csv, conversations-csv, json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: ./clientflow-<kind>-<date>.<ext>)")
	rootCmd.AddCommand(exportCmd)
}
