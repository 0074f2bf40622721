package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to delete data without --force")
		}

		env, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		env.App.ClearAllData()
		fmt.Println("all data cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm deletion")
	rootCmd.AddCommand(resetCmd)
}
