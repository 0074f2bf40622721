package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset",
	Long:  "Seeds the demo conversations, clients, action items and templates. By default only an empty workspace is seeded; --force wipes existing data first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		if seedForce {
			env.App.ClearAllData()
		}

		wasEmpty := len(env.Repos.Conversations.GetAll()) == 0 && len(env.Repos.Clients.GetAll()) == 0
		env.App.Bootstrap()

		if !wasEmpty {
			fmt.Println("workspace not empty, nothing seeded (use --force to overwrite)")
			return nil
		}
		fmt.Printf("seeded %d conversations, %d clients, %d action items, %d templates\n",
			len(env.App.Conversations()),
			len(env.App.Clients()),
			len(env.App.ActionItems()),
			len(env.App.Templates()))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "clear existing data before seeding")
	rootCmd.AddCommand(seedCmd)
}
