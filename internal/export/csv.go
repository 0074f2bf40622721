package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sadopc/clientflow/internal/model"
)

// ClientsToCSV writes a client health report, one row per client.
func ClientsToCSV(clients []model.Client, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Name", "Company", "Email", "Health Score", "Status", "Trend", "Open Issues", "Last Activity", "Contract Value"}); err != nil {
		return err
	}

	for _, c := range clients {
		value := ""
		if c.ContractInfo.Value > 0 {
			value = fmt.Sprintf("%.2f", c.ContractInfo.Value)
		}
		row := []string{
			c.ID,
			c.Name,
			c.Company,
			c.Email,
			fmt.Sprintf("%d", c.HealthScore.Score),
			string(c.HealthScore.Status),
			string(c.HealthScore.Trend),
			fmt.Sprintf("%d", c.HealthScore.Issues),
			c.HealthScore.LastActivity,
			value,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// ConversationsToCSV writes the conversation list with tags joined by ";".
func ConversationsToCSV(conversations []model.Conversation, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Client", "Subject", "Priority", "Sentiment", "Unread", "Created", "Tags"}); err != nil {
		return err
	}

	for _, c := range conversations {
		row := []string{
			c.ID,
			c.Client,
			c.Subject,
			string(c.Priority),
			string(c.Sentiment),
			fmt.Sprintf("%t", c.Unread),
			c.CreatedAt.Local().Format(time.RFC3339),
			strings.Join(c.Tags, ";"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
