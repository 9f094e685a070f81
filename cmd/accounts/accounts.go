// Package accounts handles the accounts command
package accounts

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fjacquet/activity-export/cmd/root"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

var newAccount models.Account

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the configured accounts",
	Long:  `List the accounts of accounts.file, the names and types used to describe transfers and shape OFX statements.`,
	RunE:  listFunc,
}

// AddCmd adds or replaces one account.
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or replace an account",
	RunE:  addFunc,
}

func init() {
	AddCmd.Flags().StringVar(&newAccount.ID, "id", "", "Account id (required)")
	AddCmd.Flags().StringVar(&newAccount.Name, "name", "", "Display name")
	AddCmd.Flags().StringVar(&newAccount.Type, "type", "", "Account type, e.g. TFSA, Cash, Credit card")
	AddCmd.Flags().StringVar(&newAccount.Currency, "currency", "", "Statement currency, e.g. CAD")
	_ = AddCmd.MarkFlagRequired("id")
	Cmd.AddCommand(AddCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	out, err := yaml.Marshal(models.AccountsFile{Accounts: c.GetAccounts().List()})
	if err != nil {
		return fmt.Errorf("error encoding accounts: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func addFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	account := newAccount
	account.ID = strings.TrimSpace(account.ID)
	if account.ID == "" {
		return fmt.Errorf("an account id is required (--id)")
	}

	merged := Upsert(c.GetAccounts().List(), account)
	if err := c.GetAccountStore().SaveAccounts(merged); err != nil {
		return err
	}
	root.Log.Info("Saved account", logging.F(logging.FieldAccountID, account.ID))
	return nil
}

// Upsert replaces the account with the same id, or appends it.
func Upsert(list []models.Account, account models.Account) []models.Account {
	out := make([]models.Account, 0, len(list)+1)
	replaced := false
	for _, a := range list {
		if a.ID == account.ID {
			out = append(out, account)
			replaced = true
			continue
		}
		out = append(out, a)
	}
	if !replaced {
		out = append(out, account)
	}
	return out
}
