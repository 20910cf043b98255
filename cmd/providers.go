package cmd

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/mark3labs/homeinfo/internal/models"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported model providers",
	Long: `List the providers homeinfo can query, the model used when only the
provider is of interest, and the environment variable holding each
provider's API key.

Examples:
  homeinfo providers
  homeinfo -m anthropic:claude-3-5-haiku-latest`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func runProviders(cmd *cobra.Command, _ []string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PROVIDER", "MODEL FLAG", "CREDENTIAL", "STATUS")

	for _, p := range models.Providers() {
		env, status := p.Env, "ready"
		switch {
		case env == "":
			env = "-"
		case os.Getenv(env) == "":
			status = "missing"
		}
		t.Row(p.ID, p.ID+":"+p.DefaultModel, env, status)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
