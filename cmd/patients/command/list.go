package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ps-health/patient-service/patients"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long:  "The list command prints the id, name and email of every stored patient",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service patients.Service) error {
			return listPatients(cmd.Context(), service, cmd)
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listPatients(ctx context.Context, service patients.Service, cmd *cobra.Command) error {
	list, err := service.List(ctx)
	if err != nil {
		return fmt.Errorf("unable to list patients: %w", err)
	}

	for _, patient := range list {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", patient.Id, patient.Name, patient.Email)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Found %v patients\n", len(list))

	return nil
}
