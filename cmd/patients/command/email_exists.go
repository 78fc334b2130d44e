package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ps-health/patient-service/patients"
)

var emailExistsCmd = &cobra.Command{
	Use:   "email-exists {email}",
	Short: "Check whether an email is in use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service patients.Service) error {
			return emailExists(cmd.Context(), service, cmd, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(emailExistsCmd)
}

func emailExists(ctx context.Context, service patients.Service, cmd *cobra.Command, email string) error {
	exists, err := service.EmailExists(ctx, email)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", exists)
	return nil
}
