package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/api"
	"github.com/ps-health/patient-service/patients"
)

var deleteParams = struct {
	DryRun bool
}{}

var deleteCmd = &cobra.Command{
	Use:   "delete {patientId}",
	Short: "Delete a patient",
	Long:  "The delete command removes a patient and reports whether it existed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePatientId(args[0])
		if err != nil {
			return err
		}
		return Run(func(service patients.Service, logger *zap.SugaredLogger) error {
			return deletePatient(cmd.Context(), service, logger, cmd, id)
		})
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteParams.DryRun, "dry-run", false, "Only prints whether the patient exists")

	rootCmd.AddCommand(deleteCmd)
}

func deletePatient(ctx context.Context, service patients.Service, logger *zap.SugaredLogger, cmd *cobra.Command, id api.PatientId) error {
	if deleteParams.DryRun {
		exists, err := service.Exists(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Patient %s exists: %v\n", id, exists)
		return nil
	}

	deleted, err := service.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		logger.Warnw("patient was not found", "patientId", id)
		fmt.Fprintf(cmd.OutOrStdout(), "Patient %s was not found\n", id)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted patient %s\n", id)
	return nil
}
