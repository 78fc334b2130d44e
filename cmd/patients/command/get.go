package command

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ps-health/patient-service/api"
	"github.com/ps-health/patient-service/patients"
)

var getCmd = &cobra.Command{
	Use:   "get {patientId}",
	Short: "Print a patient",
	Long:  "The get command prints the stored record of a patient as json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePatientId(args[0])
		if err != nil {
			return err
		}
		return Run(func(service patients.Service) error {
			return getPatient(cmd.Context(), service, cmd, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func getPatient(ctx context.Context, service patients.Service, cmd *cobra.Command, id api.PatientId) error {
	patient, err := service.Get(ctx, id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(api.NewPatientEntityDto(*patient))
}
