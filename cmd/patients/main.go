package main

import "github.com/ps-health/patient-service/cmd/patients/command"

func main() {
	command.Execute()
}
