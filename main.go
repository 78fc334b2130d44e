package main

import (
	"github.com/ps-health/patient-service/api"
)

func main() {
	api.MainLoop()
}
