package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/startupops/api-smoke-tests/client"
	"github.com/startupops/api-smoke-tests/framework"
	"github.com/startupops/api-smoke-tests/logging"
	"github.com/startupops/api-smoke-tests/smoketests"
)

func main() {
	os.Exit(run())
}

func run() int {
	var params commandParams
	if err := params.Read(newViper()); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}

	apiClient, err := client.NewAPIClient(params.baseURL, params.timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}

	console := logging.NewConsole(os.Stdout, !color.NoColor)
	for _, line := range framework.FilterDescription(params.filters) {
		console.Info("%s", line)
	}

	var filter framework.Filter
	if params.filters.IsDefined() {
		filter = params.filters.AsFilter
	}

	testLogger := &ConsoleTestLogger{
		Console:              console,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	suite := smoketests.NewSuite(apiClient, console, smoketests.Options{
		Package:         params.checkoutPackage,
		StrictResponses: params.strictResponses,
		VerifyInvite:    params.verifyInvite,
	})
	return suite.RunAll(context.Background(), filter, testLogger)
}
