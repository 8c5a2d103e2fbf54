package main

// This example serves a small employee directory through both the invoke API
// and plain REST routes. Both paths share one Responder so every failure is
// answered with the same APIError shape.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/apierror"
	"github.com/asecurityteam/apierror/employee"
	"github.com/asecurityteam/settings/v2"
)

// The directory can be called like:
//
//	curl --request POST --data '{"id": 1}' localhost:8080/2015-03-31/functions/getEmployee/invocations
//	curl localhost:8080/employees/5
//
// The second call answers with
//
//	{"status":"NOT_FOUND","message":"Employee not found with id 5","subErrors":[]}
func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(apierror.Help())
		return
	}

	service := &employee.Service{
		Repository: employee.NewMemoryRepository(
			employee.Employee{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"},
			employee.Employee{ID: 2, Name: "Alan Turing", Email: "alan@example.com"},
		),
	}
	fetcher := &apierror.StaticFetcher{
		// The keys of this map represent the function name and will be
		// accessed using the URL parameter of the Invoke API call.
		Functions: map[string]apierror.Function{
			"getEmployee":    service.GetFunction(),
			"createEmployee": service.CreateFunction(),
		},
	}
	handlers := &employee.Handlers{Service: service}

	ctx := context.Background()
	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := apierror.Start(ctx, source, fetcher, handlers.Routes); err != nil {
		panic(err.Error())
	}
}
