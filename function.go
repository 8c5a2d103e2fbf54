package apierror

import (
	"github.com/aws/aws-lambda-go/lambda"
)

// NewFunction is a replacement for lambda.NewHandler that returns a
// Function. The value must be a function with one of the signatures
// accepted by lambda.NewHandler. Any error it returns is passed through
// unchanged so that it reaches the Responder with its type intact.
func NewFunction(v interface{}) Function {
	return lambda.NewHandler(v)
}
