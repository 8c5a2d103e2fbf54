package apierror

import (
	"context"
	"fmt"
)

// StaticFetcher is an implementation of the Fetcher that maintains a static mapping
// of names to Function instances. Runtimes that leverage this implementation do not
// need to perform any orchestration of external systems as all invocations of the
// Functions happen within the process and share the runtime's resources.
//
// Updates to, additions of, and removals of Functions must be accomplished by
// generating a new build and redeploying the runtime.
type StaticFetcher struct {
	// Functions is the underlying static map of function names to executable
	// functions. The keys of the map will be used as the name of the Function.
	Functions map[string]Function
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	h, ok := f.Functions[name]
	if !ok {
		return nil, NewNotFoundError(fmt.Sprintf("Function not found with name %s", name))
	}
	return h, nil
}
