// Package employee is a small employee directory used to demonstrate the
// error translation of the apierror package. Lookups that come back empty
// are converted into apierror.NotFoundError values before they leave the
// Service so that callers never need to inspect an optional result.
package employee
