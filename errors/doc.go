/*
Package errors provides semantic error types for the casestore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound            = errors.New("record not found")
	    ErrAlreadyExists       = errors.New("record already exists")
	    ErrInvalidInput        = errors.New("invalid input")
	    ErrUnknownCollection   = errors.New("unknown collection")
	    ErrProviderUnavailable = errors.New("provider unavailable")
	)

Usage:

	// Check error type
	rec, err := prov.GetRaw(ctx, "beneficiaries", "123")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, nil
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("beneficiaries", "123")
	err := errors.NewUnknownCollectionError("payments", "mongo")
	err := errors.NewProviderUnavailableError("dynamodb", "client not initialized")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.

ErrUnknownCollection and ErrProviderUnavailable are configuration errors:
they indicate a deployment or wiring defect and are the only errors the
operation executor lets escape to its caller instead of folding into a
response envelope.
*/
package errors
