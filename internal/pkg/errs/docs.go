// Package errs provides the error categories shared by the orders service.
//
// Every category follows the same shape:
//   - a sentinel error variable (e.g., ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - an Unwrap() method returning the sentinel
//
// The HTTP boundary classifies failures through the sentinels:
//   - ErrInvalidInput, ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: 400
//   - ErrObjectNotFound: 404
//   - ErrObjectAlreadyExists: 409
//   - anything else: 500
//
// Example:
//
//	if err := repo.Add(ctx, o); err != nil {
//	    if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	        // duplicate order id
//	    }
//	    return err
//	}
package errs
