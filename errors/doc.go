/*
Package errors implements custom error interfaces for tide.

The package is built around root errors, registered with a unique numeric
code each. Errors created during runtime should always wrap one of the
root errors, so that the error category can be tested with the root's Is
method regardless of how many layers of context were added on top:

	if errors.ErrNotFound.Is(err) {
		...
	}

Extensions register their own root errors using codes above 1000.
*/
package errors
