package consterror

/*
	Error is an implementation for the error interface that allows you to declare exported globals with the `const` keyword.

		TL;DR:
			const ErrSomething consterror.Error = "something is an error"

*/
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }
