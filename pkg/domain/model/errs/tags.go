package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Input errors
	TagValidation = goerr.NewTag("validation")

	// Server/infrastructure errors
	TagInternal = goerr.NewTag("internal")
	TagExternal = goerr.NewTag("external")
	TagTimeout  = goerr.NewTag("timeout")
)
