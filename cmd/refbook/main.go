// Package main provides the refbook CLI: seeding and validating reference
// descriptor data, and looking descriptors up by symbol.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// userErrors are the sentinels reporting a problem with the user's input or
// configuration rather than with the system.
var userErrors = []error{
	types.ErrUnknownFamily,
	types.ErrUnknownSymbol,
	types.ErrNotFound,
	types.ErrInvalidParentRef,
	types.ErrUnresolvedParent,
	types.ErrConfigMissing,
	types.ErrDuplicateSymbol,
	types.ErrSymbolEmpty,
	types.ErrNameEmpty,
	types.ErrMasterLocaleEmpty,
	types.ErrCacheTTLInvalid,
}

// exitCode maps an error to the process exit status: user and configuration
// errors exit 1, system errors exit 2. Aggregated seed validation reports
// count as user errors; they describe the locale files, not the system.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	var violations *multierror.Error
	if errors.As(err, &violations) {
		return exitUserError
	}
	return exitSysError
}
