package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: exitSuccess,
		},
		{
			name: "unknown symbol is a user error",
			err:  fmt.Errorf("%w: Role.bogus", types.ErrUnknownSymbol),
			want: exitUserError,
		},
		{
			name: "unknown family is a user error",
			err:  fmt.Errorf("%w: Nope", types.ErrUnknownFamily),
			want: exitUserError,
		},
		{
			name: "missing locale file is a user error",
			err:  fmt.Errorf("%w: no descriptor file for locale en", types.ErrConfigMissing),
			want: exitUserError,
		},
		{
			name: "unresolved parent is a user error",
			err:  fmt.Errorf("%w: \"role.nope\"", types.ErrUnresolvedParent),
			want: exitUserError,
		},
		{
			name: "aggregated validation report is a user error",
			err: multierror.Append(nil,
				errors.New("name not defined for 'admin' in 'role'"),
				errors.New("locale nb: keys not defined for 'role'"),
			).ErrorOrNil(),
			want: exitUserError,
		},
		{
			name: "anything else is a system error",
			err:  errors.New("opening database: disk I/O error"),
			want: exitSysError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
