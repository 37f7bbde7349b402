package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParentRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    ParentRef
		wantErr bool
	}{
		{
			name: "simple reference",
			ref:  "role.admin",
			want: ParentRef{Set: "role", Symbol: "admin"},
		},
		{
			name: "underscored set name",
			ref:  "user_role.power_user",
			want: ParentRef{Set: "user_role", Symbol: "power_user"},
		},
		{
			name:    "no dot",
			ref:     "roleadmin",
			wantErr: true,
		},
		{
			name:    "two dots",
			ref:     "role.admin.extra",
			wantErr: true,
		},
		{
			name:    "empty set",
			ref:     ".admin",
			wantErr: true,
		},
		{
			name:    "empty symbol",
			ref:     "role.",
			wantErr: true,
		},
		{
			name:    "empty reference",
			ref:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParentRef(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParentRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParentRefFamily(t *testing.T) {
	ref, err := ParseParentRef("user_role.admin")
	require.NoError(t, err)
	assert.Equal(t, "UserRole", ref.Family())
	assert.Equal(t, "user_role.admin", ref.String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		setName string
		want    string
	}{
		{"role", "Role"},
		{"user_role", "UserRole"},
		{"order_line_status", "OrderLineStatus"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.setName), "Classify(%q)", tt.setName)
	}
}

func TestUnderscore(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"Role", "role"},
		{"UserRole", "user_role"},
		{"OrderLineStatus", "order_line_status"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Underscore(tt.family), "Underscore(%q)", tt.family)
	}
}

func TestClassifyUnderscoreRoundTrip(t *testing.T) {
	for _, set := range []string{"role", "user_role", "order_line_status"} {
		assert.Equal(t, set, Underscore(Classify(set)))
	}
}
