package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestValidateMaster(t *testing.T) {
	var v Validator

	t.Run("complete master passes", func(t *testing.T) {
		master := &Tree{Locale: "en", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{Name: strptr("Administrator")}},
			},
		}}}
		assert.NoError(t, v.ValidateMaster(master))
	})

	t.Run("missing and empty names reported per entry", func(t *testing.T) {
		master := &Tree{Locale: "en", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{}},
				{Symbol: "guest", Attrs: Attrs{Name: strptr("")}},
				{Symbol: "owner", Attrs: Attrs{Name: strptr("Owner")}},
			},
		}}}
		err := v.ValidateMaster(master)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name not defined for 'admin' in 'role'")
		assert.Contains(t, err.Error(), "name not defined for 'guest' in 'role'")
		assert.NotContains(t, err.Error(), "owner")
	})

	t.Run("unknown attribute keys reported", func(t *testing.T) {
		master := &Tree{Locale: "en", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{Name: strptr("Administrator"), Unknown: []string{"color"}}},
			},
		}}}
		err := v.ValidateMaster(master)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown attribute 'color' for 'admin' in 'role'")
	})
}

func TestValidateAlternative(t *testing.T) {
	var v Validator

	master := &Tree{Locale: "en", Sets: []*Set{{
		Name: "role",
		Entries: []*Entry{
			{Symbol: "admin", Attrs: Attrs{Name: strptr("Administrator"), Description: strptr("Site administrator")}},
			{Symbol: "guest", Attrs: Attrs{Name: strptr("Guest")}},
		},
	}}}

	t.Run("complete alternative passes", func(t *testing.T) {
		alt := &Tree{Locale: "nb", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{Name: strptr("Administrator"), Description: strptr("Nettstedsadministrator")}},
				{Symbol: "guest", Attrs: Attrs{Name: strptr("Gjest")}},
			},
		}}}
		assert.NoError(t, v.ValidateAlternative(master, alt))
	})

	t.Run("missing set", func(t *testing.T) {
		alt := &Tree{Locale: "nb"}
		err := v.ValidateAlternative(master, alt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locale nb: keys not defined for 'role'")
	})

	t.Run("missing symbol", func(t *testing.T) {
		alt := &Tree{Locale: "nb", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{Name: strptr("Administrator"), Description: strptr("x")}},
			},
		}}}
		err := v.ValidateAlternative(master, alt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locale nb: key not defined for 'guest' in 'role'")
	})

	t.Run("missing attribute value", func(t *testing.T) {
		alt := &Tree{Locale: "nb", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{Name: strptr("Administrator")}},
				{Symbol: "guest", Attrs: Attrs{Name: strptr("")}},
			},
		}}}
		err := v.ValidateAlternative(master, alt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locale nb: attribute 'description' not defined for 'admin' in 'role'")
		assert.Contains(t, err.Error(), "locale nb: attribute 'name' not defined for 'guest' in 'role'")
	})

	t.Run("empty master attribute requires nothing", func(t *testing.T) {
		// guest declares no description in the master, so the alternative
		// does not need one either.
		alt := &Tree{Locale: "nb", Sets: []*Set{{
			Name: "role",
			Entries: []*Entry{
				{Symbol: "admin", Attrs: Attrs{Name: strptr("A"), Description: strptr("B")}},
				{Symbol: "guest", Attrs: Attrs{Name: strptr("Gjest")}},
			},
		}}}
		assert.NoError(t, v.ValidateAlternative(master, alt))
	})
}
