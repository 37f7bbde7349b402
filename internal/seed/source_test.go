package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

const enSeedYAML = `en:
  descriptors:
    role:
      admin:
        name: Administrator
        description: Site administrator
        index: 2
        value: 10
      guest:
        name: Guest
        index: 1
    user_role:
      parent: role.admin
      power_user:
        name: Power user
      restricted:
        name: Restricted
        parent: role.guest
`

func writeSeedFile(t *testing.T, dir, locale, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, locale+".descriptors.yml"), []byte(content), 0o644))
}

func loadTree(t *testing.T, content, locale string) *Tree {
	t.Helper()
	dir := t.TempDir()
	writeSeedFile(t, dir, locale, content)
	tree, err := NewSource(dir).Load(locale)
	require.NoError(t, err)
	return tree
}

func TestSourceLoad(t *testing.T) {
	tree := loadTree(t, enSeedYAML, "en")

	assert.Equal(t, "en", tree.Locale)
	require.Len(t, tree.Sets, 2)

	role := tree.Sets[0]
	assert.Equal(t, "role", role.Name)
	assert.Empty(t, role.Parent)
	require.Len(t, role.Entries, 2)

	// Entries keep file order, not index order.
	admin := role.Entries[0]
	assert.Equal(t, "admin", admin.Symbol)
	require.NotNil(t, admin.Attrs.Name)
	assert.Equal(t, "Administrator", *admin.Attrs.Name)
	require.NotNil(t, admin.Attrs.Description)
	assert.Equal(t, "Site administrator", *admin.Attrs.Description)
	require.NotNil(t, admin.Attrs.Index)
	assert.Equal(t, int64(2), *admin.Attrs.Index)
	require.NotNil(t, admin.Attrs.Value)
	assert.Equal(t, int64(10), *admin.Attrs.Value)
	assert.Nil(t, admin.Attrs.Parent)

	guest := role.Entries[1]
	assert.Equal(t, "guest", guest.Symbol)
	assert.Nil(t, guest.Attrs.Description, "absent attributes stay nil")
	assert.Nil(t, guest.Attrs.Value)

	userRole := tree.Sets[1]
	assert.Equal(t, "user_role", userRole.Name)
	assert.Equal(t, "role.admin", userRole.Parent)
	require.Len(t, userRole.Entries, 2)
	assert.Nil(t, userRole.Entries[0].Attrs.Parent)
	require.NotNil(t, userRole.Entries[1].Attrs.Parent)
	assert.Equal(t, "role.guest", *userRole.Entries[1].Attrs.Parent)
}

func TestSourceLoadUnknownAttrs(t *testing.T) {
	tree := loadTree(t, `en:
  descriptors:
    role:
      admin:
        name: Administrator
        color: red
        weight: 3
`, "en")

	entry := tree.Sets[0].Entries[0]
	assert.ElementsMatch(t, []string{"color", "weight"}, entry.Attrs.Unknown)
}

func TestSourceLoadMissingFile(t *testing.T) {
	_, err := NewSource(t.TempDir()).Load("en")
	assert.ErrorIs(t, err, types.ErrConfigMissing)
}

func TestSourceLoadMissingLocaleSection(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "nb", enSeedYAML)

	_, err := NewSource(dir).Load("nb")
	assert.Error(t, err)
}

func TestTreeSetAccessors(t *testing.T) {
	tree := loadTree(t, enSeedYAML, "en")

	set, ok := tree.Set("user_role")
	require.True(t, ok)
	assert.Equal(t, "user_role", set.Name)

	_, ok = tree.Set("nope")
	assert.False(t, ok)

	entry, ok := set.Entry("power_user")
	require.True(t, ok)
	assert.Equal(t, "power_user", entry.Symbol)

	_, ok = set.Entry("nope")
	assert.False(t, ok)
}

func TestTreeRemoveSet(t *testing.T) {
	tree := loadTree(t, enSeedYAML, "en")

	removed, ok := tree.RemoveSet("role")
	require.True(t, ok)
	assert.Equal(t, "role", removed.Name)
	require.Len(t, tree.Sets, 1)
	assert.Equal(t, "user_role", tree.Sets[0].Name)

	_, ok = tree.RemoveSet("role")
	assert.False(t, ok)
}
