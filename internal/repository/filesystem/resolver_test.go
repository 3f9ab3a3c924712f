package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath_Collisions(t *testing.T) {
	base := t.TempDir()

	p, err := ResolvePath(base, "", "a")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "a.json"), p)

	writeFile(t, filepath.Join(base, "a.json"), "{}")
	p, err = ResolvePath(base, "", "a.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "a_1.json"), p)

	writeFile(t, filepath.Join(base, "a_1.json"), "{}")
	p, err = ResolvePath(base, "", "a")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "a_2.json"), p)
}

func TestResolvePath_RejectsBadNames(t *testing.T) {
	base := t.TempDir()

	for _, name := range []string{"", "  ", "a/b", `a\b`, "..", strings.Repeat("x", 251)} {
		_, err := ResolvePath(base, "", name)
		assert.True(t, domain.IsValidationError(err), "filename %q", name)
	}

	_, err := ResolvePath(base, "../up", "a")
	assert.True(t, domain.IsValidationError(err))
}

func TestResolver_SaveNew_LongFilename(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)

	done := make(chan error, 1)
	go func() {
		_, err := r.SaveNew(context.Background(), "", strings.Repeat("x", 300), "{}")
		done <- err
	}()

	select {
	case err := <-done:
		assert.True(t, domain.IsValidationError(err), "got %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("SaveNew did not return for a 300 byte filename")
	}
}

func TestResolvePath_StatFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	base := t.TempDir()
	locked := filepath.Join(base, "locked")
	require.NoError(t, os.Mkdir(locked, 0755))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	done := make(chan error, 1)
	go func() {
		_, err := ResolvePath(base, "locked", "a")
		done <- err
	}()

	select {
	case err := <-done:
		assert.True(t, domain.IsIOError(err), "got %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("ResolvePath did not return for an unreadable folder")
	}
}

func TestResolver_SaveNew_NeverOverwrites(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	r := NewResolver(base, nil)

	first, err := r.SaveNew(ctx, "weather", "a", "one")
	require.NoError(t, err)
	assert.Equal(t, "weather/a", first.ID)

	second, err := r.SaveNew(ctx, "weather", "a", "two")
	require.NoError(t, err)
	assert.Equal(t, "weather/a_1", second.ID)

	data, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	data, err = os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestResolver_SaveNew_RoundTripsThroughStore(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	store, resolver, err := Initialize(base, nil)
	require.NoError(t, err)

	content, err := weatherTool().Format()
	require.NoError(t, err)
	saved, err := resolver.SaveNew(ctx, "", "get_weather", content)
	require.NoError(t, err)

	tool, err := store.GetTool(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "get_weather", tool.Name)
	assert.Equal(t, []string{"location"}, tool.Parameters.Required)
}

func TestResolver_Folders(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	r := NewResolver(base, nil)

	assert.Equal(t, []string{}, r.ListFolders(ctx))

	require.NoError(t, r.CreateFolder(ctx, "zeta"))
	require.NoError(t, r.CreateFolder(ctx, "alpha"))
	require.NoError(t, r.CreateFolder(ctx, "alpha"))
	require.NoError(t, os.Mkdir(filepath.Join(base, ".hidden"), 0755))
	writeFile(t, filepath.Join(base, "loose.json"), "{}")

	assert.Equal(t, []string{"alpha", "zeta"}, r.ListFolders(ctx))

	for _, name := range []string{"", "a/b", "..", ".dot"} {
		assert.True(t, domain.IsValidationError(r.CreateFolder(ctx, name)), "folder %q", name)
	}
}

func TestResolver_ListFolders_MissingBase(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Equal(t, []string{}, r.ListFolders(context.Background()))
}

func TestToolID(t *testing.T) {
	base := t.TempDir()
	id, err := ToolID(base, filepath.Join(base, "a", "b.json"))
	require.NoError(t, err)
	assert.Equal(t, "a/b", id)
}
