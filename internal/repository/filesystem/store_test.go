package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherTool() domain.Tool {
	tool := domain.NewTool("get_weather", "Get the current weather")
	tool.Parameters.AddProperty("location", domain.Property{Type: "string", Description: "City", Required: true})
	tool.Parameters.AddProperty("unit", domain.Property{Type: "string", Enum: []any{"c", "f"}})
	return tool
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func TestStore_SaveAndGetTool(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir(), nil)

	require.NoError(t, store.SaveTool(ctx, "weather/get_weather", weatherTool()))

	got, err := store.GetTool(ctx, "weather/get_weather")
	require.NoError(t, err)
	assert.Equal(t, "get_weather", got.Name)
	assert.Equal(t, []string{"location"}, got.Parameters.Required)
	assert.True(t, got.Parameters.Properties["location"].Required)
	assert.Equal(t, []any{"c", "f"}, got.Parameters.Properties["unit"].Enum)

	tools := store.GetTools(ctx)
	require.Len(t, tools, 1)
	assert.Contains(t, tools, "weather/get_weather")
}

func TestStore_GetTool_AbsentIsNotFound(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	_, err := store.GetTool(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestStore_GetTool_CorruptIsValidationError(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "broken.json"), "{not json")
	store := NewStore(base, nil)

	_, err := store.GetTool(context.Background(), "broken")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestStore_GetTools_CorruptFileYieldsEmptyMap(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "broken.json"), "{not json")
	store := NewStore(base, nil)

	assert.Empty(t, store.GetTools(context.Background()))

	entries := store.List(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, "broken", entries[0].ID)
	assert.Nil(t, entries[0].Tool)
	assert.Error(t, entries[0].Err)
}

func TestStore_GetTools_MissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Empty(t, store.GetTools(context.Background()))
	assert.Empty(t, store.List(context.Background()))
}

func TestStore_List_SkipsHiddenAndNonJSON(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, nil)
	ctx := context.Background()

	require.NoError(t, store.SaveTool(ctx, "b", weatherTool()))
	require.NoError(t, store.SaveTool(ctx, "a/nested", weatherTool()))
	writeFile(t, filepath.Join(base, ".git", "x.json"), "{}")
	writeFile(t, filepath.Join(base, "notes.txt"), "hello")

	entries := store.List(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "a/nested", entries[0].ID)
	assert.Equal(t, "a", entries[0].Folder)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "", entries[1].Folder)
}

func TestStore_DeleteTool(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir(), nil)
	require.NoError(t, store.SaveTool(ctx, "x", weatherTool()))

	require.NoError(t, store.DeleteTool(ctx, "x"))
	_, err := store.GetTool(ctx, "x")
	assert.True(t, domain.IsNotFoundError(err))

	// absent id is a no-op
	assert.NoError(t, store.DeleteTool(ctx, "x"))
	assert.NoError(t, store.DeleteTool(ctx, "never/existed"))
}

func TestStore_SaveRaw_OverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	store := NewStore(base, nil)

	require.NoError(t, store.SaveRaw(ctx, "raw", "first"))
	require.NoError(t, store.SaveRaw(ctx, "raw", "second"))

	content, err := store.ReadRaw(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, "second", content)

	// no temp files left behind
	files, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "raw.json", files[0].Name())
}

func TestStore_RejectsEscapingIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir(), nil)

	for _, id := range []string{"", "../outside", "/abs/path", "a/../../b", "."} {
		err := store.SaveRaw(ctx, id, "{}")
		assert.True(t, domain.IsValidationError(err), "id %q", id)
	}
}

func TestStore_IDSuffixIsOptional(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir(), nil)
	require.NoError(t, store.SaveTool(ctx, "tool.json", weatherTool()))

	_, err := store.GetTool(ctx, "tool")
	assert.NoError(t, err)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewStore(t.TempDir(), nil)

	assert.ErrorIs(t, store.SaveRaw(ctx, "x", "{}"), context.Canceled)
}
