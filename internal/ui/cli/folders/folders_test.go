package folders

import (
	"bytes"
	"testing"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/isaacphi/forge/internal/repository/filesystem"
	"github.com/isaacphi/forge/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	FoldersCmd.SetOut(&out)
	FoldersCmd.SetErr(&out)
	FoldersCmd.SetArgs(args)
	err := FoldersCmd.Execute()
	return out.String(), err
}

func TestFolders_NewAndList(t *testing.T) {
	store, resolver, err := filesystem.Initialize(t.TempDir(), nil)
	require.NoError(t, err)
	svc := service.NewToolService(store, resolver, nil)
	orig := newService
	newService = func() (*service.ToolService, error) { return svc, nil }
	t.Cleanup(func() { newService = orig })

	out, err := run(t, "ls")
	require.NoError(t, err)
	assert.Equal(t, "No folders\n", out)

	_, err = run(t, "new", "weather")
	require.NoError(t, err)
	_, err = run(t, "new", "math")
	require.NoError(t, err)

	out, err = run(t, "ls")
	require.NoError(t, err)
	assert.Equal(t, "math\nweather\n", out)

	_, err = run(t, "new", "../escape")
	assert.True(t, domain.IsValidationError(err))
}
