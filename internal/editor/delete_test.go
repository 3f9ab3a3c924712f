package editor

import (
	"context"
	"testing"

	"github.com/isaacphi/forge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_Confirm(t *testing.T) {
	ctx := context.Background()
	c, svc := newController(t)
	saved, err := svc.Create(ctx, "", "ping", domain.NewTool("ping", ""))
	require.NoError(t, err)

	c.RequestDelete(saved.ID)
	assert.Equal(t, DeleteConfirming, c.Deletion().State)
	top, ok := c.Dialogs.Top()
	require.True(t, ok)
	assert.Equal(t, DialogConfirmDelete, top.Kind)
	assert.Equal(t, saved.ID, top.Target)

	result, err := c.ConfirmDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, ResultDeleted, result.Kind)
	assert.Equal(t, DeleteDeleted, c.Deletion().State)
	assert.Equal(t, 0, c.Dialogs.Len())

	_, err = svc.Get(ctx, saved.ID)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestDelete_Cancel(t *testing.T) {
	ctx := context.Background()
	c, svc := newController(t)
	saved, err := svc.Create(ctx, "", "ping", domain.NewTool("ping", ""))
	require.NoError(t, err)

	c.RequestDelete(saved.ID)
	result := c.CancelDelete()
	assert.Equal(t, ResultCanceled, result.Kind)
	assert.Equal(t, DeleteCanceled, c.Deletion().State)
	assert.Equal(t, 0, c.Dialogs.Len())

	_, err = svc.Get(ctx, saved.ID)
	assert.NoError(t, err)

	_, err = c.ConfirmDelete(ctx)
	assert.Error(t, err)
}

func TestDelete_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t)

	c.RequestDelete("never")
	_, err := c.ConfirmDelete(ctx)
	assert.NoError(t, err)
}

func TestDelete_IOError(t *testing.T) {
	c := NewController(failingTools{}, nil)
	c.RequestDelete("ping")

	_, err := c.ConfirmDelete(context.Background())
	assert.True(t, domain.IsIOError(err))
	assert.Equal(t, DeleteIdle, c.Deletion().State)
}

func TestDialogStack(t *testing.T) {
	var s DialogStack
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(Dialog{Kind: DialogSave})
	s.Push(ErrorDialog(assert.AnError))

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, DialogError, top.Kind)
	assert.Equal(t, assert.AnError.Error(), top.Message)

	d, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, DialogError, d.Kind)
	top, _ = s.Top()
	assert.Equal(t, DialogSave, top.Kind)
	assert.Equal(t, 1, s.Len())
}
