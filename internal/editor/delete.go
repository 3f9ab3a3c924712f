package editor

import (
	"context"
	"fmt"
)

type DeleteState int

const (
	DeleteIdle DeleteState = iota
	DeleteConfirming
	DeleteDeleted
	DeleteCanceled
)

func (s DeleteState) String() string {
	switch s {
	case DeleteIdle:
		return "idle"
	case DeleteConfirming:
		return "confirming"
	case DeleteDeleted:
		return "deleted"
	case DeleteCanceled:
		return "canceled"
	}
	return "unknown"
}

// Deletion tracks a delete waiting for confirmation
type Deletion struct {
	ToolID string
	State  DeleteState
}

func (c *Controller) Deletion() Deletion {
	return c.delete
}

// RequestDelete starts the two step delete and pushes the confirm dialog
func (c *Controller) RequestDelete(id string) {
	c.delete = Deletion{ToolID: id, State: DeleteConfirming}
	c.Dialogs.Push(Dialog{
		Kind:    DialogConfirmDelete,
		Title:   "Delete tool",
		Message: fmt.Sprintf("Delete %s? This cannot be undone.", id),
		Target:  id,
	})
}

// ConfirmDelete removes the tool. A failed delete is dropped so the user
// can retry from the browser.
func (c *Controller) ConfirmDelete(ctx context.Context) (Result, error) {
	if c.delete.State != DeleteConfirming {
		return Result{}, fmt.Errorf("no delete is awaiting confirmation")
	}
	c.popConfirm()

	id := c.delete.ToolID
	if err := c.tools.Delete(ctx, id); err != nil {
		c.delete = Deletion{}
		c.logger.Warn("delete failed", "id", id, "error", err)
		return Result{}, err
	}

	c.delete.State = DeleteDeleted
	c.logger.Info("tool deleted", "id", id)
	return Result{Kind: ResultDeleted, ToolID: id}, nil
}

func (c *Controller) CancelDelete() Result {
	if c.delete.State == DeleteConfirming {
		c.popConfirm()
		c.delete.State = DeleteCanceled
	}
	return Result{Kind: ResultCanceled, ToolID: c.delete.ToolID}
}

func (c *Controller) popConfirm() {
	if top, ok := c.Dialogs.Top(); ok && top.Kind == DialogConfirmDelete {
		c.Dialogs.Pop()
	}
}
