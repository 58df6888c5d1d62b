package board

import (
	"context"
	"strings"

	"github.com/iyouport-org/noticeboard/pkg/webapi"
	log "github.com/sirupsen/logrus"
)

const (
	MsgLoadFailed     = "Failed to load notices"
	MsgEditFailed     = "Failed to load notice"
	MsgSaveFailed     = "Failed to save notice"
	MsgDeleteFailed   = "Failed to delete notice"
	MsgCreated        = "Notice added successfully!"
	MsgUpdated        = "Notice updated successfully!"
	MsgDeleted        = "Notice deleted successfully!"
	DeleteConfirmText = "Are you sure you want to delete this notice?"
)

// list replaces the store with the server's list. On failure the previous
// snapshot stays in place.
func (b *Board) list(ctx context.Context) bool {
	notices, err := b.api.List(ctx)
	if err != nil {
		b.logger.WithError(err).Error("error loading notices")
		b.notify(ToastError, MsgLoadFailed)
		return false
	}
	b.store.ReplaceAll(notices)
	b.logger.WithField("count", len(notices)).Debug("notices loaded")
	return true
}

func (b *Board) refresh(ctx context.Context) {
	b.refreshing = true
	b.publish()
	defer func() {
		b.refreshing = false
	}()
	b.list(ctx)
}

// edit populates the form from a fresh read of the record, never from the
// cached snapshot.
func (b *Board) edit(ctx context.Context, id uint) {
	notice, err := b.api.Get(ctx, id)
	if err != nil {
		b.logger.WithError(err).WithField("notice.id", id).Error("error loading notice")
		b.notify(ToastError, MsgEditFailed)
		return
	}
	b.mode = ModeEdit
	b.editingID = id
	b.form = Form{
		Title:       notice.Title,
		Description: notice.Description,
	}
}

func (b *Board) submit(ctx context.Context, s Submit) {
	b.form = Form{
		Title:       s.Title,
		Description: s.Description,
	}
	req := webapi.NoticeRequest{
		Title:       strings.TrimSpace(s.Title),
		Description: strings.TrimSpace(s.Description),
	}
	var err error
	var message string
	if b.mode == ModeEdit {
		_, err = b.api.Update(ctx, b.editingID, req)
		message = MsgUpdated
	} else {
		_, err = b.api.Create(ctx, req)
		message = MsgCreated
	}
	if err != nil {
		b.logger.WithError(err).WithFields(log.Fields{
			"mode":      b.mode.String(),
			"notice.id": b.editingID,
		}).Error("error saving notice")
		b.notify(ToastError, MsgSaveFailed)
		return
	}
	b.notify(ToastSuccess, message)
	b.resetForm()
	b.list(ctx)
}

func (b *Board) remove(ctx context.Context, d Delete) {
	confirm := d.Confirm
	if confirm == nil {
		confirm = b.confirm
	}
	if !confirm.Confirm(ctx, DeleteConfirmText) {
		b.logger.WithField("notice.id", d.ID).Debug("delete declined")
		return
	}
	if err := b.api.Delete(ctx, d.ID); err != nil {
		b.logger.WithError(err).WithField("notice.id", d.ID).Error("error deleting notice")
		b.notify(ToastError, MsgDeleteFailed)
		return
	}
	b.notify(ToastSuccess, MsgDeleted)
	b.list(ctx)
}
