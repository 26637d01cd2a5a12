package forms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"trackdesk/internal/catalog"
	"trackdesk/internal/logging"
)

// RequestDelete starts the two-phase delete handshake: it resolves the
// target's display name and sets the session's pending marker for the kind.
// Nothing is removed from the store until ConfirmDelete.
func (e *Engine) RequestDelete(ctx context.Context, session *Session, kind catalog.Kind, id string) (PendingDeletion, error) {
	def := catalog.Get(kind)

	rec, found, err := e.store.Get(ctx, def.Worksheet(), id)
	if err != nil {
		return PendingDeletion{}, fmt.Errorf("request delete %s/%s: %w", kind, id, err)
	}
	if !found {
		return PendingDeletion{}, fmt.Errorf("request delete %s/%s: record not found", kind, id)
	}

	display := strings.TrimSpace(rec[def.DisplayColumn])
	if display == "" {
		display = id
	}

	pending := PendingDeletion{Kind: kind, ID: id, DisplayName: display}
	session.setPending(pending)
	return pending, nil
}

// ConfirmDelete commits the kind's pending deletion. On success the marker
// clears and the caller must reload the collection. On store failure the
// marker stays set so the confirmation can be retried.
func (e *Engine) ConfirmDelete(ctx context.Context, session *Session, kind catalog.Kind) (Result, error) {
	pending, ok := session.Pending(kind)
	if !ok {
		return Result{}, fmt.Errorf("confirm delete %s: %w", kind, ErrNoPendingDeletion)
	}

	def := catalog.Get(kind)
	if err := e.store.Delete(ctx, def.Worksheet(), pending.ID); err != nil {
		return Result{}, fmt.Errorf("confirm delete %s/%s: %w", kind, pending.ID, err)
	}

	session.clearPending(kind)
	e.logger.Info("record deleted",
		slog.String(logging.FieldKind, string(kind)),
		slog.String(logging.FieldRecordID, pending.ID),
		slog.String(logging.FieldOperation, "delete"),
	)
	return Result{Kind: kind, ID: pending.ID, Reload: kind}, nil
}

// CancelDelete clears the kind's pending marker without touching the store.
func (e *Engine) CancelDelete(session *Session, kind catalog.Kind) {
	session.clearPending(kind)
}
