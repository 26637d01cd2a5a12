package forms_test

import (
	"context"
	"errors"
	"testing"

	"trackdesk/internal/catalog"
	"trackdesk/internal/forms"
	"trackdesk/internal/testsupport"
)

func TestDeleteHandshake(t *testing.T) {
	engine, store := newEngine(t)
	session := forms.NewSession()
	ctx := context.Background()

	id := testsupport.SeedNamed(t, store, catalog.KindMoods, "Wistful")

	pending, err := engine.RequestDelete(ctx, session, catalog.KindMoods, id)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if pending.DisplayName != "Wistful" || pending.ID != id {
		t.Fatalf("unexpected pending: %#v", pending)
	}

	// The request alone removes nothing.
	if _, found, _ := store.Get(ctx, catalog.Get(catalog.KindMoods).Worksheet(), id); !found {
		t.Fatal("record deleted before confirmation")
	}

	result, err := engine.ConfirmDelete(ctx, session, catalog.KindMoods)
	if err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if result.ID != id {
		t.Fatalf("result.ID = %q", result.ID)
	}
	if _, found, _ := store.Get(ctx, catalog.Get(catalog.KindMoods).Worksheet(), id); found {
		t.Fatal("record survived confirmation")
	}
	if _, ok := session.Pending(catalog.KindMoods); ok {
		t.Fatal("pending marker not cleared after confirm")
	}
}

func TestConfirmWithoutRequest(t *testing.T) {
	engine, _ := newEngine(t)
	session := forms.NewSession()

	_, err := engine.ConfirmDelete(context.Background(), session, catalog.KindMoods)
	if !errors.Is(err, forms.ErrNoPendingDeletion) {
		t.Fatalf("error = %v, want ErrNoPendingDeletion", err)
	}
}

func TestCancelDelete(t *testing.T) {
	engine, store := newEngine(t)
	session := forms.NewSession()
	ctx := context.Background()

	id := testsupport.SeedNamed(t, store, catalog.KindMoods, "Wistful")
	if _, err := engine.RequestDelete(ctx, session, catalog.KindMoods, id); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}

	engine.CancelDelete(session, catalog.KindMoods)

	if _, ok := session.Pending(catalog.KindMoods); ok {
		t.Fatal("pending marker survived cancel")
	}
	if _, found, _ := store.Get(ctx, catalog.Get(catalog.KindMoods).Worksheet(), id); !found {
		t.Fatal("cancel must not delete the record")
	}
	if _, err := engine.ConfirmDelete(ctx, session, catalog.KindMoods); !errors.Is(err, forms.ErrNoPendingDeletion) {
		t.Fatalf("confirm after cancel = %v, want ErrNoPendingDeletion", err)
	}
}

func TestConfirmFailureKeepsPending(t *testing.T) {
	engine, store := newEngine(t)
	session := forms.NewSession()
	ctx := context.Background()

	id := testsupport.SeedNamed(t, store, catalog.KindMoods, "Wistful")
	if _, err := engine.RequestDelete(ctx, session, catalog.KindMoods, id); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}

	// The row vanishes out from under the pending request.
	if err := store.Delete(ctx, catalog.Get(catalog.KindMoods).Worksheet(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := engine.ConfirmDelete(ctx, session, catalog.KindMoods); err == nil {
		t.Fatal("expected confirm to fail for missing row")
	}
	if _, ok := session.Pending(catalog.KindMoods); !ok {
		t.Fatal("pending marker should survive a failed confirm")
	}
}

func TestPendingDeletionsAreScopedPerKind(t *testing.T) {
	engine, store := newEngine(t)
	session := forms.NewSession()
	ctx := context.Background()

	moodID := testsupport.SeedNamed(t, store, catalog.KindMoods, "Wistful")
	themeID := testsupport.SeedNamed(t, store, catalog.KindThemes, "Night")

	if _, err := engine.RequestDelete(ctx, session, catalog.KindMoods, moodID); err != nil {
		t.Fatalf("RequestDelete moods: %v", err)
	}
	if _, err := engine.RequestDelete(ctx, session, catalog.KindThemes, themeID); err != nil {
		t.Fatalf("RequestDelete themes: %v", err)
	}

	if _, err := engine.ConfirmDelete(ctx, session, catalog.KindMoods); err != nil {
		t.Fatalf("ConfirmDelete moods: %v", err)
	}
	// The themes request is untouched by the moods confirmation.
	if _, ok := session.Pending(catalog.KindThemes); !ok {
		t.Fatal("themes pending marker lost")
	}
}

func TestRequestDeleteUnknownRecord(t *testing.T) {
	engine, _ := newEngine(t)
	session := forms.NewSession()

	if _, err := engine.RequestDelete(context.Background(), session, catalog.KindMoods, "absent"); err == nil {
		t.Fatal("expected error for unknown record")
	}
	if _, ok := session.Pending(catalog.KindMoods); ok {
		t.Fatal("failed request must not set a pending marker")
	}
}
