package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

func TestCreateItemRequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	_, err := f.items.Create(context.Background(), nil, service.ItemInput{Title: "hat", Price: 500})
	if !errors.Is(err, service.ErrNotAuthenticated) {
		t.Fatalf("anonymous create err = %v, want ErrNotAuthenticated", err)
	}

	items, err := f.items.Items(context.Background(), repository.ItemFilter{})
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("rejected create still persisted %d items", len(items))
	}
}

func TestCreateItemSetsOwner(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@example.com")

	item := f.createItem(t, alice, "Sick Hat", 500)
	if item.UserID != alice.ID {
		t.Errorf("owner = %s, want %s", item.UserID, alice.ID)
	}
}

func TestUpdateItemIsOwnerless(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@example.com")
	bob := f.signup(t, "bob", "bob@example.com")
	item := f.createItem(t, alice, "Sick Hat", 500)

	// update requires a session but deliberately not ownership
	title := "Renamed Hat"
	price := int64(700)
	updated, err := f.items.Update(context.Background(), bob, item.ID, service.ItemUpdates{Title: &title, Price: &price})
	if err != nil {
		t.Fatalf("non-owner update: %v", err)
	}
	if updated.Title != "Renamed Hat" || updated.Price != 700 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.ID != item.ID || updated.UserID != alice.ID {
		t.Errorf("update touched identity fields: %+v", updated)
	}

	if _, err := f.items.Update(context.Background(), nil, item.ID, service.ItemUpdates{Title: &title}); !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("anonymous update err = %v, want ErrNotAuthenticated", err)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@example.com")

	title := "x"
	if _, err := f.items.Update(context.Background(), alice, "nope", service.ItemUpdates{Title: &title}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("missing item err = %v, want ErrNotFound", err)
	}
}

func TestDeleteItemOwnership(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@example.com")
	bob := f.signup(t, "bob", "bob@example.com")
	item := f.createItem(t, alice, "Sick Hat", 500)

	// a non-owner without elevated permissions must be refused
	if _, err := f.items.Delete(context.Background(), bob, item.ID); !errors.Is(err, service.ErrNotAuthorized) {
		t.Fatalf("non-owner delete err = %v, want ErrNotAuthorized", err)
	}
	if _, err := f.items.Item(context.Background(), item.ID); err != nil {
		t.Fatalf("item vanished after refused delete: %v", err)
	}

	// the owner may delete
	deleted, err := f.items.Delete(context.Background(), alice, item.ID)
	if err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if deleted.ID != item.ID {
		t.Errorf("deleted wrong item %s", deleted.ID)
	}
	if _, err := f.items.Item(context.Background(), item.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("item still present after delete: %v", err)
	}
}

func TestDeleteItemWithElevatedPermission(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@example.com")
	moderator := f.signup(t, "mod", "mod@example.com")
	item := f.createItem(t, alice, "Sick Hat", 500)

	if err := f.userRepo.SetPermissions(context.Background(), moderator.ID, []string{model.PermissionUser, model.PermissionItemDelete}); err != nil {
		t.Fatalf("grant ITEMDELETE: %v", err)
	}
	moderator, err := f.users.ByID(context.Background(), moderator.ID)
	if err != nil {
		t.Fatalf("reload moderator: %v", err)
	}

	if _, err := f.items.Delete(context.Background(), moderator, item.ID); err != nil {
		t.Errorf("ITEMDELETE holder refused: %v", err)
	}
}

func TestItemsSearchAndPagination(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@example.com")
	f.createItem(t, alice, "Red Shoes", 1000)
	f.createItem(t, alice, "Blue Shoes", 1100)
	f.createItem(t, alice, "Green Hat", 500)

	search := "Shoes"
	found, err := f.items.Items(context.Background(), repository.ItemFilter{Search: &search})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("search matched %d items, want 2", len(found))
	}

	// description matches too
	search = "Hat description"
	found, err = f.items.Items(context.Background(), repository.ItemFilter{Search: &search})
	if err != nil {
		t.Fatalf("description search: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("description search matched %d items, want 1", len(found))
	}

	skip, first := int32(1), int32(1)
	page, err := f.items.Items(context.Background(), repository.ItemFilter{Skip: &skip, First: &first})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("page has %d items, want 1", len(page))
	}

	count, err := f.items.Count(context.Background(), repository.ItemFilter{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
