package assistant

import (
	"testing"
	"time"
)

func TestShoppingListAddAndToggle(t *testing.T) {
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	list := NewShoppingList()

	milk := list.Add("Milk", "🥛", 10*time.Minute, now)
	bread := list.Add("Bread", "🍞", 15*time.Minute, now)
	if milk == nil || bread == nil {
		t.Fatal("items should be added")
	}
	if milk.ID == bread.ID {
		t.Errorf("ids collide: %d", milk.ID)
	}

	if !list.Toggle(milk.ID) {
		t.Error("toggle of known id failed")
	}
	if list.Toggle(999) {
		t.Error("toggle of unknown id succeeded")
	}

	items := list.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if !items[0].Completed {
		t.Error("milk should be completed")
	}
	if items[1].Completed {
		t.Error("bread should not be completed")
	}
}

func TestShoppingListIgnoresBlankName(t *testing.T) {
	list := NewShoppingList()
	if item := list.Add("", "🛒", time.Minute, time.Now()); item != nil {
		t.Errorf("blank name added: %+v", item)
	}
	if len(list.Items()) != 0 {
		t.Errorf("len = %d, want 0", len(list.Items()))
	}
}

func TestDueReminders(t *testing.T) {
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	list := NewShoppingList()

	milk := list.Add("Milk", "🥛", 10*time.Minute, now)
	list.Add("Bread", "🍞", 30*time.Minute, now)
	apples := list.Add("Apples", "🍎", 5*time.Minute, now)

	// Before any reminder elapses
	if due := list.DueReminders(now.Add(4 * time.Minute)); len(due) != 0 {
		t.Errorf("due = %v, want none", due)
	}

	// Apples at 5 minutes, milk at 10
	due := list.DueReminders(now.Add(12 * time.Minute))
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].ID != milk.ID || due[1].ID != apples.ID {
		t.Errorf("due ids = %d,%d want %d,%d", due[0].ID, due[1].ID, milk.ID, apples.ID)
	}

	// Completing an item clears its reminder
	list.Toggle(milk.ID)
	due = list.DueReminders(now.Add(12 * time.Minute))
	if len(due) != 1 || due[0].ID != apples.ID {
		t.Errorf("due after completion = %v", due)
	}
}
