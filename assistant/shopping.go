package assistant

import "time"

// ReminderCheckInterval is how often the UI polls DueReminders.
const ReminderCheckInterval = 10 * time.Second

// ShoppingItem is one entry on the neurodivergent mode's visual list.
type ShoppingItem struct {
	ID            int64
	Name          string
	Emoji         string
	ReminderAfter time.Duration
	Completed     bool
	CreatedAt     time.Time
}

// ShoppingList holds the client-local shopping list with per-item reminders.
// Entirely browser-state in the original; nothing here touches the backend.
type ShoppingList struct {
	items  []ShoppingItem
	nextID int64
}

func NewShoppingList() *ShoppingList {
	return &ShoppingList{nextID: 1}
}

// Add appends an item and schedules its reminder relative to now.
// Blank names are ignored, mirroring the original form guard.
func (l *ShoppingList) Add(name, emoji string, reminderAfter time.Duration, now time.Time) *ShoppingItem {
	if name == "" {
		return nil
	}

	item := ShoppingItem{
		ID:            l.nextID,
		Name:          name,
		Emoji:         emoji,
		ReminderAfter: reminderAfter,
		CreatedAt:     now,
	}
	l.nextID++
	l.items = append(l.items, item)
	return &item
}

// Toggle flips an item's completed flag. Returns false for unknown ids.
func (l *ShoppingList) Toggle(id int64) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			return true
		}
	}
	return false
}

// Items returns the list in insertion order.
func (l *ShoppingList) Items() []ShoppingItem {
	items := make([]ShoppingItem, len(l.items))
	copy(items, l.items)
	return items
}

// DueReminders returns every uncompleted item whose reminder time has
// elapsed as of now. Completing the item is what clears the reminder.
func (l *ShoppingList) DueReminders(now time.Time) []ShoppingItem {
	var due []ShoppingItem
	for _, item := range l.items {
		if item.Completed {
			continue
		}
		if !now.Before(item.CreatedAt.Add(item.ReminderAfter)) {
			due = append(due, item)
		}
	}
	return due
}
