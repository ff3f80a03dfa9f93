// Package todo holds the application logic between the HTTP handlers
// and the store: each user command becomes store operations plus a view
// describing exactly what has to be re-rendered.
package todo

import "github.com/hypertodo/hypertodo/db"

// Store is the persistence contract the service depends on,
// implemented by *db.DB.
type Store interface {
	InsertTodo(title string) (*db.Todo, error)
	GetTodo(id string) (*db.Todo, error)
	ListTodos() ([]db.Todo, error)
	UpdateTodoTitle(id string, title string) (*db.Todo, error)
	ToggleTodo(id string) (*db.Todo, error)
	SetAllCompleted(completed bool) error
	DeleteTodo(id string) error
	DeleteCompletedTodos() (int64, error)
	CountTodos() (remaining int, completed int, err error)
}

// ListView is the render scope for full-list responses
type ListView struct {
	Items     []db.Todo
	Filter    Filter
	Remaining int
	Completed int
}

// AllDone reports whether every item in the store is completed.
// Drives the checked state of the toggle-all control.
func (v *ListView) AllDone() bool {
	return v.Remaining == 0 && v.Completed > 0
}

// ItemView is the render scope for single-item responses. Item is nil
// for responses that only carry updated counts (delete).
type ItemView struct {
	Item      *db.Todo
	Remaining int
	Completed int
}

// Service translates user commands into store operations. It adds no
// error kinds of its own: store errors propagate unchanged so the
// router stays the single place that maps them to HTTP statuses.
type Service struct {
	store Store
}

// NewService creates a todo service backed by the given store
func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) listView(filter Filter) (*ListView, error) {
	items, err := s.store.ListTodos()
	if err != nil {
		return nil, err
	}
	remaining, completed, err := s.store.CountTodos()
	if err != nil {
		return nil, err
	}
	return &ListView{
		Items:     filter.Apply(items),
		Filter:    filter,
		Remaining: remaining,
		Completed: completed,
	}, nil
}

func (s *Service) itemView(item *db.Todo) (*ItemView, error) {
	remaining, completed, err := s.store.CountTodos()
	if err != nil {
		return nil, err
	}
	return &ItemView{Item: item, Remaining: remaining, Completed: completed}, nil
}

// List returns the current list view for the given filter.
// Also serves the set-filter command, which touches no state.
func (s *Service) List(filter Filter) (*ListView, error) {
	return s.listView(filter)
}

// Create inserts a new item and returns the refreshed full list view
func (s *Service) Create(title string) (*ListView, error) {
	if _, err := s.store.InsertTodo(title); err != nil {
		return nil, err
	}
	return s.listView(FilterAll)
}

// Toggle flips an item's completed flag and returns the item together
// with the updated counts.
func (s *Service) Toggle(id string) (*ItemView, error) {
	item, err := s.store.ToggleTodo(id)
	if err != nil {
		return nil, err
	}
	return s.itemView(item)
}

// Edit sets a new title on an item and returns it
func (s *Service) Edit(id string, title string) (*ItemView, error) {
	item, err := s.store.UpdateTodoTitle(id, title)
	if err != nil {
		return nil, err
	}
	return s.itemView(item)
}

// Delete removes an item. The returned view carries only the updated
// counts; the client removes the element itself.
func (s *Service) Delete(id string) (*ItemView, error) {
	if err := s.store.DeleteTodo(id); err != nil {
		return nil, err
	}
	return s.itemView(nil)
}

// ClearCompleted removes every completed item and returns the
// refreshed list view.
func (s *Service) ClearCompleted(filter Filter) (*ListView, error) {
	if _, err := s.store.DeleteCompletedTodos(); err != nil {
		return nil, err
	}
	return s.listView(filter)
}

// ToggleAll marks every item completed, or every item active when all
// are already completed, and returns the refreshed list view.
func (s *Service) ToggleAll(filter Filter) (*ListView, error) {
	remaining, _, err := s.store.CountTodos()
	if err != nil {
		return nil, err
	}
	if err := s.store.SetAllCompleted(remaining > 0); err != nil {
		return nil, err
	}
	return s.listView(filter)
}
