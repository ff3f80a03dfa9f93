package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	d, err := Open(Config{
		Path:         filepath.Join(t.TempDir(), "todos.sqlite"),
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestInsertTodo(t *testing.T) {
	d := openTestDB(t)

	todo, err := d.InsertTodo("Buy milk")
	require.NoError(t, err)
	require.NotEmpty(t, todo.ID)
	require.Equal(t, "Buy milk", todo.Title)
	require.False(t, todo.Completed)
	require.NotZero(t, todo.CreatedAt)

	got, err := d.GetTodo(todo.ID)
	require.NoError(t, err)
	require.Equal(t, todo, got)
}

func TestInsertTodoTrimsTitle(t *testing.T) {
	d := openTestDB(t)

	todo, err := d.InsertTodo("  Buy milk  ")
	require.NoError(t, err)
	require.Equal(t, "Buy milk", todo.Title)
}

func TestInsertTodoRejectsEmptyTitle(t *testing.T) {
	d := openTestDB(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := d.InsertTodo(title)
		require.ErrorIs(t, err, ErrEmptyTitle)
	}

	// Store untouched by the rejected inserts
	todos, err := d.ListTodos()
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestGetTodoNotFound(t *testing.T) {
	d := openTestDB(t)

	_, err := d.GetTodo("b5bd33b7-24ea-4a86-8729-0a5d4c83de20")
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestListTodosEmpty(t *testing.T) {
	d := openTestDB(t)

	todos, err := d.ListTodos()
	require.NoError(t, err)
	require.NotNil(t, todos)
	require.Empty(t, todos)
}

func TestListTodosOrder(t *testing.T) {
	d := openTestDB(t)

	first, err := d.InsertTodo("first")
	require.NoError(t, err)
	second, err := d.InsertTodo("second")
	require.NoError(t, err)
	third, err := d.InsertTodo("third")
	require.NoError(t, err)

	want := []string{first.ID, second.ID, third.ID}

	// Ordering must be stable across repeated calls
	for i := 0; i < 3; i++ {
		todos, err := d.ListTodos()
		require.NoError(t, err)
		require.Len(t, todos, 3)
		for j, tt := range todos {
			require.Equal(t, want[j], tt.ID)
		}
	}
}

func TestUpdateTodoTitle(t *testing.T) {
	d := openTestDB(t)

	todo, err := d.InsertTodo("Buy milk")
	require.NoError(t, err)

	updated, err := d.UpdateTodoTitle(todo.ID, "Buy oat milk")
	require.NoError(t, err)
	require.Equal(t, "Buy oat milk", updated.Title)
	require.Equal(t, todo.ID, updated.ID)
	require.Equal(t, todo.CreatedAt, updated.CreatedAt)

	got, err := d.GetTodo(todo.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy oat milk", got.Title)
}

func TestUpdateTodoTitleRejectsEmpty(t *testing.T) {
	d := openTestDB(t)

	todo, err := d.InsertTodo("Buy milk")
	require.NoError(t, err)

	_, err = d.UpdateTodoTitle(todo.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyTitle)

	// Prior state unchanged
	got, err := d.GetTodo(todo.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", got.Title)
}

func TestUpdateTodoTitleNotFound(t *testing.T) {
	d := openTestDB(t)

	_, err := d.UpdateTodoTitle("b5bd33b7-24ea-4a86-8729-0a5d4c83de20", "anything")
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestToggleTodoIsInvolutive(t *testing.T) {
	d := openTestDB(t)

	todo, err := d.InsertTodo("Buy milk")
	require.NoError(t, err)

	toggled, err := d.ToggleTodo(todo.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = d.ToggleTodo(todo.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)
}

func TestToggleTodoNotFound(t *testing.T) {
	d := openTestDB(t)

	_, err := d.ToggleTodo("b5bd33b7-24ea-4a86-8729-0a5d4c83de20")
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDeleteTodo(t *testing.T) {
	d := openTestDB(t)

	todo, err := d.InsertTodo("Buy milk")
	require.NoError(t, err)

	require.NoError(t, d.DeleteTodo(todo.ID))

	_, err = d.GetTodo(todo.ID)
	require.ErrorIs(t, err, ErrTodoNotFound)

	// Repeated delete of the same id must fail
	require.ErrorIs(t, d.DeleteTodo(todo.ID), ErrTodoNotFound)
}

func TestDeleteCompletedTodos(t *testing.T) {
	d := openTestDB(t)

	keep, err := d.InsertTodo("keep")
	require.NoError(t, err)
	done1, err := d.InsertTodo("done one")
	require.NoError(t, err)
	done2, err := d.InsertTodo("done two")
	require.NoError(t, err)

	_, err = d.ToggleTodo(done1.ID)
	require.NoError(t, err)
	_, err = d.ToggleTodo(done2.ID)
	require.NoError(t, err)

	removed, err := d.DeleteCompletedTodos()
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	todos, err := d.ListTodos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, keep.ID, todos[0].ID)

	// Nothing completed left: count 0, store unchanged
	removed, err = d.DeleteCompletedTodos()
	require.NoError(t, err)
	require.Zero(t, removed)

	todos, err = d.ListTodos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
}

func TestSetAllCompleted(t *testing.T) {
	d := openTestDB(t)

	_, err := d.InsertTodo("one")
	require.NoError(t, err)
	_, err = d.InsertTodo("two")
	require.NoError(t, err)

	require.NoError(t, d.SetAllCompleted(true))

	remaining, completed, err := d.CountTodos()
	require.NoError(t, err)
	require.Zero(t, remaining)
	require.Equal(t, 2, completed)

	require.NoError(t, d.SetAllCompleted(false))

	remaining, completed, err = d.CountTodos()
	require.NoError(t, err)
	require.Equal(t, 2, remaining)
	require.Zero(t, completed)
}

func TestCountTodosEmpty(t *testing.T) {
	d := openTestDB(t)

	remaining, completed, err := d.CountTodos()
	require.NoError(t, err)
	require.Zero(t, remaining)
	require.Zero(t, completed)
}

func TestIDsAreUniqueAndNotReused(t *testing.T) {
	d := openTestDB(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		todo, err := d.InsertTodo("item")
		require.NoError(t, err)
		require.False(t, seen[todo.ID])
		seen[todo.ID] = true
		require.NoError(t, d.DeleteTodo(todo.ID))
	}
}
