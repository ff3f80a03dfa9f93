package db

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
)

const todoColumns = "id, title, completed, created_at"

func scanTodo(row *sql.Row) (*Todo, error) {
	var t Todo
	err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// InsertTodo creates a new todo item. The title is trimmed; an empty
// result rejects the insert with ErrEmptyTitle and leaves the store
// unchanged. Ids are UUIDs and are never reused.
func (d *DB) InsertTodo(title string) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	t := &Todo{
		ID:        uuid.New().String(),
		Title:     title,
		Completed: false,
		CreatedAt: NowMs(),
	}

	query := "INSERT INTO todos (id, title, completed, created_at) VALUES (?, ?, ?, ?)"
	d.logQuery("run", query, t.ID, t.Title)
	_, err := d.sql.Exec(query, t.ID, t.Title, t.Completed, t.CreatedAt)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// GetTodo retrieves a todo item by id
func (d *DB) GetTodo(id string) (*Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE id = ?"
	d.logQuery("get", query, id)
	return scanTodo(d.sql.QueryRow(query, id))
}

// ListTodos returns all todo items in stable order: ascending
// created_at, ties broken by insertion order (inserts in the same
// millisecond share a timestamp). An empty store yields an empty slice.
func (d *DB) ListTodos() ([]Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos ORDER BY created_at, rowid"
	d.logQuery("select", query)

	rows, err := d.sql.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// UpdateTodoTitle sets a new title on an existing todo and returns the
// updated row. Fails with ErrTodoNotFound for unknown ids and
// ErrEmptyTitle when the trimmed title is empty; the row is untouched
// in both cases.
func (d *DB) UpdateTodoTitle(id string, title string) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	var t *Todo
	err := d.transaction(func(tx *sql.Tx) error {
		query := "UPDATE todos SET title = ? WHERE id = ?"
		d.logQuery("run", query, title, id)
		res, err := tx.Exec(query, title, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTodoNotFound
		}

		t = &Todo{}
		return tx.QueryRow("SELECT "+todoColumns+" FROM todos WHERE id = ?", id).
			Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ToggleTodo flips the completed flag of an existing todo and returns
// the updated row. The flip and the read-back run in one transaction,
// so concurrent toggles on the same id serialize: the final state
// always reflects the number of toggles applied.
func (d *DB) ToggleTodo(id string) (*Todo, error) {
	var t *Todo
	err := d.transaction(func(tx *sql.Tx) error {
		query := "UPDATE todos SET completed = NOT completed WHERE id = ?"
		d.logQuery("run", query, id)
		res, err := tx.Exec(query, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTodoNotFound
		}

		t = &Todo{}
		return tx.QueryRow("SELECT "+todoColumns+" FROM todos WHERE id = ?", id).
			Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SetAllCompleted marks every todo completed (or active) in one
// statement.
func (d *DB) SetAllCompleted(completed bool) error {
	query := "UPDATE todos SET completed = ?"
	d.logQuery("run", query, completed)
	_, err := d.sql.Exec(query, completed)
	return err
}

// DeleteTodo removes a todo item. Deleting an unknown id fails with
// ErrTodoNotFound, including a repeated delete of the same id.
func (d *DB) DeleteTodo(id string) error {
	query := "DELETE FROM todos WHERE id = ?"
	d.logQuery("run", query, id)
	res, err := d.sql.Exec(query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// DeleteCompletedTodos removes all completed todos and returns how many
// were removed. Never fails on an empty match.
func (d *DB) DeleteCompletedTodos() (int64, error) {
	query := "DELETE FROM todos WHERE completed = 1"
	d.logQuery("run", query)
	res, err := d.sql.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountTodos returns (remaining, completed) counts in one query
func (d *DB) CountTodos() (remaining int, completed int, err error) {
	query := `
		SELECT
			COALESCE(SUM(completed = 0), 0),
			COALESCE(SUM(completed = 1), 0)
		FROM todos
	`
	d.logQuery("count", query)
	err = d.sql.QueryRow(query).Scan(&remaining, &completed)
	return remaining, completed, err
}
