package db

import "time"

// Todo represents a todo item record
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}

// NowMs returns the current time as epoch milliseconds
func NowMs() int64 {
	return time.Now().UnixMilli()
}
