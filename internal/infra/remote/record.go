package remote

import "github.com/runoshun/taskboard/internal/domain"

// record is the wire shape of one task. Unknown fields are ignored.
type record struct {
	Title     string `json:"title"`
	ID        int    `json:"id"`
	OwnerID   int    `json:"userId"`
	Completed bool   `json:"completed"`
}

func (r record) toDomain() domain.Task {
	return domain.Task{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		Completed: r.Completed,
	}
}

// createRequest is the POST body for a new task.
type createRequest struct {
	Title     string `json:"title"`
	OwnerID   int    `json:"userId"`
	Completed bool   `json:"completed"`
}
