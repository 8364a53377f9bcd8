package domain

// PageSize is the default number of tasks per page.
const PageSize = 10

// PageCount returns the number of pages needed for n items.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PageSlice returns the contiguous window [page*size, page*size+size) of tasks.
// The page index is not validated: an out-of-range page yields an empty slice.
func PageSlice(tasks []*Task, page, size int) []*Task {
	if page < 0 || size <= 0 {
		return []*Task{}
	}
	start := page * size
	if start >= len(tasks) {
		return []*Task{}
	}
	end := start + size
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end:end]
}
