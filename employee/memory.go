package employee

import (
	"context"
	"sync"
)

// MemoryRepository is a Repository held in process memory. It is safe for
// concurrent use.
type MemoryRepository struct {
	lock      sync.RWMutex
	employees map[int64]Employee
}

// NewMemoryRepository creates a repository populated with the given
// employees. Later entries replace earlier entries with the same ID.
func NewMemoryRepository(seed ...Employee) *MemoryRepository {
	employees := make(map[int64]Employee, len(seed))
	for _, e := range seed {
		employees[e.ID] = e
	}
	return &MemoryRepository{employees: employees}
}

// FindByID resolves the ID using the internal mapping.
func (r *MemoryRepository) FindByID(_ context.Context, id int64) (Employee, bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	e, ok := r.employees[id]
	return e, ok, nil
}

// Insert adds the employee if the ID is not yet taken.
func (r *MemoryRepository) Insert(_ context.Context, e Employee) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.employees[e.ID]; ok {
		return false, nil
	}
	r.employees[e.ID] = e
	return true, nil
}
