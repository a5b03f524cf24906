// Package memory provides an in-process ContactRepository used when no
// DATABASE_URL is configured. Submissions do not survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"kitji-studios-backend/internal/domain"
)

type contactRepo struct {
	mu          sync.RWMutex
	submissions []domain.ContactSubmission
}

func NewContactRepository() domain.ContactRepository {
	return &contactRepo{}
}

func (r *contactRepo) Create(_ context.Context, submission *domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *contactRepo) GetAll(_ context.Context) ([]domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedDesc(), nil
}

func (r *contactRepo) Fetch(_ context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedDesc()
	total := int64(len(all))

	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *contactRepo) GetByID(_ context.Context, id string) (*domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.submissions {
		if r.submissions[i].ID == id {
			s := r.submissions[i]
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

// sortedDesc returns a copy ordered by CreatedAt descending. Callers must
// hold at least a read lock.
func (r *contactRepo) sortedDesc() []domain.ContactSubmission {
	out := make([]domain.ContactSubmission, len(r.submissions))
	copy(out, r.submissions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
