package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/internal/repository/memory"
)

func seed(t *testing.T, repo domain.ContactRepository, n int) []domain.ContactSubmission {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created := make([]domain.ContactSubmission, 0, n)
	for i := 0; i < n; i++ {
		s := domain.ContactSubmission{
			ID:          fmt.Sprintf("sub-%03d", i),
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			ProjectType: "Consulting",
			Message:     "I need help building an internal tool.",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, repo.Create(context.Background(), &s))
		created = append(created, s)
	}
	return created
}

func TestGetAllOrdering(t *testing.T) {
	repo := memory.NewContactRepository()
	created := seed(t, repo, 5)

	all, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 5)

	// Newest first: the last created submission leads
	assert.Equal(t, created[4].ID, all[0].ID)
	assert.Equal(t, created[0].ID, all[4].ID)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt))
	}
}

func TestGetAllIsIdempotent(t *testing.T) {
	repo := memory.NewContactRepository()
	seed(t, repo, 3)

	first, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	second, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFetchReconstructsGetAll(t *testing.T) {
	repo := memory.NewContactRepository()
	seed(t, repo, 7)

	all, err := repo.GetAll(context.Background())
	assert.NoError(t, err)

	for _, pageSize := range []int{1, 2, 3, 5, 100} {
		var paged []domain.ContactSubmission
		for offset := 0; ; offset += pageSize {
			items, total, err := repo.Fetch(context.Background(), pageSize, offset)
			assert.NoError(t, err)
			assert.Equal(t, int64(7), total)
			if len(items) == 0 {
				break
			}
			paged = append(paged, items...)
		}
		assert.Equal(t, all, paged, "pageSize %d", pageSize)
	}
}

func TestFetchBeyondEnd(t *testing.T) {
	repo := memory.NewContactRepository()
	seed(t, repo, 2)

	items, total, err := repo.Fetch(context.Background(), 10, 50)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(2), total)
}

func TestGetByID(t *testing.T) {
	repo := memory.NewContactRepository()
	created := seed(t, repo, 3)

	t.Run("Should return the matching submission", func(t *testing.T) {
		got, err := repo.GetByID(context.Background(), created[1].ID)
		assert.NoError(t, err)
		assert.Equal(t, created[1], *got)
	})

	t.Run("Should return ErrNotFound for unknown ids", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestConcurrentCreate(t *testing.T) {
	repo := memory.NewContactRepository()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			s := domain.ContactSubmission{
				ID:          fmt.Sprintf("concurrent-%03d", i),
				Name:        "Jane Doe",
				Email:       "jane@example.com",
				ProjectType: "Consulting",
				Message:     "I need help building an internal tool.",
				CreatedAt:   time.Now().UTC(),
			}
			assert.NoError(t, repo.Create(context.Background(), &s))
		}(i)
	}
	wg.Wait()

	all, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, workers)

	seen := make(map[string]bool, workers)
	for _, s := range all {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}
