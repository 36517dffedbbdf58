package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/service"
)

// listOnlyUserStore backs the pagination tests; the write methods are
// never reached.
type listOnlyUserStore struct {
	service.UserStore
	users []model.User
}

func (s *listOnlyUserStore) ListPaginated(_ context.Context, limit, offset int) ([]model.User, int, error) {
	total := len(s.users)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return s.users[offset:end], total, nil
}

func TestUserListPagination(t *testing.T) {
	users := make([]model.User, 25)
	for i := range users {
		users[i] = model.User{ID: i + 1}
	}
	svc := service.NewUserService(&listOnlyUserStore{users: users})

	page, pagination, err := svc.List(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page, 10)
	assert.Equal(t, 25, pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)

	page, pagination, err = svc.List(t.Context(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, pagination.Page)
}

func TestUserListClampsBadInput(t *testing.T) {
	svc := service.NewUserService(&listOnlyUserStore{users: []model.User{{ID: 1}}})

	// Nonsense paging falls back to sane defaults.
	page, pagination, err := svc.List(t.Context(), -3, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.PerPage)

	_, pagination, err = svc.List(t.Context(), 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, pagination.PerPage)
}

func TestUserListEmptyIsNotNil(t *testing.T) {
	svc := service.NewUserService(&listOnlyUserStore{})

	page, pagination, err := svc.List(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 0, pagination.TotalItems)
	assert.Equal(t, 0, pagination.TotalPages)
}
