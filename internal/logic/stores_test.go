package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statustable/internal/domain"
)

func TestMemoryFindingStoreReplace(t *testing.T) {
	s := NewMemoryFindingStore()
	assert.Empty(t, s.FindAll())
	assert.Equal(t, domain.NoWorkspace, s.Workspace())

	s.Replace(4, []domain.Finding{{ID: 1, WorkspaceID: 4}, {ID: 2, WorkspaceID: 4}})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, domain.WorkspaceID(4), s.Workspace())

	s.Replace(5, []domain.Finding{{ID: 3, WorkspaceID: 5}})
	all := s.FindAll()
	if assert.Len(t, all, 1) {
		assert.Equal(t, int64(3), all[0].ID)
	}

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, domain.NoWorkspace, s.Workspace())
}

func TestMemoryFindingStoreReturnsCopies(t *testing.T) {
	input := []domain.Finding{{ID: 1, Host: "10.0.0.1"}}
	s := NewMemoryFindingStore()
	s.Replace(1, input)

	input[0].Host = "changed"
	out := s.FindAll()
	out[0].Host = "changed too"

	assert.Equal(t, "10.0.0.1", s.FindAll()[0].Host)
}
