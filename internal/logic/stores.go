package logic

import (
	"sync"

	"statustable/internal/domain"
)

// MemoryFindingStore is an in-memory implementation of FindingModel.
// The host replaces its contents whenever a workspace is loaded.
type MemoryFindingStore struct {
	mu        sync.RWMutex
	workspace domain.WorkspaceID
	findings  []domain.Finding
}

// NewMemoryFindingStore creates an empty store
func NewMemoryFindingStore() *MemoryFindingStore {
	return &MemoryFindingStore{
		workspace: domain.NoWorkspace,
		findings:  make([]domain.Finding, 0),
	}
}

// FindAll returns a copy of every finding currently held
func (s *MemoryFindingStore) FindAll() []domain.Finding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Finding, len(s.findings))
	copy(result, s.findings)
	return result
}

// Replace swaps the store contents for the findings of one workspace
func (s *MemoryFindingStore) Replace(workspace domain.WorkspaceID, findings []domain.Finding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workspace = workspace
	s.findings = make([]domain.Finding, len(findings))
	copy(s.findings, findings)
}

// Clear empties the store
func (s *MemoryFindingStore) Clear() {
	s.Replace(domain.NoWorkspace, nil)
}

// Workspace returns the workspace the current contents belong to
func (s *MemoryFindingStore) Workspace() domain.WorkspaceID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspace
}

// Len returns the number of findings held
func (s *MemoryFindingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.findings)
}
