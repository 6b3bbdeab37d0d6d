package members

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blkout/hub/internal/models"
)

// Directory is the in-memory member store. It owns all member records.
type Directory struct {
	mu    sync.RWMutex
	byID  map[string]*models.Member
	order []string
}

// NewDirectory builds a directory from an initial dataset.
// Member ids must be unique and ages non-negative.
func NewDirectory(seed []models.Member) (*Directory, error) {
	d := &Directory{byID: make(map[string]*models.Member, len(seed))}
	for _, m := range seed {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: member id is required", models.ErrInvalidInput)
		}
		if m.Age < 0 {
			return nil, fmt.Errorf("%w: member %s has negative age", models.ErrInvalidInput, m.ID)
		}
		if _, dup := d.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate member id %s", models.ErrInvalidInput, m.ID)
		}
		c := m.Clone()
		d.byID[m.ID] = &c
		d.order = append(d.order, m.ID)
	}
	return d, nil
}

// Get returns a member by ID.
func (d *Directory) Get(_ context.Context, id string) (*models.Member, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrMemberNotFound, id)
	}
	c := m.Clone()
	return &c, nil
}

// List returns all members in insertion order.
func (d *Directory) List(_ context.Context) ([]models.Member, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	list := make([]models.Member, 0, len(d.order))
	for _, id := range d.order {
		list = append(list, d.byID[id].Clone())
	}
	return list, nil
}

// Touch records activity for a member at the given time.
func (d *Directory) Touch(_ context.Context, id string, at time.Time) (*models.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrMemberNotFound, id)
	}
	if at.After(m.LastActiveAt) {
		m.LastActiveAt = at
	}
	c := m.Clone()
	return &c, nil
}

// Len returns the number of members.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.order)
}
