package client

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/models"
	"github.com/BruksfildServices01/clients-api/internal/pagination"
)

// memoryRepo is an in-memory domain.Repository for use case tests.
// referenced ids reject deletion the way a foreign key would.
type memoryRepo struct {
	mu         sync.Mutex
	rows       map[uint]models.Client
	nextID     uint
	referenced map[uint]bool

	txCalls   int
	readOnlys []bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		rows:       map[uint]models.Client{},
		nextID:     1,
		referenced: map[uint]bool{},
	}
}

func (r *memoryRepo) FindByID(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &c, nil
}

func (r *memoryRepo) GetReferenceByID(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &models.Client{ID: id}, nil
}

func (r *memoryRepo) FindAll(_ context.Context, req pagination.Request) ([]models.Client, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]models.Client, 0, len(r.rows))
	for _, c := range r.rows {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start := req.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *memoryRepo) Save(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	} else if _, ok := r.rows[c.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *memoryRepo) DeleteByID(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.referenced[id] {
		return domain.ErrIntegrityViolation
	}
	if _, ok := r.rows[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memoryRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.rows[id]
	return ok, nil
}

func (r *memoryRepo) Transaction(_ context.Context, readOnly bool, fn func(domain.Repository) error) error {
	r.mu.Lock()
	r.txCalls++
	r.readOnlys = append(r.readOnlys, readOnly)
	r.mu.Unlock()

	return fn(r)
}

var _ domain.Repository = (*memoryRepo)(nil)
