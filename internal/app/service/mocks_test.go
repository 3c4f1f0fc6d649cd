package service

import (
	"context"
	"fmt"
	"sync"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
)

// In-memory repository doubles. They return copies so services mutating a
// returned record never alias the stored one.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []model.User{}
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *memUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memComplaintRepo struct {
	mu         sync.Mutex
	complaints map[string]*model.Complaint
}

func newMemComplaintRepo() *memComplaintRepo {
	return &memComplaintRepo{complaints: map[string]*model.Complaint{}}
}

func (r *memComplaintRepo) Create(_ context.Context, complaint *model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *complaint
	r.complaints[complaint.ID] = &clone
	return nil
}

func (r *memComplaintRepo) FindByID(_ context.Context, id string) (*model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint, ok := r.complaints[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *complaint
	return &clone, nil
}

func (r *memComplaintRepo) List(_ context.Context) ([]model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaints := []model.Complaint{}
	for _, complaint := range r.complaints {
		complaints = append(complaints, *complaint)
	}
	return complaints, nil
}

func (r *memComplaintRepo) UpdateStatus(_ context.Context, id string, status model.ComplaintStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint, ok := r.complaints[id]
	if !ok {
		return common.ErrNotFound
	}
	complaint.Status = status
	return nil
}

type memNoticeRepo struct {
	mu      sync.Mutex
	notices map[string]*model.Notice
}

func newMemNoticeRepo() *memNoticeRepo {
	return &memNoticeRepo{notices: map[string]*model.Notice{}}
}

func (r *memNoticeRepo) Create(_ context.Context, notice *model.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *notice
	r.notices[notice.ID] = &clone
	return nil
}

func (r *memNoticeRepo) FindByID(_ context.Context, id string) (*model.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notice, ok := r.notices[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *notice
	return &clone, nil
}

func (r *memNoticeRepo) List(_ context.Context) ([]model.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notices := []model.Notice{}
	for _, notice := range r.notices {
		notices = append(notices, *notice)
	}
	return notices, nil
}

func (r *memNoticeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notices[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.notices, id)
	return nil
}

type memMenuRepo struct {
	mu           sync.Mutex
	menu         model.WeeklyMenu
	replaceCalls int
}

func newMemMenuRepo(menu model.WeeklyMenu) *memMenuRepo {
	return &memMenuRepo{menu: menu}
}

func (r *memMenuRepo) Get(_ context.Context) (model.WeeklyMenu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.menu) == 0 {
		return nil, common.ErrNotFound
	}
	out := model.WeeklyMenu{}
	for day, dm := range r.menu {
		out[day] = dm
	}
	return out, nil
}

func (r *memMenuRepo) Replace(_ context.Context, menu model.WeeklyMenu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceCalls++
	r.menu = menu
	return nil
}

type memEventPublisher struct {
	mu     sync.Mutex
	events []model.Event
}

func (p *memEventPublisher) Publish(_ context.Context, event model.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
