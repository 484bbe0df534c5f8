package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/appetiteclub/storefront/internal/catalog"
)

// MockGroupRepo is a mock implementation of catalog.GroupRepo for testing
type MockGroupRepo struct {
	mu     sync.RWMutex
	groups map[string]*catalog.OptionGroup
	order  []string

	CreateFunc func(ctx context.Context, group *catalog.OptionGroup) error
	GetFunc    func(ctx context.Context, id string) (*catalog.OptionGroup, error)
	ListFunc   func(ctx context.Context) ([]*catalog.OptionGroup, error)
	SaveFunc   func(ctx context.Context, group *catalog.OptionGroup) error
	DeleteFunc func(ctx context.Context, id string) error
}

func NewMockGroupRepo() *MockGroupRepo {
	return &MockGroupRepo{
		groups: make(map[string]*catalog.OptionGroup),
	}
}

func (m *MockGroupRepo) Create(ctx context.Context, group *catalog.OptionGroup) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, group)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.groups[group.ID]; exists {
		return fmt.Errorf("option group %s already exists", group.ID)
	}
	m.groups[group.ID] = group
	m.order = append(m.order, group.ID)
	return nil
}

func (m *MockGroupRepo) Get(ctx context.Context, id string) (*catalog.OptionGroup, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	group, ok := m.groups[id]
	if !ok {
		return nil, fmt.Errorf("option group %s not found", id)
	}
	return group, nil
}

func (m *MockGroupRepo) List(ctx context.Context) ([]*catalog.OptionGroup, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*catalog.OptionGroup
	for _, id := range m.order {
		if group, ok := m.groups[id]; ok {
			result = append(result, group)
		}
	}
	return result, nil
}

func (m *MockGroupRepo) Save(ctx context.Context, group *catalog.OptionGroup) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, group)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.groups[group.ID]; !ok {
		return fmt.Errorf("option group %s not found", group.ID)
	}
	m.groups[group.ID] = group
	return nil
}

func (m *MockGroupRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.groups[id]; !ok {
		return fmt.Errorf("option group %s not found", id)
	}
	delete(m.groups, id)
	for i, gid := range m.order {
		if gid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// MockPublisher is a mock implementation of events.Publisher for testing
type MockPublisher struct {
	mu        sync.Mutex
	Published []PublishedMessage

	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

type PublishedMessage struct {
	Topic string
	Msg   []byte
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, PublishedMessage{Topic: topic, Msg: msg})
	return nil
}
