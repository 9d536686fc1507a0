package orders

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"

	"github.com/superma0035/zapdine/pkg/types"
)

// Memory keeps restaurants, menus and orders in process. It backs local
// development and the transport tests when no database is configured.
type Memory struct {
	mu          sync.RWMutex
	clock       clockwork.Clock
	owners      map[string]string
	menus       map[string][]types.MenuItem
	orders      []types.Order
	failCreates error
}

func NewMemory(clock clockwork.Clock) *Memory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Memory{
		clock:  clock,
		owners: make(map[string]string),
		menus:  make(map[string][]types.MenuItem),
	}
}

func (m *Memory) AddRestaurant(id, ownerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[id] = ownerID
}

func (m *Memory) AddMenuItem(item types.MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menus[item.RestaurantID] = append(m.menus[item.RestaurantID], item)
}

// FailCreates makes every CreateOrder fail with err until called with nil.
func (m *Memory) FailCreates(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCreates = err
}

func (m *Memory) CreateOrder(_ context.Context, order types.NewOrder) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCreates != nil {
		return "", fmt.Errorf("%w: %w", types.ErrOrderCreationFailed, m.failCreates)
	}
	if len(order.Items) == 0 {
		return "", fmt.Errorf("%w: %w", types.ErrOrderCreationFailed, types.ErrEmptyCart)
	}
	if _, ok := m.owners[order.RestaurantID]; !ok {
		return "", fmt.Errorf("%w: %w", types.ErrOrderCreationFailed, types.ErrRestaurantNotFound)
	}

	now := m.clock.Now().UTC()
	o := types.Order{
		ID:           uuid.NewString(),
		RestaurantID: order.RestaurantID,
		TableNumber:  order.TableNumber,
		TotalAmount:  order.TotalAmount,
		Status:       types.OrderPending,
		Notes:        order.Notes,
		Items:        append([]types.OrderItem(nil), order.Items...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.orders = append(m.orders, o)
	return o.ID, nil
}

func (m *Memory) ListTodaysOrders(_ context.Context, restaurantID, ownerID string) ([]types.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.authorize(restaurantID, ownerID); err != nil {
		return nil, err
	}
	since := startOfDay(m.clock.Now())

	out := []types.Order{}
	for _, o := range m.orders {
		if o.RestaurantID == restaurantID && !o.CreatedAt.Before(since) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateStatus(_ context.Context, orderID, ownerID string, status types.OrderStatus) (types.Order, error) {
	if !status.Valid() {
		return types.Order{}, types.ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		o := &m.orders[i]
		if o.ID != orderID {
			continue
		}
		if m.owners[o.RestaurantID] != ownerID {
			return types.Order{}, types.ErrOrderNotFound
		}
		o.Status = status
		o.UpdatedAt = m.clock.Now().UTC()
		return *o, nil
	}
	return types.Order{}, types.ErrOrderNotFound
}

func (m *Memory) ListAvailable(_ context.Context, restaurantID string) ([]types.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []types.MenuItem{}
	for _, item := range m.menus[restaurantID] {
		if item.IsAvailable {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (m *Memory) GetAvailable(_ context.Context, restaurantID, itemID string) (types.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.menus[restaurantID] {
		if item.ID == itemID && item.IsAvailable {
			return item, nil
		}
	}
	return types.MenuItem{}, types.ErrItemNotFound
}

func (m *Memory) authorize(restaurantID, ownerID string) error {
	owner, ok := m.owners[restaurantID]
	if !ok {
		return types.ErrRestaurantNotFound
	}
	if owner != ownerID {
		return types.ErrForbidden
	}
	return nil
}

type seedFile struct {
	Restaurants []struct {
		ID      string `yaml:"id"`
		OwnerID string `yaml:"owner_id"`
		Menu    []struct {
			ID          string  `yaml:"id"`
			Name        string  `yaml:"name"`
			Description string  `yaml:"description"`
			Price       float64 `yaml:"price"`
			ImageURL    string  `yaml:"image_url"`
			Unavailable bool    `yaml:"unavailable"`
			SortOrder   int     `yaml:"sort_order"`
		} `yaml:"menu"`
	} `yaml:"restaurants"`
}

// LoadSeed fills the store from a YAML file of restaurants and their menus.
// Prices are given in rupees.
func (m *Memory) LoadSeed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed %s: %w", path, err)
	}
	for _, r := range seed.Restaurants {
		m.AddRestaurant(r.ID, r.OwnerID)
		for _, item := range r.Menu {
			id := item.ID
			if id == "" {
				id = uuid.NewString()
			}
			m.AddMenuItem(types.MenuItem{
				ID:           id,
				RestaurantID: r.ID,
				Name:         item.Name,
				Description:  item.Description,
				Price:        types.Amount(item.Price*100 + 0.5),
				ImageURL:     item.ImageURL,
				IsAvailable:  !item.Unavailable,
				SortOrder:    item.SortOrder,
			})
		}
	}
	return nil
}
