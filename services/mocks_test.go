package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nmercier/bistro-site-backend/models"
	"github.com/nmercier/bistro-site-backend/storage"
)

// In-memory fakes for the repository and asset store ports.

type mockDishRepo struct {
	dishes map[uint]*models.Dish
	nextID uint
}

func newMockDishRepo() *mockDishRepo {
	return &mockDishRepo{dishes: make(map[uint]*models.Dish), nextID: 1}
}

func (m *mockDishRepo) FindAllByPosition() ([]models.Dish, error) {
	out := make([]models.Dish, 0, len(m.dishes))
	for _, d := range m.dishes {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *mockDishRepo) FindByID(id uint) (*models.Dish, error) {
	d, ok := m.dishes[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (m *mockDishRepo) Create(dish *models.Dish) error {
	dish.ID = m.nextID
	m.nextID++
	copied := *dish
	m.dishes[dish.ID] = &copied
	return nil
}

func (m *mockDishRepo) Update(dish *models.Dish) error {
	copied := *dish
	m.dishes[dish.ID] = &copied
	return nil
}

func (m *mockDishRepo) Delete(id uint) error {
	delete(m.dishes, id)
	return nil
}

type mockEventRepo struct {
	events map[uint]*models.Event
	nextID uint
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[uint]*models.Event), nextID: 1}
}

func (m *mockEventRepo) FindAll() ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *mockEventRepo) FindUpcoming(from time.Time) ([]models.Event, error) {
	all, _ := m.FindAll()
	out := make([]models.Event, 0, len(all))
	for _, e := range all {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) FindByID(id uint) (*models.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (m *mockEventRepo) Create(event *models.Event) error {
	event.ID = m.nextID
	m.nextID++
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockEventRepo) Update(event *models.Event) error {
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockEventRepo) Delete(id uint) error {
	delete(m.events, id)
	return nil
}

type mockMenuRepo struct {
	menus  map[uint]*models.WeeklyMenu
	nextID uint
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{menus: make(map[uint]*models.WeeklyMenu), nextID: 1}
}

func (m *mockMenuRepo) FindAll() ([]models.WeeklyMenu, error) {
	out := make([]models.WeeklyMenu, 0, len(m.menus))
	for _, menu := range m.menus {
		out = append(out, *menu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockMenuRepo) FindCurrent() (*models.WeeklyMenu, error) {
	all, _ := m.FindAll()
	if len(all) == 0 {
		return nil, nil
	}
	latest := all[len(all)-1]
	return &latest, nil
}

func (m *mockMenuRepo) Create(menu *models.WeeklyMenu) error {
	menu.ID = m.nextID
	m.nextID++
	copied := *menu
	m.menus[menu.ID] = &copied
	return nil
}

func (m *mockMenuRepo) Delete(id uint) error {
	delete(m.menus, id)
	return nil
}

type mockSideRepo struct {
	sides  map[uint]*models.Side
	nextID uint
}

func newMockSideRepo() *mockSideRepo {
	return &mockSideRepo{sides: make(map[uint]*models.Side), nextID: 1}
}

func (m *mockSideRepo) FindAllByCategory() ([]models.Side, error) {
	out := make([]models.Side, 0, len(m.sides))
	for _, s := range m.sides {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockSideRepo) FindByID(id uint) (*models.Side, error) {
	s, ok := m.sides[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *mockSideRepo) Create(side *models.Side) error {
	side.ID = m.nextID
	m.nextID++
	copied := *side
	m.sides[side.ID] = &copied
	return nil
}

func (m *mockSideRepo) Update(side *models.Side) error {
	copied := *side
	m.sides[side.ID] = &copied
	return nil
}

func (m *mockSideRepo) Delete(id uint) error {
	delete(m.sides, id)
	return nil
}

type mockCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[uint]*models.Category), nextID: 1}
}

func (m *mockCategoryRepo) FindAllByName() ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCategoryRepo) FindByID(id uint) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *mockCategoryRepo) Create(category *models.Category) error {
	category.ID = m.nextID
	m.nextID++
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockCategoryRepo) Update(category *models.Category) error {
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockCategoryRepo) Delete(id uint) error {
	delete(m.categories, id)
	return nil
}

// mockStore records uploads and deletes, and can be told to fail either.
type mockStore struct {
	uploads   []storage.Asset
	deleted   []string
	uploadErr error
	deleteErr error
	counter   int
}

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) Upload(_ context.Context, folder string, obj storage.Object) (storage.Asset, error) {
	if m.uploadErr != nil {
		return storage.Asset{}, m.uploadErr
	}
	m.counter++
	asset := storage.Asset{
		URL:         fmt.Sprintf("https://assets.test/%s/object-%d", folder, m.counter),
		Name:        obj.Filename,
		ContentType: obj.ContentType,
	}
	m.uploads = append(m.uploads, asset)
	return asset, nil
}

func (m *mockStore) Delete(_ context.Context, fileURL string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, fileURL)
	return nil
}
