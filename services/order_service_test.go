package services

import (
	"errors"
	"testing"
	"time"

	"little-lemon-api/models"
	"little-lemon-api/policy"
)

type fakeOrderStore struct {
	orders      map[uint]*models.Order
	lastUpdate  map[string]interface{}
	placed      []uint
	listedAll   bool
	listedUser  uint
	listedCrew  uint
	deleted     []uint
	placeResult *models.Order
	placeErr    error
}

func (f *fakeOrderStore) CreateFromCart(userID uint, reference string, date time.Time) (*models.Order, error) {
	f.placed = append(f.placed, userID)
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return f.placeResult, nil
}

func (f *fakeOrderStore) ListAll() ([]models.Order, error) {
	f.listedAll = true
	return nil, nil
}

func (f *fakeOrderStore) ListByUser(userID uint) ([]models.Order, error) {
	f.listedUser = userID
	return nil, nil
}

func (f *fakeOrderStore) ListByCrew(crewID uint) ([]models.Order, error) {
	f.listedCrew = crewID
	return nil, nil
}

func (f *fakeOrderStore) Get(id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderStore) Update(id uint, fields map[string]interface{}) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	f.lastUpdate = fields
	return order, nil
}

func (f *fakeOrderStore) Delete(id uint) error {
	if _, ok := f.orders[id]; !ok {
		return ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserStore struct {
	UserStore
	users map[uint]models.User
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func crewPtr(id uint) *uint { return &id }

func newOrderFixture() *fakeOrderStore {
	return &fakeOrderStore{orders: map[uint]*models.Order{
		// order 1 belongs to customer 3, assigned to crew member 7
		1: {ID: 1, UserID: 3, DeliveryCrewID: crewPtr(7), Total: 30},
		// order 2 belongs to customer 4, unassigned
		2: {ID: 2, UserID: 4, Total: 12.50},
	}}
}

func TestOrderGetVisibility(t *testing.T) {
	users := &fakeUserStore{users: map[uint]models.User{7: {ID: 7}}}

	tests := []struct {
		name    string
		orderID uint
		userID  uint
		role    policy.Role
		wantErr error
	}{
		{"customer reads own order", 1, 3, policy.RoleCustomer, nil},
		{"customer blocked from another user's order", 1, 4, policy.RoleCustomer, ErrForbidden},
		{"crew reads assigned order", 1, 7, policy.RoleDeliveryCrew, nil},
		{"crew blocked from unassigned order", 2, 7, policy.RoleDeliveryCrew, ErrForbidden},
		{"manager reads anything", 2, 99, policy.RoleManager, nil},
		{"missing order", 9, 3, policy.RoleCustomer, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(newOrderFixture(), users)
			_, err := svc.Get(tt.orderID, tt.userID, tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrderListDispatch(t *testing.T) {
	users := &fakeUserStore{}

	store := newOrderFixture()
	svc := NewOrderService(store, users)
	if _, err := svc.List(1, policy.RoleManager); err != nil {
		t.Fatalf("List(manager) error = %v", err)
	}
	if !store.listedAll {
		t.Error("manager listing should hit ListAll")
	}

	store = newOrderFixture()
	svc = NewOrderService(store, users)
	if _, err := svc.List(7, policy.RoleDeliveryCrew); err != nil {
		t.Fatalf("List(crew) error = %v", err)
	}
	if store.listedCrew != 7 {
		t.Errorf("crew listing filtered by %d, want 7", store.listedCrew)
	}

	store = newOrderFixture()
	svc = NewOrderService(store, users)
	if _, err := svc.List(3, policy.RoleCustomer); err != nil {
		t.Fatalf("List(customer) error = %v", err)
	}
	if store.listedUser != 3 {
		t.Errorf("customer listing filtered by %d, want 3", store.listedUser)
	}

	svc = NewOrderService(newOrderFixture(), users)
	if _, err := svc.List(0, policy.RoleAnonymous); !errors.Is(err, ErrForbidden) {
		t.Errorf("List(anonymous) error = %v, want %v", err, ErrForbidden)
	}
}

func TestOrderPatch(t *testing.T) {
	users := &fakeUserStore{users: map[uint]models.User{7: {ID: 7}, 8: {ID: 8}}}
	status := true
	crew := uint(8)
	missingCrew := uint(55)

	tests := []struct {
		name       string
		orderID    uint
		userID     uint
		role       policy.Role
		patch      OrderPatch
		wantErr    error
		wantFields []string
	}{
		{
			name:    "customer cannot patch",
			orderID: 1, userID: 3, role: policy.RoleCustomer,
			patch:   OrderPatch{Status: &status},
			wantErr: ErrForbidden,
		},
		{
			name:    "crew cannot reassign delivery crew",
			orderID: 1, userID: 7, role: policy.RoleDeliveryCrew,
			patch:   OrderPatch{DeliveryCrewID: &crew},
			wantErr: ErrValidation,
		},
		{
			name:    "crew toggles status on assigned order",
			orderID: 1, userID: 7, role: policy.RoleDeliveryCrew,
			patch:      OrderPatch{Status: &status},
			wantFields: []string{"status"},
		},
		{
			name:    "crew cannot patch unassigned order",
			orderID: 2, userID: 7, role: policy.RoleDeliveryCrew,
			patch:   OrderPatch{Status: &status},
			wantErr: ErrForbidden,
		},
		{
			name:    "manager assigns crew and status",
			orderID: 2, userID: 1, role: policy.RoleManager,
			patch:      OrderPatch{Status: &status, DeliveryCrewID: &crew},
			wantFields: []string{"status", "delivery_crew_id"},
		},
		{
			name:    "manager referencing unknown crew user",
			orderID: 2, userID: 1, role: policy.RoleManager,
			patch:   OrderPatch{DeliveryCrewID: &missingCrew},
			wantErr: ErrNotFound,
		},
		{
			name:    "empty patch rejected",
			orderID: 1, userID: 1, role: policy.RoleManager,
			patch:   OrderPatch{},
			wantErr: ErrValidation,
		},
		{
			name:    "missing order",
			orderID: 9, userID: 1, role: policy.RoleManager,
			patch:   OrderPatch{Status: &status},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newOrderFixture()
			svc := NewOrderService(store, users)

			_, err := svc.Patch(tt.orderID, tt.userID, tt.role, tt.patch)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Patch() error = %v, want %v", err, tt.wantErr)
				}
				if store.lastUpdate != nil {
					t.Fatal("store should not be updated on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Patch() error = %v", err)
			}
			if len(store.lastUpdate) != len(tt.wantFields) {
				t.Fatalf("updated fields = %v, want %v", store.lastUpdate, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := store.lastUpdate[f]; !ok {
					t.Errorf("field %q missing from update %v", f, store.lastUpdate)
				}
			}
		})
	}
}

func TestOrderPlace(t *testing.T) {
	users := &fakeUserStore{}

	store := newOrderFixture()
	store.placeResult = &models.Order{ID: 10, UserID: 3, Total: 30}
	svc := NewOrderService(store, users)

	order, err := svc.Place(3)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if order.ID != 10 {
		t.Errorf("order ID = %d, want 10", order.ID)
	}
	if len(store.placed) != 1 || store.placed[0] != 3 {
		t.Errorf("placed = %v, want [3]", store.placed)
	}

	store = newOrderFixture()
	store.placeErr = ErrEmptyCart
	svc = NewOrderService(store, users)
	if _, err := svc.Place(3); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Place() on empty cart error = %v, want %v", err, ErrEmptyCart)
	}
}

func TestOrderDelete(t *testing.T) {
	users := &fakeUserStore{}

	for _, role := range []policy.Role{policy.RoleCustomer, policy.RoleDeliveryCrew} {
		store := newOrderFixture()
		svc := NewOrderService(store, users)
		if err := svc.Delete(1, role); !errors.Is(err, ErrForbidden) {
			t.Errorf("Delete() as %v error = %v, want %v", role, err, ErrForbidden)
		}
		if len(store.deleted) != 0 {
			t.Errorf("Delete() as %v touched the store", role)
		}
	}

	store := newOrderFixture()
	svc := NewOrderService(store, users)
	if err := svc.Delete(1, policy.RoleManager); err != nil {
		t.Fatalf("Delete() as manager error = %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 1 {
		t.Errorf("deleted = %v, want [1]", store.deleted)
	}
}
