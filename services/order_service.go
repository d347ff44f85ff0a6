package services

import (
	"fmt"
	"time"

	"little-lemon-api/models"
	"little-lemon-api/policy"

	"github.com/google/uuid"
)

type OrderService struct {
	Orders OrderStore
	Users  UserStore
}

func NewOrderService(orders OrderStore, users UserStore) *OrderService {
	return &OrderService{Orders: orders, Users: users}
}

// OrderPatch is the set of mutable order fields a caller may submit.
type OrderPatch struct {
	Status         *bool `json:"status"`
	DeliveryCrewID *uint `json:"delivery_crew_id"`
}

// Place converts the caller's cart into a persisted order. The store does
// the conversion in one transaction, so a concurrent call against the same
// cart loses the race and observes an empty cart.
func (s *OrderService) Place(userID uint) (*models.Order, error) {
	return s.Orders.CreateFromCart(userID, uuid.NewString(), time.Now().UTC())
}

// List returns the orders visible to the caller: all of them for managers,
// assigned deliveries for crew members, own orders for customers.
func (s *OrderService) List(userID uint, role policy.Role) ([]models.Order, error) {
	switch role {
	case policy.RoleManager:
		return s.Orders.ListAll()
	case policy.RoleDeliveryCrew:
		return s.Orders.ListByCrew(userID)
	case policy.RoleCustomer:
		return s.Orders.ListByUser(userID)
	default:
		return nil, ErrForbidden
	}
}

// Get returns a single order, applying the same visibility rule as List.
func (s *OrderService) Get(orderID, userID uint, role policy.Role) (*models.Order, error) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrder(role, userID, order) {
		return nil, fmt.Errorf("%w: order %d is not visible to you", ErrForbidden, orderID)
	}
	return order, nil
}

// Patch applies a role-gated partial update. Crew members may toggle only
// the delivered status on orders assigned to them; managers may also
// reassign the delivery crew.
func (s *OrderService) Patch(orderID, userID uint, role policy.Role, patch OrderPatch) (*models.Order, error) {
	if !policy.CanSetOrderStatus(role) {
		return nil, fmt.Errorf("%w: customers may not update orders", ErrForbidden)
	}
	order, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrder(role, userID, order) {
		return nil, fmt.Errorf("%w: order %d is not visible to you", ErrForbidden, orderID)
	}

	fields := map[string]interface{}{}
	if patch.DeliveryCrewID != nil {
		if !policy.CanSetDeliveryCrew(role) {
			return nil, fmt.Errorf("%w: delivery crew may update only the status field", ErrValidation)
		}
		if _, err := s.Users.GetByID(*patch.DeliveryCrewID); err != nil {
			return nil, err
		}
		fields["delivery_crew_id"] = *patch.DeliveryCrewID
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in request", ErrValidation)
	}
	return s.Orders.Update(orderID, fields)
}

// Delete removes an order; managers only.
func (s *OrderService) Delete(orderID uint, role policy.Role) error {
	if !policy.CanDeleteOrder(role) {
		return fmt.Errorf("%w: only managers may delete orders", ErrForbidden)
	}
	return s.Orders.Delete(orderID)
}
