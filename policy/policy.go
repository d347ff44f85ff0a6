// Package policy holds the closed set of authorization roles and the access
// rules gated on them. A principal's role is resolved exactly once per
// request (see middleware.Authenticate) and every rule here switches on the
// resulting enum.
package policy

import "little-lemon-api/models"

// Role is the authorization role of a request principal. The three
// authenticated roles are mutually exclusive; a user in both groups
// resolves to Manager.
type Role int

const (
	RoleAnonymous Role = iota
	RoleCustomer
	RoleDeliveryCrew
	RoleManager
)

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleDeliveryCrew:
		return "delivery crew"
	case RoleCustomer:
		return "customer"
	default:
		return "anonymous"
	}
}

// Resolve maps a user's superuser flag and group memberships to a role.
func Resolve(user *models.User) Role {
	if user == nil {
		return RoleAnonymous
	}
	if user.IsSuperuser {
		return RoleManager
	}
	role := RoleCustomer
	for _, g := range user.Groups {
		switch g.Name {
		case models.GroupManager:
			return RoleManager
		case models.GroupDeliveryCrew:
			role = RoleDeliveryCrew
		}
	}
	return role
}

// CanWriteCatalog reports whether the role may create, update or delete
// categories and menu items. Reads are open to everyone.
func CanWriteCatalog(r Role) bool { return r == RoleManager }

// CanManageGroups reports whether the role may change group memberships.
func CanManageGroups(r Role) bool { return r == RoleManager }

// CanDeleteOrder reports whether the role may delete orders.
func CanDeleteOrder(r Role) bool { return r == RoleManager }

// CanSetDeliveryCrew reports whether the role may reassign an order's crew.
func CanSetDeliveryCrew(r Role) bool { return r == RoleManager }

// CanSetOrderStatus reports whether the role may toggle the delivered flag.
func CanSetOrderStatus(r Role) bool { return r == RoleManager || r == RoleDeliveryCrew }

// CanViewOrder reports whether the caller may read the given order. Managers
// see everything, crew members see their assigned deliveries, customers see
// their own orders.
func CanViewOrder(r Role, userID uint, o *models.Order) bool {
	switch r {
	case RoleManager:
		return true
	case RoleDeliveryCrew:
		return o.DeliveryCrewID != nil && *o.DeliveryCrewID == userID
	case RoleCustomer:
		return o.UserID == userID
	default:
		return false
	}
}
