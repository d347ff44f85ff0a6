package services

import (
	"fmt"

	"little-lemon-api/models"
)

// GroupService manages the Manager and Delivery crew memberships. All of its
// operations are manager-only; the route layer enforces that.
type GroupService struct {
	Users UserStore
}

func NewGroupService(users UserStore) *GroupService {
	return &GroupService{Users: users}
}

func (s *GroupService) Members(groupName string) ([]models.User, error) {
	return s.Users.ListGroupMembers(groupName)
}

// Add puts a user, located by id or username, into the named group. The
// group is created on first use; a missing user is a NotFound.
func (s *GroupService) Add(groupName, username string, userID uint) (*models.User, error) {
	user, err := s.lookup(username, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Users.AddToGroup(groupName, user); err != nil {
		return nil, err
	}
	return s.Users.GetByID(user.ID)
}

// Remove takes a user out of the named group. Removing a user who is not a
// member succeeds with no effect.
func (s *GroupService) Remove(groupName string, userID uint) (*models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Users.RemoveFromGroup(groupName, user); err != nil {
		return nil, err
	}
	return s.Users.GetByID(user.ID)
}

func (s *GroupService) lookup(username string, userID uint) (*models.User, error) {
	switch {
	case userID != 0:
		return s.Users.GetByID(userID)
	case username != "":
		return s.Users.GetByUsername(username)
	default:
		return nil, fmt.Errorf("%w: username or user_id is required", ErrValidation)
	}
}
