package services

import (
	"errors"
	"testing"

	"little-lemon-api/models"
)

type fakeGroupUserStore struct {
	UserStore
	users   map[uint]models.User
	byName  map[string]uint
	added   []string
	removed []string
}

func (f *fakeGroupUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (f *fakeGroupUserStore) GetByUsername(username string) (*models.User, error) {
	id, ok := f.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	return f.GetByID(id)
}

func (f *fakeGroupUserStore) AddToGroup(groupName string, u *models.User) error {
	f.added = append(f.added, groupName+"/"+u.Username)
	return nil
}

func (f *fakeGroupUserStore) RemoveFromGroup(groupName string, u *models.User) error {
	f.removed = append(f.removed, groupName+"/"+u.Username)
	return nil
}

func newGroupFixture() *fakeGroupUserStore {
	return &fakeGroupUserStore{
		users:  map[uint]models.User{7: {ID: 7, Username: "carol"}},
		byName: map[string]uint{"carol": 7},
	}
}

func TestGroupAdd(t *testing.T) {
	tests := []struct {
		name     string
		username string
		userID   uint
		wantErr  error
	}{
		{"add by user id", "", 7, nil},
		{"add by username", "carol", 0, nil},
		{"id takes precedence and exists", "nobody", 7, nil},
		{"unknown user id", "", 99, ErrNotFound},
		{"unknown username", "nobody", 0, ErrNotFound},
		{"neither identifier given", "", 0, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newGroupFixture()
			svc := NewGroupService(store)

			user, err := svc.Add(models.GroupDeliveryCrew, tt.username, tt.userID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
				}
				if len(store.added) != 0 {
					t.Fatal("membership must not change on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if user.Username != "carol" {
				t.Errorf("added user = %q, want carol", user.Username)
			}
			if len(store.added) != 1 || store.added[0] != models.GroupDeliveryCrew+"/carol" {
				t.Errorf("added = %v", store.added)
			}
		})
	}
}

func TestGroupRemove(t *testing.T) {
	store := newGroupFixture()
	svc := NewGroupService(store)

	if _, err := svc.Remove(models.GroupManager, 7); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != models.GroupManager+"/carol" {
		t.Errorf("removed = %v", store.removed)
	}

	if _, err := svc.Remove(models.GroupManager, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(unknown user) error = %v, want %v", err, ErrNotFound)
	}
}
