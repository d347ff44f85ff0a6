package repository

import (
	"little-lemon-api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return translate(r.DB.Create(u).Error, "user "+u.Username)
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.Preload("Groups").First(&user, id).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.DB.Preload("Groups").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err, "user "+username)
	}
	return &user, nil
}

func (r *UserRepository) ListGroupMembers(groupName string) ([]models.User, error) {
	group, err := r.getGroup(groupName)
	if err != nil {
		return nil, err
	}
	var users []models.User
	err = r.DB.Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ?", group.ID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

// AddToGroup is idempotent and creates the group on first use.
func (r *UserRepository) AddToGroup(groupName string, u *models.User) error {
	var group models.Group
	err := r.DB.Where(models.Group{Name: groupName}).FirstOrCreate(&group).Error
	if err != nil {
		return err
	}
	for _, g := range u.Groups {
		if g.ID == group.ID {
			return nil
		}
	}
	return r.DB.Model(u).Association("Groups").Append(&group)
}

// RemoveFromGroup is a no-op when the user is not a member. A missing group
// is a NotFound.
func (r *UserRepository) RemoveFromGroup(groupName string, u *models.User) error {
	group, err := r.getGroup(groupName)
	if err != nil {
		return err
	}
	return r.DB.Model(u).Association("Groups").Delete(group)
}

func (r *UserRepository) getGroup(name string) (*models.Group, error) {
	var group models.Group
	if err := r.DB.Where("name = ?", name).First(&group).Error; err != nil {
		return nil, translate(err, "group "+name)
	}
	return &group, nil
}
