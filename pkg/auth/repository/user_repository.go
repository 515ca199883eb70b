package repository

import "mantrix/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
}
