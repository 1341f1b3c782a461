package repositories

import (
	"github.com/yigit/majorpath/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	MajorRepository   *MajorRepository
	SessionRepository *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(database.Pool),
		MajorRepository:   NewMajorRepository(database.Pool),
		SessionRepository: NewSessionRepository(database),
	}
}
