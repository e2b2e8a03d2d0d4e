package repositories

import (
	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/seed"
)

// Repositories holds all the repository instances
type Repositories struct {
	CatalogRepository  *CatalogRepository
	MaterialRepository *MaterialRepository
	UserRepository     *UserRepository
}

// NewRepositories builds the stores from the seed catalog and the live user collection
func NewRepositories(catalog *seed.Catalog, users []*models.User, snapshots Snapshotter) *Repositories {
	return &Repositories{
		CatalogRepository:  NewCatalogRepository(catalog.Faculties, catalog.Departments, catalog.Courses),
		MaterialRepository: NewMaterialRepository(catalog.Materials),
		UserRepository:     NewUserRepository(users, snapshots),
	}
}
