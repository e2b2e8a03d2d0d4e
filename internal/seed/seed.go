package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mskustudx/studx/internal/app/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the fixed seed data the process starts from
type Catalog struct {
	Faculties   []*models.Faculty    `yaml:"faculties"`
	Departments []*models.Department `yaml:"departments"`
	Courses     []*models.Course     `yaml:"courses"`
	Materials   []*models.Material   `yaml:"materials"`
	Users       []DefaultUser        `yaml:"users"`
}

// DefaultUser is a seed account with a plaintext credential
type DefaultUser struct {
	ID         int64  `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Credential string `yaml:"credential"`
}

// HashFunc turns a plaintext credential into its stored form
type HashFunc func(credential string) (string, error)

// LoadCatalog parses the embedded seed catalog
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog parses a seed catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	for _, m := range c.Materials {
		if _, ok := models.ParseMaterialType(string(m.Type)); !ok {
			return nil, fmt.Errorf("material %d: unknown type %q", m.ID, m.Type)
		}
		m.LikedBy = models.NewIDSet()
		m.DislikedBy = models.NewIDSet()
	}
	return &c, nil
}

// DefaultUsers builds the initial user collection, hashing every credential
func (c *Catalog) DefaultUsers(hash HashFunc, now time.Time) ([]*models.User, error) {
	users := make([]*models.User, 0, len(c.Users))
	for _, du := range c.Users {
		credential, err := hash(du.Credential)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential for %s: %w", du.Email, err)
		}
		u := &models.User{
			ID:         du.ID,
			Name:       du.Name,
			Email:      du.Email,
			Credential: credential,
			CreatedAt:  now,
		}
		u.Normalize()
		users = append(users, u)
	}
	return users, nil
}
