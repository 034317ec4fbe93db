package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/egauth-dev/egauth/internal/models"
)

// Repository defines persistence operations for user records. The service
// does not assume a specific storage technology behind it.
type Repository interface {
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	Create(user *models.User) error
}

// GormRepository implements Repository using gorm.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByEmail(email string) (*models.User, error) {
	return r.findOne("email = ?", email)
}

func (r *GormRepository) FindByUsername(username string) (*models.User, error) {
	return r.findOne("username = ?", username)
}

func (r *GormRepository) FindByID(id string) (*models.User, error) {
	return r.findOne("id = ?", id)
}

// findOne returns (nil, nil) when no record matches.
func (r *GormRepository) findOne(query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
