package repository

import (
	"time"

	"artroad/internal/models"

	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type TeamFilter struct {
	Search     string
	OrderIndex *int
	Sort       string
	Order      string
	Limit      int
	Offset     int
}

var teamSortColumns = map[string]string{
	"orderIndex": "order_index",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"nameEn":     "name_en",
}

// ValidTeamSortField reports whether the API sort field is allowed. The team
// endpoint rejects unknown sort fields instead of falling back.
func ValidTeamSortField(field string) bool {
	_, ok := teamSortColumns[field]
	return ok
}

func (r *TeamRepository) List(f TeamFilter) ([]models.TeamMember, error) {
	q := r.db.Model(&models.TeamMember{})
	if f.OrderIndex != nil {
		q = q.Where("order_index = ?", *f.OrderIndex)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("name_en LIKE ? OR name_fr LIKE ? OR name_ar LIKE ?", term, term, term)
	}
	col := sortColumn(teamSortColumns, f.Sort, "orderIndex")
	var list []models.TeamMember
	err := q.Order(orderExpr(col, f.Order)).
		Limit(clampLimit(f.Limit, 10)).
		Offset(clampOffset(f.Offset)).
		Find(&list).Error
	return list, err
}

func (r *TeamRepository) GetByID(id uint) (*models.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamRepository) Create(m *models.TeamMember) error {
	return r.db.Create(m).Error
}

func (r *TeamRepository) Update(id uint, updates map[string]interface{}) (*models.TeamMember, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *TeamRepository) Delete(id uint) error {
	return r.db.Delete(&models.TeamMember{}, id).Error
}
