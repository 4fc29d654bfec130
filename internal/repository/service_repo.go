package repository

import (
	"time"

	"artroad/internal/models"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type ServiceFilter struct {
	Search      string
	IsActive    *bool
	IsFavourite *bool
	Sort        string
	Order       string
	Limit       int
	Offset      int
}

var serviceSortColumns = map[string]string{
	"orderIndex": "order_index",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"titleEn":    "title_en",
	"priceStart": "price_start",
}

func (r *ServiceRepository) List(f ServiceFilter) ([]models.Service, error) {
	q := r.db.Model(&models.Service{})
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.IsFavourite != nil {
		q = q.Where("is_favourite = ?", *f.IsFavourite)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("title_en LIKE ? OR title_fr LIKE ? OR title_ar LIKE ?", term, term, term)
	}
	col := sortColumn(serviceSortColumns, f.Sort, "orderIndex")
	var list []models.Service
	err := q.Order(orderExpr(col, f.Order)).
		Limit(clampLimit(f.Limit, 10)).
		Offset(clampOffset(f.Offset)).
		Find(&list).Error
	return list, err
}

func (r *ServiceRepository) GetByID(id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(s *models.Service) error {
	return r.db.Create(s).Error
}

// Update applies the supplied columns and always refreshes updated_at,
// then returns the full row.
func (r *ServiceRepository) Update(id uint, updates map[string]interface{}) (*models.Service, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&models.Service{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *ServiceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Service{}, id).Error
}
