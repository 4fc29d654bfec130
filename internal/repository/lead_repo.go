package repository

import (
	"time"

	"artroad/internal/models"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type LeadFilter struct {
	Search string
	Status string
	Source string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

var leadSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"status":    "status",
}

func (r *LeadRepository) List(f LeadFilter) ([]models.Lead, error) {
	q := r.db.Model(&models.Lead{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", term, term, term)
	}
	col := sortColumn(leadSortColumns, f.Sort, "createdAt")
	var list []models.Lead
	err := q.Order(orderExpr(col, f.Order)).
		Limit(clampLimit(f.Limit, 20)).
		Offset(clampOffset(f.Offset)).
		Find(&list).Error
	return list, err
}

func (r *LeadRepository) GetByID(id uint) (*models.Lead, error) {
	var l models.Lead
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) Create(l *models.Lead) error {
	return r.db.Create(l).Error
}

func (r *LeadRepository) Update(id uint, updates map[string]interface{}) (*models.Lead, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&models.Lead{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *LeadRepository) Delete(id uint) error {
	return r.db.Delete(&models.Lead{}, id).Error
}
