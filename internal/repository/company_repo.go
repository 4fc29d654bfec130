package repository

import (
	"time"

	"artroad/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type CompanyFilter struct {
	IsActive *bool
	Sort     string
	Order    string
	Limit    int
	Offset   int
}

var companySortColumns = map[string]string{
	"orderIndex": "order_index",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

func (r *CompanyRepository) List(f CompanyFilter) ([]models.TrustedCompany, error) {
	q := r.db.Model(&models.TrustedCompany{})
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	col := sortColumn(companySortColumns, f.Sort, "orderIndex")
	var list []models.TrustedCompany
	err := q.Order(orderExpr(col, f.Order)).
		Limit(clampLimit(f.Limit, 10)).
		Offset(clampOffset(f.Offset)).
		Find(&list).Error
	return list, err
}

func (r *CompanyRepository) GetByID(id uint) (*models.TrustedCompany, error) {
	var c models.TrustedCompany
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) Create(c *models.TrustedCompany) error {
	return r.db.Create(c).Error
}

func (r *CompanyRepository) Update(id uint, updates map[string]interface{}) (*models.TrustedCompany, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&models.TrustedCompany{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *CompanyRepository) Delete(id uint) error {
	return r.db.Delete(&models.TrustedCompany{}, id).Error
}
