package repository

import (
	"time"

	"artroad/internal/models"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type GalleryFilter struct {
	Search         string
	Category       string
	IsFeatured     *bool
	IsActive       *bool
	ShowOnHomepage *bool
	Sort           string
	Order          string
	Limit          int
	Offset         int
}

var gallerySortColumns = map[string]string{
	"orderIndex": "order_index",
	"createdAt":  "created_at",
}

func (r *GalleryRepository) List(f GalleryFilter) ([]models.GalleryItem, error) {
	q := r.db.Model(&models.GalleryItem{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.ShowOnHomepage != nil {
		q = q.Where("show_on_homepage = ?", *f.ShowOnHomepage)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("title_en LIKE ? OR title_fr LIKE ? OR title_ar LIKE ?", term, term, term)
	}
	col := sortColumn(gallerySortColumns, f.Sort, "orderIndex")
	var list []models.GalleryItem
	err := q.Order(orderExpr(col, f.Order)).
		Limit(clampLimit(f.Limit, 12)).
		Offset(clampOffset(f.Offset)).
		Find(&list).Error
	return list, err
}

func (r *GalleryRepository) GetByID(id uint) (*models.GalleryItem, error) {
	var g models.GalleryItem
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) Create(g *models.GalleryItem) error {
	return r.db.Create(g).Error
}

func (r *GalleryRepository) Update(id uint, updates map[string]interface{}) (*models.GalleryItem, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&models.GalleryItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryItem{}, id).Error
}
