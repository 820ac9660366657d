package repository

import (
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/models"
)

type TourPackageRepository struct {
	db *gorm.DB
}

func NewTourPackageRepository(db *gorm.DB) *TourPackageRepository {
	return &TourPackageRepository{db: db}
}

func (r *TourPackageRepository) Create(form *forms.TourPackageForm) (uint, error) {
	pkg := models.TourPackage{
		TourName:    form.TourName,
		Description: form.Description,
		Price:       form.Price,
		Duration:    form.Duration,
	}
	if err := r.db.Create(&pkg).Error; err != nil {
		return 0, storeErr("adding tour package", err)
	}
	return pkg.ID, nil
}

func (r *TourPackageRepository) Update(id uint, form *forms.TourPackageForm) (int64, error) {
	result := r.db.Model(&models.TourPackage{}).Where("id = ?", id).Updates(map[string]interface{}{
		"tour_name":   form.TourName,
		"description": form.Description,
		"price":       form.Price,
		"duration":    form.Duration,
	})
	if result.Error != nil {
		return 0, storeErr("updating tour package", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TourPackageRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.TourPackage{}, id)
	if result.Error != nil {
		return 0, storeErr("deleting tour package", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TourPackageRepository) List() ([]models.TourPackage, error) {
	var packages []models.TourPackage
	if err := r.db.Find(&packages).Error; err != nil {
		return nil, storeErr("loading tour packages", err)
	}
	return packages, nil
}

// TourPackageOption feeds the booking/feedback dropdowns.
type TourPackageOption struct {
	ID       uint
	TourName string
}

func (r *TourPackageRepository) Options() ([]TourPackageOption, error) {
	var options []TourPackageOption
	err := r.db.Model(&models.TourPackage{}).
		Select("id", "tour_name").
		Order("tour_name").
		Find(&options).Error
	if err != nil {
		return nil, storeErr("loading tour packages", err)
	}
	return options, nil
}
