package repository

import (
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/models"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(form *forms.ActivityForm) (uint, error) {
	activity := models.Activity{
		ActivityName: form.ActivityName,
		Description:  form.Description,
	}
	if err := r.db.Create(&activity).Error; err != nil {
		return 0, storeErr("adding activity", err)
	}
	return activity.ID, nil
}

func (r *ActivityRepository) Update(id uint, form *forms.ActivityForm) (int64, error) {
	result := r.db.Model(&models.Activity{}).Where("id = ?", id).Updates(map[string]interface{}{
		"activity_name": form.ActivityName,
		"description":   form.Description,
	})
	if result.Error != nil {
		return 0, storeErr("updating activity", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ActivityRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Activity{}, id)
	if result.Error != nil {
		return 0, storeErr("deleting activity", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ActivityRepository) List() ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Find(&activities).Error; err != nil {
		return nil, storeErr("loading activities", err)
	}
	return activities, nil
}
