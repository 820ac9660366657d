package repository

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/models"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) checkRefs(action string, form *forms.FeedbackForm) error {
	ok, err := exists(r.db, &models.Customer{}, form.CustomerID)
	if err != nil {
		return storeErr(action, err)
	}
	if !ok {
		return refErr(action, "customer")
	}

	ok, err = exists(r.db, &models.TourPackage{}, form.PackageID)
	if err != nil {
		return storeErr(action, err)
	}
	if !ok {
		return refErr(action, "tour package")
	}
	return nil
}

func (r *FeedbackRepository) Create(form *forms.FeedbackForm) (uint, error) {
	if err := r.checkRefs("adding feedback", form); err != nil {
		return 0, err
	}

	feedback := models.Feedback{
		CustomerID: form.CustomerID,
		PackageID:  form.PackageID,
		Rating:     form.Rating,
		Comments:   form.Comments,
	}
	if err := r.db.Create(&feedback).Error; err != nil {
		return 0, storeErr("adding feedback", err)
	}
	return feedback.ID, nil
}

func (r *FeedbackRepository) Update(id uint, form *forms.FeedbackForm) (int64, error) {
	if err := r.checkRefs("updating feedback", form); err != nil {
		return 0, err
	}

	result := r.db.Model(&models.Feedback{}).Where("id = ?", id).Updates(map[string]interface{}{
		"customer_id": form.CustomerID,
		"package_id":  form.PackageID,
		"rating":      form.Rating,
		"comments":    form.Comments,
	})
	if result.Error != nil {
		return 0, storeErr("updating feedback", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *FeedbackRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Feedback{}, id)
	if result.Error != nil {
		return 0, storeErr("deleting feedback", result.Error)
	}
	return result.RowsAffected, nil
}

// FeedbackRow resolves the customer and tour names for the list view.
type FeedbackRow struct {
	ID           uint
	CustomerID   uint
	PackageID    uint
	Rating       int
	Comments     string
	CustomerName string
	TourName     string
}

func (r *FeedbackRepository) List() ([]FeedbackRow, error) {
	var raw []struct {
		ID           uint
		CustomerID   uint
		PackageID    uint
		Rating       int
		Comments     string
		CustomerName sql.NullString
		TourName     sql.NullString
	}

	err := r.db.Raw(`
		SELECT f.id, f.customer_id, f.package_id, f.rating, f.comments,
		       c.customer_name, t.tour_name
		FROM feedback f
		LEFT JOIN customers c ON f.customer_id = c.id
		LEFT JOIN tour_packages t ON f.package_id = t.id
		ORDER BY f.id`).Scan(&raw).Error
	if err != nil {
		return nil, storeErr("loading feedback", err)
	}

	rows := make([]FeedbackRow, 0, len(raw))
	for _, f := range raw {
		rows = append(rows, FeedbackRow{
			ID:           f.ID,
			CustomerID:   f.CustomerID,
			PackageID:    f.PackageID,
			Rating:       f.Rating,
			Comments:     f.Comments,
			CustomerName: orMissing(f.CustomerName),
			TourName:     orMissing(f.TourName),
		})
	}
	return rows, nil
}
