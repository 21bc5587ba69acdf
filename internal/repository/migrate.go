package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the marketplace uses. The row
// models are unexported, so migrations run through here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&bandModel{},
		&rateCardModel{},
		&videoModel{},
		&bandEventModel{},
		&inquiryModel{},
		&reviewModel{},
		&favoriteModel{},
	)
}
