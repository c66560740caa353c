package models

import (
	"starwars/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoritePlanet links a user to a planet. The pair is not unique, the same
// planet can be favorited more than once
type FavoritePlanet struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	UserID   uint64 `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PlanetID uint64 `gorm:"not null" json:"planet_id"`
	Planet   Planet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func FavoritePlanetCreate(userID, planetID uint64) (f FavoritePlanet, err error) {
	f.UserID = userID
	f.PlanetID = planetID
	return f, db.Instance.Omit(clause.Associations).Create(&f).Error
}

func FavoritePlanetGet(id uint64) (f FavoritePlanet, err error) {
	err = db.Instance.First(&f, id).Error
	return
}

func FavoritePlanetsByUser(userID uint64) ([]FavoritePlanet, error) {
	result := []FavoritePlanet{}
	return result, db.Instance.Where("user_id = ?", userID).Order("id").Find(&result).Error
}

// FavoritePlanetDelete removes the favorite row by its own ID
func FavoritePlanetDelete(id uint64) error {
	result := db.Instance.Delete(&FavoritePlanet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
