package models

import (
	"starwars/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteCharacter struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CharacterID uint64    `gorm:"not null" json:"character_id"`
	Character   Character `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func FavoriteCharacterCreate(userID, characterID uint64) (f FavoriteCharacter, err error) {
	f.UserID = userID
	f.CharacterID = characterID
	return f, db.Instance.Omit(clause.Associations).Create(&f).Error
}

func FavoriteCharacterGet(id uint64) (f FavoriteCharacter, err error) {
	err = db.Instance.First(&f, id).Error
	return
}

func FavoriteCharactersByUser(userID uint64) ([]FavoriteCharacter, error) {
	result := []FavoriteCharacter{}
	return result, db.Instance.Where("user_id = ?", userID).Order("id").Find(&result).Error
}

func FavoriteCharacterDelete(id uint64) error {
	result := db.Instance.Delete(&FavoriteCharacter{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
