package models

import (
	"errors"
	"math"
	"starwars/db"
	"strings"

	"gorm.io/gorm"
)

func Init() {
	if err := Migrate(db.Instance); err != nil {
		panic(err)
	}
}

func Migrate(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&User{},
		&Planet{},
		&Character{},
		&FavoritePlanet{},
		&FavoriteCharacter{},
	)
}

// IsDuplicate reports a unique index violation. Drivers without error
// translation are matched on their message
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "23505")
}

// exists reports whether a row with the given primary key is stored.
// IDs above the signed 64-bit range can never be stored
func exists(model any, id uint64) (bool, error) {
	if id == 0 || id > math.MaxInt64 {
		return false, nil
	}
	count := int64(0)
	if err := db.Instance.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
