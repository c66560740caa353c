package models

import "starwars/db"

type Character struct {
	ID     uint64  `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"type:varchar(50);index:uniq_character_name,unique;not null" json:"name"`
	Height float64 `gorm:"not null" json:"height"`
}

func CharacterCreate(name string, height float64) (c Character, err error) {
	c.Name = name
	c.Height = height
	return c, db.Instance.Create(&c).Error
}

func CharacterGet(id uint64) (c Character, err error) {
	err = db.Instance.First(&c, id).Error
	return
}

func CharacterList() ([]Character, error) {
	result := []Character{}
	return result, db.Instance.Order("id").Find(&result).Error
}

func CharacterExists(id uint64) (bool, error) {
	return exists(&Character{}, id)
}
