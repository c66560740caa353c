package models

import "starwars/db"

type Planet struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(50);index:uniq_planet_name,unique;not null" json:"name"`
	Population int64  `gorm:"not null" json:"population"`
}

func PlanetCreate(name string, population int64) (p Planet, err error) {
	p.Name = name
	p.Population = population
	return p, db.Instance.Create(&p).Error
}

func PlanetGet(id uint64) (p Planet, err error) {
	err = db.Instance.First(&p, id).Error
	return
}

func PlanetList() ([]Planet, error) {
	result := []Planet{}
	return result, db.Instance.Order("id").Find(&result).Error
}

func PlanetExists(id uint64) (bool, error) {
	return exists(&Planet{}, id)
}
