package models

import (
	"starwars/db"
	"starwars/utils"
)

type User struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(120);index:uniq_email,unique;not null" json:"email"`
	Password string `gorm:"type:varchar(128);not null" json:"-"`
	PassSalt string `gorm:"type:varchar(200);not null" json:"-"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func UserCreate(email, plainTextPassword string, isActive bool) (u User, err error) {
	u.Email = email
	u.IsActive = isActive
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.NewPasswordSalt()
	u.Password = utils.HashPassword(plainTextPassword, u.PassSalt)
}

func UserGet(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}

func UserList() ([]User, error) {
	result := []User{}
	return result, db.Instance.Order("id").Find(&result).Error
}

func UserExists(id uint64) (bool, error) {
	return exists(&User{}, id)
}
