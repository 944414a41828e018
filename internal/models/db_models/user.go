package db_models

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Trips        []Trip
}
