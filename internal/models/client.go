package models

import "time"

// Client is the persisted registry entry. BirthDate keeps only the calendar
// date; the clock part is always UTC midnight.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:100;not null" json:"name"`
	CPF       string    `gorm:"column:cpf;size:11;not null" json:"cpf"`
	Income    float64   `gorm:"not null" json:"income"`
	Children  int       `gorm:"not null" json:"children"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
}

func (Client) TableName() string {
	return "tb_client"
}

// ClientSortColumns maps the public property names accepted in ?sort= to
// table columns.
var ClientSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"cpf":       "cpf",
	"income":    "income",
	"children":  "children",
	"birthDate": "birth_date",
}
