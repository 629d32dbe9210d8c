package models

import "fmt"

const (
	MaxClientNameLength = 50
	MaxClientBodyLength = 16
)

// Client is the care recipient managed by a caregiver.
type Client struct {
	ID          uint   `gorm:"column:client_id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:client_name;size:50;not null"`
	Body        string `gorm:"column:client_body;size:16"`
	CaregiverID *uint  `gorm:"column:caregiver_id;index"`
	Caregiver   *User  `gorm:"foreignKey:CaregiverID;references:ID"`
	Flows       []Flow `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Client) TableName() string {
	return "clients"
}

func (client Client) String() string {
	caregiver := "none"
	if client.CaregiverID != nil {
		caregiver = fmt.Sprintf("%d", *client.CaregiverID)
	}
	return fmt.Sprintf("<Client client_name=%s client_id=%d user_id=%s>", client.Name, client.ID, caregiver)
}
