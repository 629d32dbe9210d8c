package models

import "fmt"

const (
	DefaultFlowTitle   = "daily"
	MaxFlowTitleLength = 60
)

// Flow is one client's shower routine.
type Flow struct {
	ID       uint           `gorm:"column:flow_id;primaryKey;autoIncrement"`
	Title    string         `gorm:"column:title;size:60;default:daily"`
	ClientID *uint          `gorm:"column:client_id;index"`
	Client   *Client        `gorm:"foreignKey:ClientID;references:ID"`
	Steps    []FlowActivity `gorm:"foreignKey:FlowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Flow) TableName() string {
	return "flows"
}

func (flow Flow) String() string {
	client := "none"
	if flow.Client != nil {
		client = flow.Client.Name
	} else if flow.ClientID != nil {
		client = fmt.Sprintf("#%d", *flow.ClientID)
	}
	return fmt.Sprintf("<Flow flow_id=%d, title=%s, client=%s>", flow.ID, flow.Title, client)
}
