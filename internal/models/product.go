package models

import "fmt"

const (
	MaxProductImageLength      = 75
	MaxProductNameLength       = 25
	MaxProductLabelColorLength = 20
)

// Product is not linked to flows yet. A flow-specific link will key on
// FlowActivity rather than Activity, since the same activity uses different
// products for different clients.
type Product struct {
	ID         uint   `gorm:"column:product_id;primaryKey;autoIncrement"`
	Image      string `gorm:"column:product_img;size:75"`
	Name       string `gorm:"column:product_name;size:25;not null"`
	LabelColor string `gorm:"column:product_label_color;size:20"`
}

func (Product) TableName() string {
	return "products"
}

func (product Product) String() string {
	return fmt.Sprintf("<Product id=%d, name=%s, label color=%s>", product.ID, product.Name, product.LabelColor)
}
