package models

// All lists the persisted record types in dependency order.
func All() []any {
	return []any{
		&User{},
		&Client{},
		&Flow{},
		&Activity{},
		&FlowActivity{},
		&Product{},
	}
}
