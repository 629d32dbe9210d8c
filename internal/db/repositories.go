package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Clients        *ClientRepository
	Flows          *FlowRepository
	FlowActivities *FlowActivityRepository
	Activities     *ActivityRepository
	Products       *ProductRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Clients:        NewClientRepository(database),
		Flows:          NewFlowRepository(database),
		FlowActivities: NewFlowActivityRepository(database),
		Activities:     NewActivityRepository(database),
		Products:       NewProductRepository(database),
	}
}
