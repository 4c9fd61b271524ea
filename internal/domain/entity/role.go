package entity

// Role ID constants carried in JWT claims issued by the auth service
const (
	RoleIDAdmin      = 1
	RoleIDTechnician = 2
	RoleIDDelivery   = 3
	RoleIDCustomer   = 4
)

// Role name constants
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleDelivery   = "delivery"
	RoleCustomer   = "customer"
)
