package domain

type CustomerRepository interface {
	CreateCustomer(customer *Customer) (*Customer, error)
	GetCustomerByID(id int) (*Customer, error)
	UpdateCustomer(customer *Customer) (*Customer, error)
	ListCustomers() ([]Customer, error)
}
