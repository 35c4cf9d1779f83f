package domain

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int) (*Product, error)
	UpdateProduct(product *Product) (*Product, error)
	DeleteProduct(id int) error
	ListProducts() ([]Product, error)
}
