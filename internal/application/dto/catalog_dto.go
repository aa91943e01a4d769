package dto

// CreateWarehouseRequest entrada para crear un almacén. Name vacío = "Almacén <code>".
type CreateWarehouseRequest struct {
	Code string `json:"code" validate:"required,max=20"`
	Name string `json:"name" validate:"max=200"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
