package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Q     string `query:"q"`
	Limit int    `query:"limit" validate:"min=0,max=500"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
