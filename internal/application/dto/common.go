package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta mínima de creación: el id asignado.
type IDResponse struct {
	ID string `json:"id"`
}

// UpdatedResponse filas afectadas por una actualización.
type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

// DeletedResponse filas afectadas por un borrado.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
