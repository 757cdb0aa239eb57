package request

// ByIDRequest binds endpoints that take a UUID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
