package httperror

// Error is the envelope for errors returned outside of resource
// responses, e.g. by middleware.
type Error struct {
	Message string `json:"error" example:"you must specify a vendor type"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
