package service

type PlanErrorCode string

const (
	PlanErrInvalidInput PlanErrorCode = "INVALID_INPUT"
	PlanErrNoSettings   PlanErrorCode = "NO_SETTINGS"
	PlanErrInternal     PlanErrorCode = "INTERNAL_ERROR"
)

// PlanError is a planning failure. Running out of free time is not one.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}
