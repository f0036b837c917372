package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrInvalidAppName = errors.New("app_name is required")
	ErrInvalidMinutes = errors.New("minutes must be positive")
	ErrInvalidStep    = errors.New("step index out of range")
	ErrInvalidAction  = errors.New("unknown stats action")

	ErrUsageNotFound = errors.New("no usage record for this app today")
	ErrStatsNotFound = errors.New("stats not found for this date")

	ErrClassifierUnavailable = errors.New("classifier unavailable")
	ErrNoOpinion             = errors.New("classifier returned no opinion")
)
