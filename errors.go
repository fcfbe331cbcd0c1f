package histquote

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date format")
	ErrMissingDate = errors.New("record without date")
	ErrNotASeries  = errors.New("response is not a list of records")
	ErrHTTPStatus  = errors.New("unexpected http status")
)
