package spot

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid calculation input")
	ErrInvalidProfile  = errors.New("invalid tariff profile")
	ErrUnsupportedYear = errors.New("unsupported year")
)
