package adjustment

import "errors"

var (
	ErrInvalidBenefitType = errors.New("invalid benefit type")
)
