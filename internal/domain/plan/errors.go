package plan

import "errors"

var (
	ErrPlanNotFound       = errors.New("compensation plan not found")
	ErrPlanPositionExists = errors.New("compensation plan already exists for this position")
)
