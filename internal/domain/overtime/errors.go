package overtime

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found in dataset")
	ErrDepartmentNotFound = errors.New("department not found in dataset")
)
