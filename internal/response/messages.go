package response

// Canonical error messages used across handlers. Kept as constants so tests
// and clients can match on exact strings.
const (
	MsgUnauthorized       = "Unauthorized"
	MsgUnauthenticated    = "Unauthenticated"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserNotFound       = "User not found"
	MsgDepartmentNotFound = "Department not found"
	MsgEmployeeNotFound   = "Employee not found"
	MsgInvalidID          = "Invalid id"
	MsgEmailTaken         = "The email has already been taken"
	MsgConstraintViolated = "Storage constraint violated"
	MsgDepartmentInUse    = "Department is still referenced by employees"
	MsgInternal           = "Internal server error"
)
