package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// EmployeesByDepartmentKey returns the cache key for the per-department
// headcount report.
func (r *CacheKeyStruct) EmployeesByDepartmentKey() string {
	return "report:employees_by_department"
}

var CacheKey = NewCacheKeyStruct()
