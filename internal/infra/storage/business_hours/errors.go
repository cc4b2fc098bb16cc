package business_hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда у тенанта нет сохраненных рабочих часов
	ErrHoursNotFound = errors.New("business_hours.repository: business hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("business_hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("business_hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("business_hours.repository: failed to scan row")
)
