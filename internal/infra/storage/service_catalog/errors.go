package service_catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда хотя бы одна из запрошенных услуг не найдена у тенанта
	ErrServiceNotFound = errors.New("service_catalog.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service_catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service_catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service_catalog.repository: failed to scan row")
)
