package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у автосервиса нет расписания
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDayNotFound возвращается, когда на указанный день недели нет записи (сервис закрыт)
	ErrDayNotFound = errors.New("schedule.repository: day schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
