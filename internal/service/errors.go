package service

import "errors"

var (
	// ErrInvalidRange конец диапазона не позже начала
	ErrInvalidRange = errors.New("range end must be after range start")
	// ErrSourcesUnavailable не удалось прочитать ни один источник данных календаря
	ErrSourcesUnavailable = errors.New("calendar sources unavailable")
	ErrExportFailed       = errors.New("failed to generate spreadsheet")
)
