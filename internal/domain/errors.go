package domain

import "errors"

var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrCatalogUnavailable = errors.New("catalog not loaded")
	ErrStaticCatalog      = errors.New("catalog is static and cannot be reloaded")
)
