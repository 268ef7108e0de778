package service

import "errors"

// Errores centinela que los handlers traducen a códigos HTTP.
// Todo lo demás degrada o sale como 500.
var (
	// ErrNotFound: el usuario o producto referenciado no existe (404).
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument: límite fuera de rango, estrategia desconocida,
	// tipo de interacción inválido. Se rechaza antes de computar nada (400).
	ErrInvalidArgument = errors.New("invalid argument")
)
