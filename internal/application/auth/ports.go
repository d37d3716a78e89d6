package auth

import (
	"context"

	"github.com/medstock/medstock-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de empresa y usuario dentro de una transacción
// de BD, pasando repositorios atados a esa tx. Garantiza que el registro
// sea todo-o-nada: un fallo al insertar el usuario (p. ej. carrera sobre el
// email único) no deja una empresa huérfana.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
