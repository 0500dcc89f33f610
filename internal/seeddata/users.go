package seeddata

import (
	"time"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

// seededAt is the creation instant shared by every literal record.
var seededAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

var users = []domain.User{
	{
		ID:        "user_antony",
		Email:     "antony@gmail.com",
		Name:      "Luis Antony",
		Phone:     "+51 912112268",
		Role:      domain.RoleAdmin,
		CreatedAt: seededAt,
	},
	{
		ID:        "user_cliente",
		Email:     "cliente@arcosyglobos.pe",
		Name:      "Juan Pérez",
		Phone:     "+51 987 654 321",
		Role:      domain.RoleClient,
		CreatedAt: seededAt,
	},
	{
		ID:        "user_decorador",
		Email:     "decorador@arcosyglobos.pe",
		Name:      "María González",
		Phone:     "+51 987 654 322",
		Role:      domain.RoleDecorator,
		CreatedAt: seededAt,
	},
	{
		ID:        "user_admin",
		Email:     "admin@arcosyglobos.pe",
		Name:      "Carlos Rodríguez",
		Phone:     "+51 987 654 323",
		Role:      domain.RoleAdmin,
		CreatedAt: seededAt,
	},
	{
		ID:        "user_logistica",
		Email:     "logistica@arcosyglobos.pe",
		Name:      "Ana Martínez",
		Phone:     "+51 987 654 324",
		Role:      domain.RoleLogistics,
		CreatedAt: seededAt,
	},
	{
		ID:        "user_gestor",
		Email:     "gestor@arcosyglobos.pe",
		Name:      "Luis Fernández",
		Phone:     "+51 987 654 325",
		Role:      domain.RoleManager,
		CreatedAt: seededAt,
	},
}

// Users returns a copy of the literal user set in declaration order.
func Users() []domain.User {
	return append([]domain.User(nil), users...)
}
