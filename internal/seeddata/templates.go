package seeddata

import "github.com/Andre121314115/arcos-globos/internal/core/domain"

var templates = []domain.Template{
	{
		ID:          "template_arco_clasico",
		Name:        "Arco Clásico",
		Description: "Arco decorativo elegante para eventos formales y ceremonias",
		Category:    domain.CategoryArch,
		BasePrice:   150.00,
		Active:      true,
		CreatedAt:   seededAt,
	},
	{
		ID:          "template_arco_premium",
		Name:        "Arco Premium",
		Description: "Arco decorativo de lujo con materiales premium",
		Category:    domain.CategoryArch,
		BasePrice:   250.00,
		Active:      true,
		CreatedAt:   seededAt,
	},
	{
		ID:          "template_columna_basica",
		Name:        "Columna Básica",
		Description: "Columna decorativa con globos estándar",
		Category:    domain.CategoryColumn,
		BasePrice:   80.00,
		Active:      true,
		CreatedAt:   seededAt,
	},
	{
		ID:          "template_columna_premium",
		Name:        "Columna Premium",
		Description: "Columna decorativa con globos de alta calidad y diseño exclusivo",
		Category:    domain.CategoryColumn,
		BasePrice:   120.00,
		Active:      true,
		CreatedAt:   seededAt,
	},
	{
		ID:          "template_centro_basico",
		Name:        "Centro de Mesa Básico",
		Description: "Centro de mesa decorativo estándar",
		Category:    domain.CategoryCenterpiece,
		BasePrice:   50.00,
		Active:      true,
		CreatedAt:   seededAt,
	},
	{
		ID:          "template_centro_elegante",
		Name:        "Centro de Mesa Elegante",
		Description: "Centro de mesa decorativo elegante para eventos especiales",
		Category:    domain.CategoryCenterpiece,
		BasePrice:   90.00,
		Active:      true,
		CreatedAt:   seededAt,
	},
}

// Templates returns a copy of the literal template set in declaration order.
func Templates() []domain.Template {
	return append([]domain.Template(nil), templates...)
}
