package offerings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offering representa un trámite notarial del catálogo.
// El código (POD-001, ESC-002, ...) es el identificador estable; el catálogo
// se siembra una vez y se actualiza por upsert sobre el código.
type Offering struct {
	Codigo      string
	Nombre      string
	Descripcion string

	// Requisitos en texto libre, separados por coma.
	Requisitos string

	Precio           decimal.Decimal
	DuracionEstimada string
	Categoria        string

	Activo   bool
	CreadoEn time.Time
}
