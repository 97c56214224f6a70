package offerings

import "github.com/shopspring/decimal"

// Catalog devuelve el catálogo de trámites notariales que se siembra al
// arrancar. Las tarifas y requisitos vienen del tarifario vigente de la
// notaría; el código agrupa por categoría (POD, ESC, EMP, ...).
func Catalog() []Offering {
	return []Offering{
		{
			Codigo:           "POD-001",
			Nombre:           "Poder Simple",
			Descripcion:      "Otorgamiento de poder para realizar trámites específicos en representación de otra persona.",
			Requisitos:       "DNI vigente del otorgante,Datos completos del apoderado,Descripción clara de las facultades otorgadas",
			Precio:           decimal.RequireFromString("50.00"),
			DuracionEstimada: "1 día",
			Categoria:        "Poderes",
		},
		{
			Codigo:           "POD-002",
			Nombre:           "Poder Amplio y General",
			Descripcion:      "Poder con amplias facultades para representación legal en diversos actos jurídicos.",
			Requisitos:       "DNI vigente del otorgante,Datos completos del apoderado,Lista detallada de facultades,Dos testigos con DNI",
			Precio:           decimal.RequireFromString("80.00"),
			DuracionEstimada: "1 día",
			Categoria:        "Poderes",
		},
		{
			Codigo:           "POD-003",
			Nombre:           "Poder Especial",
			Descripcion:      "Poder otorgado para actos específicos como venta de inmuebles o trámites bancarios.",
			Requisitos:       "DNI vigente del otorgante,DNI del apoderado,Descripción detallada del acto específico",
			Precio:           decimal.RequireFromString("70.00"),
			DuracionEstimada: "1 día",
			Categoria:        "Poderes",
		},
		{
			Codigo:           "ESC-001",
			Nombre:           "Compraventa de Inmueble",
			Descripcion:      "Formalización legal de la transferencia de propiedad de un bien inmueble.",
			Requisitos:       "DNI vigente de ambas partes,Partida registral actualizada,Certificado de búsqueda catastral,Comprobante de pago de impuestos,Certificado de gravámenes",
			Precio:           decimal.RequireFromString("250.00"),
			DuracionEstimada: "3-5 días",
			Categoria:        "Escrituras",
		},
		{
			Codigo:           "ESC-002",
			Nombre:           "Donación",
			Descripcion:      "Acto de liberalidad mediante el cual una persona transfiere gratuitamente un bien a otra.",
			Requisitos:       "DNI vigente del donante,DNI vigente del donatario,Partida de nacimiento (si es familiar),Documento de propiedad del bien",
			Precio:           decimal.RequireFromString("150.00"),
			DuracionEstimada: "2-3 días",
			Categoria:        "Escrituras",
		},
		{
			Codigo:           "EMP-001",
			Nombre:           "Constitución de Empresa",
			Descripcion:      "Formalización de la constitución de una persona jurídica (SAC, SRL, SA).",
			Requisitos:       "DNI de todos los socios,Reserva de nombre en SUNARP,Estatutos de la empresa,Capital social mínimo,Minuta de constitución",
			Precio:           decimal.RequireFromString("300.00"),
			DuracionEstimada: "5-7 días",
			Categoria:        "Empresarial",
		},
		{
			Codigo:           "EMP-002",
			Nombre:           "Aumento de Capital",
			Descripcion:      "Incremento del capital social de una empresa ya constituida.",
			Requisitos:       "Vigencia de poder del representante legal,Acuerdo de junta de socios,Estados financieros actualizados,RUC de la empresa",
			Precio:           decimal.RequireFromString("200.00"),
			DuracionEstimada: "3-5 días",
			Categoria:        "Empresarial",
		},
		{
			Codigo:           "TEST-001",
			Nombre:           "Testamento",
			Descripcion:      "Documento legal mediante el cual una persona dispone de sus bienes para después de su muerte.",
			Requisitos:       "DNI vigente del testador,Lista de bienes y propiedades,Datos de los beneficiarios,Dos testigos con DNI",
			Precio:           decimal.RequireFromString("180.00"),
			DuracionEstimada: "2-3 días",
			Categoria:        "Testamentos",
		},
		{
			Codigo:           "SUC-001",
			Nombre:           "Declaratoria de Herederos",
			Descripcion:      "Reconocimiento legal de los herederos de una persona fallecida sin testamento.",
			Requisitos:       "Partida de defunción original,Partidas de nacimiento de herederos,DNI vigente de todos los herederos,Testamento (si existe),Partidas de matrimonio (si aplica)",
			Precio:           decimal.RequireFromString("400.00"),
			DuracionEstimada: "7-10 días",
			Categoria:        "Sucesiones",
		},
		{
			Codigo:           "CERT-001",
			Nombre:           "Legalización de Firmas",
			Descripcion:      "Certificación de la autenticidad de una firma en un documento.",
			Requisitos:       "DNI vigente,Documento original a legalizar,Presencia del firmante",
			Precio:           decimal.RequireFromString("35.00"),
			DuracionEstimada: "30 minutos",
			Categoria:        "Certificación",
		},
		{
			Codigo:           "CERT-002",
			Nombre:           "Legalización de Contratos",
			Descripcion:      "Certificación notarial de un contrato privado entre partes.",
			Requisitos:       "DNI de todas las partes,Contrato impreso (3 copias),Presencia de todos los firmantes",
			Precio:           decimal.RequireFromString("60.00"),
			DuracionEstimada: "1 día",
			Categoria:        "Certificación",
		},
		{
			Codigo:           "DOC-001",
			Nombre:           "Declaración Jurada",
			Descripcion:      "Manifestación escrita de hechos bajo juramento ante notario.",
			Requisitos:       "DNI vigente del declarante,Redacción del texto a declarar",
			Precio:           decimal.RequireFromString("25.00"),
			DuracionEstimada: "1 día",
			Categoria:        "Documentación",
		},
		{
			Codigo:           "DOC-002",
			Nombre:           "Cartas Notariales",
			Descripcion:      "Comunicación formal certificada por notario con validez legal.",
			Requisitos:       "DNI del remitente,Texto de la carta,Datos del destinatario",
			Precio:           decimal.RequireFromString("50.00"),
			DuracionEstimada: "1-2 días",
			Categoria:        "Documentación",
		},
		{
			Codigo:           "VEH-001",
			Nombre:           "Transferencia Vehicular",
			Descripcion:      "Cambio de titularidad de un vehículo automotor.",
			Requisitos:       "DNI de vendedor y comprador,Tarjeta de propiedad original,Certificado de no gravamen,Pago de impuestos,Revisión técnica vigente",
			Precio:           decimal.RequireFromString("120.00"),
			DuracionEstimada: "2-3 días",
			Categoria:        "Transferencias",
		},
		{
			Codigo:           "HIP-001",
			Nombre:           "Constitución de Hipoteca",
			Descripcion:      "Garantía real sobre un bien inmueble para respaldar un crédito.",
			Requisitos:       "DNI de acreedor y deudor,Partida registral del inmueble,Contrato de préstamo,Tasación del bien",
			Precio:           decimal.RequireFromString("200.00"),
			DuracionEstimada: "3-5 días",
			Categoria:        "Garantías",
		},
		{
			Codigo:           "MAT-001",
			Nombre:           "Matrimonio Civil",
			Descripcion:      "Celebración de matrimonio civil ante notario público.",
			Requisitos:       "DNI vigente de ambos contrayentes,Certificado médico prenupcial,Dos testigos mayores de edad con DNI,Certificado de soltería",
			Precio:           decimal.RequireFromString("250.00"),
			DuracionEstimada: "15 días",
			Categoria:        "Familia",
		},
		{
			Codigo:           "VIAJE-001",
			Nombre:           "Autorización de Viaje de Menor",
			Descripcion:      "Permiso notarial para que un menor viaje al extranjero.",
			Requisitos:       "DNI del menor,DNI de ambos padres,Partida de nacimiento del menor,Datos del viaje (destino, fechas)",
			Precio:           decimal.RequireFromString("60.00"),
			DuracionEstimada: "1 día",
			Categoria:        "Autorizaciones",
		},
	}
}
