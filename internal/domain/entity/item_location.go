package entity

// ItemLocation representa la cantidad disponible (QOH) de un ítem en una ubicación.
// Como máximo una fila por par (ItemNumber, Location); se crea al primer ingreso o traslado.
type ItemLocation struct {
	ID             string `json:"id"`
	ItemNumber     string `json:"itemNumber"`
	Location       string `json:"location"`
	QuantityOnHand int    `json:"qoh"` // nunca negativo
}
