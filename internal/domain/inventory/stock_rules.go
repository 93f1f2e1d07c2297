package inventory

import "math"

// ConsumeQuantity aplica un consumo sobre la cantidad disponible sin bajar de cero.
// NuevaCantidad = max(0, Actual - Consumo)
func ConsumeQuantity(onHand, qty int) int {
	if qty >= onHand {
		return 0
	}
	return onHand - qty
}

// CanTransfer indica si el origen cubre la cantidad solicitada.
func CanTransfer(sourceOnHand, qty int) bool {
	return sourceOnHand >= qty
}

// CanReceive indica si sumar qty a onHand cabe en un int sin desbordar.
// Un desborde dejaría la cantidad disponible negativa.
func CanReceive(onHand, qty int) bool {
	return qty >= 0 && qty <= math.MaxInt-onHand
}
