package orders

import "math"

var basePrices = map[CoffeeType]float64{
	Americano: 3.50,
	Latte:     4.50,
	Cortado:   4.00,
}

// alternativeMilkSurcharge applies to non-dairy milk options.
const alternativeMilkSurcharge = 0.50

// Price returns the cost of an order as a deterministic function of the
// coffee and milk types: the base drink price plus a surcharge for Oat or
// Almond milk, rounded to cents.
func Price(coffee CoffeeType, milk MilkType) float64 {
	price := basePrices[coffee]
	if milk == Oat || milk == Almond {
		price += alternativeMilkSurcharge
	}
	return math.Round(price*100) / 100
}
