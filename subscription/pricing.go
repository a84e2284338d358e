package subscription

import "cinepass-cli/model"

// PriceBreakdown is the result of pricing a batch of tickets against a
// subscription's benefits.
type PriceBreakdown struct {
	OriginalTotal      float64
	FinalTotal         float64
	FreeTicketsApplied int
	DiscountAmount     float64
	DiscountPercent    float64
}

// CalculatePrice prices quantity tickets at ticketPrice each. Free tickets
// are consumed first, then the plan's percent discount applies to whatever
// remains. The final total never goes below zero. A nil or inactive
// subscription yields the original total untouched.
func CalculatePrice(sub *model.UserSubscription, ticketPrice float64, quantity int) PriceBreakdown {
	original := ticketPrice * float64(quantity)

	if !sub.Active() {
		return PriceBreakdown{OriginalTotal: original, FinalTotal: original}
	}

	free := sub.FreeTicketsRemaining
	if free > quantity {
		free = quantity
	}
	if free < 0 {
		free = 0
	}

	subtotal := float64(quantity-free) * ticketPrice
	discount := subtotal * (sub.DiscountPercent / 100)
	final := subtotal - discount
	if final < 0 {
		final = 0
	}

	return PriceBreakdown{
		OriginalTotal:      original,
		FinalTotal:         final,
		FreeTicketsApplied: free,
		DiscountAmount:     discount + float64(free)*ticketPrice,
		DiscountPercent:    sub.DiscountPercent,
	}
}
