// Package payments simulates the escrow split applied to a contract's total
// amount. No payment processor is integrated; the computed Payment row is
// persisted with status held_in_escrow and released on contract completion.
package payments

import "math"

// ServiceFeeRate is the platform's cut of every contract.
const ServiceFeeRate = 0.10

// ComputeEscrowSplit divides a contract total into the platform service fee
// and the instructor payout, both rounded to cents. The two parts always sum
// back to the total.
func ComputeEscrowSplit(totalAmount float64) (serviceFee, instructorAmount float64) {
	serviceFee = roundCents(totalAmount * ServiceFeeRate)
	instructorAmount = roundCents(totalAmount - serviceFee)
	return serviceFee, instructorAmount
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
