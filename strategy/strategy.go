package strategy

import "fmt"

// PaymentStrategy is one way of paying an order.
type PaymentStrategy interface {
	Pay(amount int) string
}

// The PaymentStrategyFunc type is an adapter to allow the use of ordinary functions as PaymentStrategy.
type PaymentStrategyFunc func(amount int) string

// Pay calls f(amount).
func (f PaymentStrategyFunc) Pay(amount int) string {
	return f(amount)
}

type CardPayment struct{}

func (CardPayment) Pay(amount int) string {
	return fmt.Sprintf("Paid %d by card", amount)
}

type CryptoPayment struct{}

func (CryptoPayment) Pay(amount int) string {
	return fmt.Sprintf("Paid %d in crypto", amount)
}

// Order delegates the payment to its strategy, which can be swapped at any time.
type Order struct {
	Strategy PaymentStrategy
}

func (o *Order) Checkout(amount int) string {
	return o.Strategy.Pay(amount)
}
