package main

import (
	"context"
	"fmt"

	"github.com/go-leo/patterns/adapter"
	"github.com/go-leo/patterns/bridge"
	"github.com/go-leo/patterns/builder"
	"github.com/go-leo/patterns/chain/access"
	"github.com/go-leo/patterns/factory"
	"github.com/go-leo/patterns/factory/abstract"
	"github.com/go-leo/patterns/internal/logging"
	"github.com/go-leo/patterns/iterator"
	"github.com/go-leo/patterns/proxy"
	"github.com/go-leo/patterns/singleton"
	"github.com/go-leo/patterns/strategy"
)

// Walks through every pattern of the catalogue, printing what each one produces.
func main() {
	logger := logging.New("labs", logging.Magenta)
	ctx := context.Background()

	fmt.Println(singleton.Instance() == singleton.Instance())

	fmt.Println(factory.PlanDelivery(factory.RoadLogistics{}))
	fmt.Println(factory.PlanDelivery(factory.SeaLogistics{}))

	gui, err := abstract.FactoryMaker{}.MakeFactory(abstract.WindowsKind)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}
	window := abstract.NewWindow(gui)
	fmt.Println(window.Button.Render(), window.Checkbox.Render())

	house, err := builder.NewHouseBuilder().Walls().Roof().Garage().Build(ctx)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}
	fmt.Printf("%+v\n", *house)

	order := &strategy.Order{Strategy: strategy.CardPayment{}}
	fmt.Println(order.Checkout(100))
	order.Strategy = strategy.CryptoPayment{}
	fmt.Println(order.Checkout(100))

	fmt.Println(access.Check(access.NewChain(), access.Request{"user": "egor", "role": "admin"}).Result)

	fmt.Println(iterator.Collect[int](iterator.NewRange(1, 5)))

	fmt.Println(proxy.NewProxy(proxy.Logger(logger)).Request())

	fmt.Println(bridge.Circle{Renderer: bridge.VectorRenderer{}}.Draw())

	fmt.Println(adapter.ClientCode(adapter.Adapter{Adaptee: adapter.OldAPI{}}))
}
