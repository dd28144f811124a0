package builder

import "context"

// House is the product built by HouseBuilder.
type House struct {
	Walls  string
	Roof   string
	Garage bool
}

var _ Builder[*House] = (*HouseBuilder)(nil)

// HouseBuilder builds a House step by step through a fluent interface.
type HouseBuilder struct {
	house *House
}

func NewHouseBuilder() *HouseBuilder {
	return &HouseBuilder{house: &House{}}
}

func (b *HouseBuilder) Walls() *HouseBuilder {
	b.house.Walls = "brick"
	return b
}

func (b *HouseBuilder) Roof() *HouseBuilder {
	b.house.Roof = "tile"
	return b
}

func (b *HouseBuilder) Garage() *HouseBuilder {
	b.house.Garage = true
	return b
}

// Build returns the house. The builder keeps working on the same house afterwards.
func (b *HouseBuilder) Build(ctx context.Context) (*House, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.house, nil
}
