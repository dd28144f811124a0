package bridge

import "fmt"

// Renderer is the implementation side of the bridge.
type Renderer interface {
	Render(shape string) string
}

type VectorRenderer struct{}

func (VectorRenderer) Render(shape string) string {
	return fmt.Sprintf("Drawing %s as vector", shape)
}

type RasterRenderer struct{}

func (RasterRenderer) Render(shape string) string {
	return fmt.Sprintf("Drawing %s as pixels", shape)
}

// Shape is the abstraction side, it draws through whatever Renderer it is given.
type Shape interface {
	Draw() string
}

type Circle struct {
	Renderer Renderer
}

func (c Circle) Draw() string {
	return c.Renderer.Render("circle")
}

type Square struct {
	Renderer Renderer
}

func (s Square) Draw() string {
	return s.Renderer.Render("square")
}
