package objects

// Object is anything that can be put into a Registry.
// Implementations embed Base.
type Object interface {
	ObjectBase() *Base
}

type Base struct {
	id       ID
	registry *Registry
}

func (b *Base) ObjectBase() *Base {
	return b
}

// ObjectID returns the id issued at registration, or the zero ID.
func (b *Base) ObjectID() ID {
	return b.id
}

func (b *Base) ObjectRegistry() *Registry {
	return b.registry
}
