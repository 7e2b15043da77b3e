package repokit

// Binder produces a repo bound to one Queryer, pool or transaction alike
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function to a Binder
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer guards against binding a repo to a nil seam
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// MustBind validates the queryer then binds through b
func MustBind[T any](b Binder[T], q Queryer) T {
	return b.Bind(RequireQueryer(q))
}
