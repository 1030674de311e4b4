package maybe

// Maybe is either Just(value) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, just: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

// Of wraps x if ok is true and returns Nothing otherwise. It bridges
// functions following the comma-ok idiom.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsNothing() bool {
	return !m.just
}

// AndThen chains a computation which may itself fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	return x.Map(f)
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match. Exactly one of its methods returns
// the matcher itself, the other returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
