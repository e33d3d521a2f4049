package optional

// Optional is either a present value or nothing. Unlike a (value, flag) pair, an absent
// Optional carries no stale value that could be read by accident.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSome() bool {
	return o.present
}

// Get returns the value and whether it is present. Zero value is returned for None.
func (o Optional[T]) Get() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}

	return o.value, true
}
