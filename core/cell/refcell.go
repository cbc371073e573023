package cell

// RefCell is a Cell with runtime borrow checking for use within one goroutine.
// It is not safe for concurrent use.
type RefCell[T any] struct {
	value  T
	labels Labels
	// borrows counts active readers; -1 marks an active writer.
	borrows int
}

var _ Cell[int] = (*RefCell[int])(nil)

// NewRefCell wraps value in a RefCell.
func NewRefCell[T any](value T, labels Labels) *RefCell[T] {
	return &RefCell[T]{value: value, labels: labels}
}

// Read runs fn with a shared borrow. It fails with ErrAlreadyMutablyBorrowed
// if a write borrow is outstanding.
func (c *RefCell[T]) Read(fn func(*T) error) error {
	if c.borrows < 0 {
		return wrap(c.labels.Read, ErrAlreadyMutablyBorrowed)
	}
	c.borrows++
	defer func() { c.borrows-- }()

	return fn(&c.value)
}

// Write runs fn with an exclusive borrow. It fails with ErrAlreadyBorrowed
// if any borrow is outstanding.
func (c *RefCell[T]) Write(fn func(*T) error) error {
	if c.borrows != 0 {
		return wrap(c.labels.Write, ErrAlreadyBorrowed)
	}
	c.borrows = -1
	defer func() { c.borrows = 0 }()

	return fn(&c.value)
}
