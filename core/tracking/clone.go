package tracking

// Cloner is implemented by item types that need a deep copy when delivered
// to a tracker or returned from a snapshot.
type Cloner[M any] interface {
	Clone() M
}

// Clone returns v.Clone() when v implements Cloner[M] and v itself otherwise.
func Clone[M any](v M) M {
	if c, ok := any(v).(Cloner[M]); ok {
		return c.Clone()
	}
	return v
}
