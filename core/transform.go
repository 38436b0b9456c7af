package core

// Transformer mutates an Entry in place.
type Transformer interface {
	Transform(e *Entry) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(e *Entry, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(e); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of e, safe to pass to a Transformer when e is
// shared, e.g. cached by a dictionary reader.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Translation = append([]string(nil), e.Translation...)
	if e.Basic != nil {
		b := *e.Basic
		b.Explains = append([]string(nil), e.Basic.Explains...)
		c.Basic = &b
	}
	if e.Web != nil {
		c.Web = make([]WebItem, len(e.Web))
		for i, w := range e.Web {
			c.Web[i] = WebItem{Key: w.Key, Value: append([]string(nil), w.Value...)}
		}
	}
	return &c
}
