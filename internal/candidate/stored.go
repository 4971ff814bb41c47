package candidate

// Stored is a persisted record: a snapshot of a session's Record with the
// identifier and timestamp injected by the store. It is write-once and never
// mutated after persistence.
type Stored struct {
	Record
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Collection is the shape of the persisted candidates file, preserving
// insertion order.
type Collection struct {
	Items []*Stored
}

// Len returns the number of stored candidates.
func (c *Collection) Len() int {
	return len(c.Items)
}

// FindByID returns the stored candidate with the given ID, or nil.
func (c *Collection) FindByID(id string) *Stored {
	for _, item := range c.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// IDs returns the identifiers of all stored candidates in insertion order.
func (c *Collection) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}
	return ids
}
