package jsregexp

// BranchID identifies the disjunction alternative a point of the pattern
// lives in. Every alternative of one disjunction shares a base; parent
// links lead to the alternative that encloses the disjunction.
type BranchID struct {
	parent *BranchID
	base   *BranchID
}

func newBranchID(parent, base *BranchID) *BranchID {
	b := &BranchID{parent: parent, base: base}
	if base == nil {
		b.base = b
	}
	return b
}

// Sibling returns the ID of the next alternative of the same disjunction.
func (b *BranchID) Sibling() *BranchID {
	return newBranchID(b.parent, b.base)
}

// Parent returns the enclosing alternative, or nil at the top level.
func (b *BranchID) Parent() *BranchID { return b.parent }

// SeparatedFrom reports whether b and alt lie in different alternatives of
// some common disjunction, in which case they can never both participate
// in one match.
func (b *BranchID) SeparatedFrom(alt *BranchID) bool {
	for self := b; self != nil; self = self.parent {
		for other := alt; other != nil; other = other.parent {
			if self.base == other.base && self != other {
				return true
			}
		}
	}
	return false
}
