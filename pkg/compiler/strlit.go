package compiler

// strlit is one entry of the string-literal dedup table: a value and the
// backend label reserved for it.
type strlit struct {
	val   string
	label int
	next  *strlit
}

// strlitTable de-duplicates string literals by exact equality, handing out
// labels from the same counter codegen uses for control-flow labels.
type strlitTable struct {
	head *strlit
}

// add returns name's label, reserving a fresh one via newLabel if this is
// the first time name has been seen.
func (t *strlitTable) add(name string, newLabel func() int) int {
	for s := t.head; s != nil; s = s.next {
		if s.val == name {
			return s.label
		}
	}
	s := &strlit{val: name, label: newLabel(), next: t.head}
	t.head = s
	return s.label
}
