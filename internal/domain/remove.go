package domain

// RemoveElements returns a copy of els without the elements whose ID is in
// ids. Unknown IDs are ignored and edges referencing removed nodes stay.
func RemoveElements(ids []string, els Elements) Elements {
	drop := idSet(ids)
	out := make(Elements, 0, len(els))
	for _, el := range els {
		if _, ok := drop[el.ID()]; ok {
			continue
		}
		out = append(out, el.Clone())
	}
	return out
}

// RemoveElementsCascade is RemoveElements that also drops every edge whose
// source or target is one of the removed IDs.
func RemoveElementsCascade(ids []string, els Elements) Elements {
	drop := idSet(ids)
	out := make(Elements, 0, len(els))
	for _, el := range els {
		if _, ok := drop[el.ID()]; ok {
			continue
		}
		if el.IsEdge() {
			_, src := drop[el.Edge.Source]
			_, tgt := drop[el.Edge.Target]
			if src || tgt {
				continue
			}
		}
		out = append(out, el.Clone())
	}
	return out
}

// ElementIDs extracts the IDs of a selection of elements
func ElementIDs(selection []Element) []string {
	return Elements(selection).IDs()
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
