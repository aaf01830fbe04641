package walls

// catalog partitions the wall list into one singly linked traversal per
// kind, in list order, plus a separate list of NNE walls. NNE walls render
// shading only; their solid silhouette is skipped by the silhouette pass, so
// they need their own traversal.
func (s *Set) catalog() {
	for kind := Kind(0); kind < KindCount; kind++ {
		last := &s.kindHeads[kind]
		for i := range s.walls {
			if s.walls[i].Kind == kind {
				*last = &s.walls[i]
				last = &s.walls[i].nextKind
			}
		}
		*last = nil
	}

	last := &s.firstWhite
	for i := range s.walls {
		if s.walls[i].Dir == DirNNE {
			*last = &s.walls[i]
			last = &s.walls[i].nextWhite
		}
	}
	*last = nil
}
