package schedule

import "sort"

// ResolveConflicts collapses overlapping candidate blocks using the type
// priority table in blockPriority: a higher-priority block replaces the
// single lower-priority block it overlaps with; it never merges with or
// displaces a second existing block.
func ResolveConflicts(blocks []rawBlock) []rawBlock {
	var kept []rawBlock

	for _, candidate := range blocks {
		overlapped := false

		for idx, existing := range kept {
			if !blocksOverlap(candidate.start, candidate.end, existing.start, existing.end) {
				continue
			}
			overlapped = true
			if blockPriority[candidate.block.Type] > blockPriority[existing.block.Type] {
				kept[idx] = candidate
			}
			break
		}

		if !overlapped {
			kept = append(kept, candidate)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })
	return kept
}

func blocksOverlap(start1, end1, start2, end2 int) bool {
	lo := start1
	if start2 > lo {
		lo = start2
	}
	hi := end1
	if end2 < hi {
		hi = end2
	}
	return lo < hi
}
