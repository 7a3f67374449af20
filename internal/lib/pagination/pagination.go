// Package pagination computes the abbreviated page strip shown under a browse
// message.
package pagination

// Slot is one entry of the strip: either a page number or an ellipsis gap.
type Slot struct {
	Page     int
	Ellipsis bool
}

func (s Slot) IsCurrent(current int) bool {
	return !s.Ellipsis && s.Page == current
}

// VisiblePages returns the strip for current out of total with at most
// maxVisible entries. The first and last pages are always present when the
// strip is abbreviated; the interior window is centred on current and two
// slots are reserved for the ellipsis markers.
func VisiblePages(current, total, maxVisible int) []Slot {
	if total < 1 {
		total = 1
	}

	if total <= maxVisible {
		slots := make([]Slot, 0, total)
		for p := 1; p <= total; p++ {
			slots = append(slots, Slot{Page: p})
		}
		return slots
	}

	window := maxVisible - 4
	if window < 1 {
		window = 1
	}

	left := max(2, current-window/2)
	right := min(total-1, left+window-1)
	left = max(2, right-window+1)

	slots := make([]Slot, 0, maxVisible)
	slots = append(slots, Slot{Page: 1})
	if left > 2 {
		slots = append(slots, Slot{Ellipsis: true})
	}
	for p := left; p <= right; p++ {
		slots = append(slots, Slot{Page: p})
	}
	if right < total-1 {
		slots = append(slots, Slot{Ellipsis: true})
	}
	slots = append(slots, Slot{Page: total})

	return slots
}

// MaxVisible derives how many strip entries fit into widthPx when each one
// needs buttonMinPx. The result is never below minVisible and never above
// capVisible when capVisible is positive.
func MaxVisible(widthPx, buttonMinPx, minVisible, capVisible int) int {
	if buttonMinPx <= 0 {
		buttonMinPx = 44
	}
	widthPx = max(200, widthPx)

	n := widthPx / buttonMinPx
	if capVisible > 0 && n > capVisible {
		n = capVisible
	}
	if n < minVisible {
		n = minVisible
	}
	if n < 5 {
		n = 5
	}
	return n
}
