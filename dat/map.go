package dat

// RuneMap maps BMP code points to dense symbol IDs with a two-level page
// table. Top[hi] holds a 1-based page index or 0 for an absent page; a page
// covers 256 code points. Vietnamese text touches only a handful of pages
// (Basic Latin, Latin-1, Latin Extended-A/B, Latin Extended Additional).
type RuneMap struct {
	Top   [256]uint16
	Pages []uint16 // flat, 256 entries per page
}

// Dense returns the dense ID for code point bmp, or 0 if unmapped.
func (m *RuneMap) Dense(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *RuneMap) NumPages() int { return len(m.Pages) >> 8 }

// Set maps bmp to dense. A dense value of 0 clears the mapping.
func (m *RuneMap) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(m.NumPages())
		m.Top[hi] = pi
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = dense
}
