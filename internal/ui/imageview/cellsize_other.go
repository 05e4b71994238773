//go:build !unix

package imageview

// CellSize returns the assumed 8x16 cell size.
func CellSize() (cellW, cellH int) {
	return defaultCellW, defaultCellH
}
