package thumbstrip

// Window returns the [start, end) range of a size-wide window over count
// items, centred on center where the bounds allow.
func Window(center, count, size int) (start, end int) {
	if count <= 0 || size <= 0 {
		return 0, 0
	}
	if size >= count {
		return 0, count
	}
	start = center - size/2
	end = start + size
	if start < 0 {
		end -= start
		start = 0
	}
	if end > count {
		start -= end - count
		end = count
	}
	return start, end
}
