package gopaginator

const (
	MaxPageSize     = 100
	DefaultPageSize = 10
)

// IsNormalizedPageSizeMax returns the page size to use and whether size was
// already within (0, maxSize].
func IsNormalizedPageSizeMax(size int, maxSize int) (int, bool) {
	if size <= 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}

func NormalizePageSize(size int) int {
	return NormalizePageSizeMax(size, MaxPageSize)
}

// TotalPagesFor returns the number of pages needed to show count rows.
func TotalPagesFor(count int64, size int) int {
	if count <= 0 {
		return 0
	}

	size = NormalizePageSize(size)

	return int((count + int64(size) - 1) / int64(size))
}
