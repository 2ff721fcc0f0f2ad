package diskstat

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Usage holds the partition totals for a path.
type Usage struct {
	Path  string
	Total uint64
	Free  uint64
}

// Read returns usage for the partition containing path.
func Read(path string) (Usage, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return Usage{}, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return Usage{
		Path:  path,
		Total: stat.Total,
		Free:  stat.Free,
	}, nil
}
