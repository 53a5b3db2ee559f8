// Implements a single-level page table translating logical addresses to
// physical addresses. A missing mapping is a page fault, reported as a
// NotFound outcome rather than a default address.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PageTable maps page numbers to frame numbers for one address space.
type PageTable struct {
	pageSize int64
	table    map[int64]int64
}

// NewPageTable creates an empty table with the given page size.
// Wraps ErrInvalidArgument for a non-positive size.
func NewPageTable(pageSize int64) (*PageTable, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	return &PageTable{pageSize: pageSize, table: make(map[int64]int64)}, nil
}

// AddMapping installs or replaces the page -> frame mapping.
func (pt *PageTable) AddMapping(pageNum, frameNum int64) {
	pt.table[pageNum] = frameNum
}

// Translate converts a logical address to a physical one using
// frame*pageSize + offset. A page without a mapping wraps ErrNotFound
// (page fault).
func (pt *PageTable) Translate(logicalAddr int64) (int64, error) {
	pageNum := logicalAddr / pt.pageSize
	offset := logicalAddr % pt.pageSize

	frameNum, ok := pt.table[pageNum]
	if !ok {
		return 0, fmt.Errorf("%w: page fault, page %d not in memory", ErrNotFound, pageNum)
	}
	physical := frameNum*pt.pageSize + offset
	logrus.Debugf("<< Translate: logical %d -> page %d offset %d -> frame %d -> physical %d",
		logicalAddr, pageNum, offset, frameNum, physical)
	return physical, nil
}
