package utils

import (
	"strconv"
)

// ParseID accepts only positive integers that fit a signed 64-bit primary key,
// anything else is reported as 0
func ParseID(in string) uint64 {
	id, err := strconv.ParseUint(in, 10, 63)
	if err != nil {
		return 0
	}
	return id
}
