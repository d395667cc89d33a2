package cart

import (
	"fmt"
	"strconv"
)

const firstOrderNumber = "A0000001"

// nextOrderNumber allocates the order number after last ("A" + 7 digits).
// An empty or unparseable last number degrades to the fixed starting value
// rather than failing cart creation.
func nextOrderNumber(last string) string {
	if last == "" {
		return firstOrderNumber
	}

	n, err := strconv.Atoi(last[1:])
	if err != nil {
		return firstOrderNumber
	}

	return fmt.Sprintf("A%07d", n+1)
}
