package usecase

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// newOrderID generates an order identifier in the ORD-<year>-<5 digits>
// format. Collisions are theoretically possible but the identifier space is
// only ever written by intake, which the desk runs serially in practice.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%05d", now.Year(), rand.IntN(100000))
}

// newQuoteID generates a quote identifier in the Q-<timestamp>-<4 letters>
// format, e.g. Q-20240115093055-KQZT.
func newQuoteID(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteByte(byte('A' + rand.IntN(26)))
	}
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102150405"), b.String())
}
