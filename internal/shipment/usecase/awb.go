package usecase

import (
	"fmt"
	"math/rand"
	"time"
)

// fallbackAWBPrefix is a literal the carrier never issues, so generated
// placeholders can never collide with real tracking codes.
const fallbackAWBPrefix = "AWB-DEL"

// GenerateFallbackAWB produces a placeholder tracking code for shipments
// the carrier returned none for: prefix, UTC date, 6 random digits.
func GenerateFallbackAWB() string {
	date := time.Now().UTC().Format("20060102")
	suffix := 100000 + rand.Intn(900000)
	return fmt.Sprintf("%s-%s-%d", fallbackAWBPrefix, date, suffix)
}
