package usecase

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fallbackAWBPattern = regexp.MustCompile(`^AWB-DEL-\d{8}-\d{6}$`)

func TestGenerateFallbackAWB_Format(t *testing.T) {
	awb := GenerateFallbackAWB()

	assert.Regexp(t, fallbackAWBPattern, awb)
	assert.Contains(t, awb, time.Now().UTC().Format("20060102"))
}

func TestGenerateFallbackAWB_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[GenerateFallbackAWB()] = true
	}

	// 20 draws from a 900k space; a collision here means the suffix
	// is not actually random.
	assert.Greater(t, len(seen), 1)
}

func TestGenerateFallbackAWB_PrefixReserved(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateFallbackAWB(), "AWB-DEL-"))
}
