package submission

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReference(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PACAM-REDEMPTION-1700000000000", GenerateReference("REDEMPTION", 1700000000000))
	assert.Equal(t, GenerateReference("MF", 42), GenerateReference("MF", 42))
	assert.NotEqual(t, GenerateReference("MF", 42), GenerateReference("MF", 43))
}

func TestNewReference(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1700000000000)
	assert.Equal(t, "PACAM-CORP-INV-1700000000000", newReference("CORP-INV", at, false))

	unique := newReference("CORP-INV", at, true)
	assert.Regexp(t, regexp.MustCompile(`^PACAM-CORP-INV-1700000000000-[0-9A-Z]{6}$`), unique)
}
