package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("john@example.com")
	want := "https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm"

	assert.Equal(t, want, URL("john@example.com"))

	// case and surrounding whitespace are normalized away
	assert.Equal(t, want, URL("  John@Example.COM  "))
}
