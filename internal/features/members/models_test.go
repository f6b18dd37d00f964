package members

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Sari", (&Member{FirstName: "Sari", Username: "sari"}).DisplayName())
	assert.Equal(t, "@sari", (&Member{Username: "sari"}).DisplayName())
	assert.Equal(t, "kamu", (&Member{}).DisplayName())
}
