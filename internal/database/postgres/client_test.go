package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_CloseWithoutPool(t *testing.T) {
	assert.NotPanics(t, func() {
		(&Client{}).Close()
	})
}
