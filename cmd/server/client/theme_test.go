package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdict(t *testing.T) {
	assert.Contains(t, verdict(true, "ELIGIBLE", "not eligible"), "ELIGIBLE")
	assert.NotContains(t, verdict(true, "ELIGIBLE", "not eligible"), "not eligible")
	assert.Contains(t, verdict(false, "Success", "Failure"), "Failure")
}
