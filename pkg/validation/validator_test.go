package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required"`
	Age      int    `json:"age" validate:"required,gte=0"`
}

func TestStructValid(t *testing.T) {
	assert.Nil(t, Struct(sampleRequest{Username: "jamie", Age: 25}))
}

func TestStructMissingFields(t *testing.T) {
	details := Struct(sampleRequest{})
	assert.Equal(t, "is required", details["username"])
	assert.Contains(t, details, "age")
}

func TestStructUsesJSONFieldNames(t *testing.T) {
	details := Struct(sampleRequest{Age: 25})
	assert.Contains(t, details, "username")
	assert.NotContains(t, details, "Username")
}
