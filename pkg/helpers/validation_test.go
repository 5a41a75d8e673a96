package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRole(t *testing.T) {
	v := NewCustomValidator()

	type payload struct {
		Role string `validate:"role"`
	}

	assert.NoError(t, v.Validate(payload{Role: "student"}))
	assert.NoError(t, v.Validate(payload{Role: "Administration"}))
	assert.Error(t, v.Validate(payload{Role: "wizard"}))
	assert.Error(t, v.Validate(payload{Role: ""}))
}

func TestValidateResourceName(t *testing.T) {
	v := NewCustomValidator()

	type payload struct {
		Name string `validate:"resource_name"`
	}

	assert.NoError(t, v.Validate(payload{Name: "Hydration"}))
	assert.NoError(t, v.Validate(payload{Name: "Morning run, part 2"}))
	assert.Error(t, v.Validate(payload{Name: ""}))
	assert.Error(t, v.Validate(payload{Name: " leading space"}))
	assert.Error(t, v.Validate(payload{Name: "trailing space "}))
}

func TestValidateFuture(t *testing.T) {
	v := NewCustomValidator()

	type payload struct {
		Deadline time.Time `validate:"future"`
	}

	assert.NoError(t, v.Validate(payload{Deadline: time.Now().Add(time.Hour)}))
	assert.Error(t, v.Validate(payload{Deadline: time.Now().Add(-time.Hour)}))
}
