package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestClassify_CantidadCeroSiempreAgotado(t *testing.T) {
	assert.Equal(t, StatusOutOfStock, Classify(0, nil))
	assert.Equal(t, StatusOutOfStock, Classify(0, ptr(10)))
	// Cero gana incluso con umbral cero
	assert.Equal(t, StatusOutOfStock, Classify(0, ptr(0)))
}

func TestClassify_UmbralInclusivo(t *testing.T) {
	// Cantidad igual al umbral cuenta como bajo
	assert.Equal(t, StatusLowStock, Classify(10, ptr(10)))
	assert.Equal(t, StatusLowStock, Classify(5, ptr(10)))
	assert.Equal(t, StatusOK, Classify(11, ptr(10)))
}

func TestClassify_SinUmbralNuncaBajo(t *testing.T) {
	assert.Equal(t, StatusOK, Classify(1, nil))
	assert.Equal(t, StatusOK, Classify(1000000, nil))
}

func TestClassify_UmbralCero(t *testing.T) {
	// Con umbral 0, cualquier cantidad positiva es OK
	assert.Equal(t, StatusOK, Classify(1, ptr(0)))
}

func TestIsBelowThreshold(t *testing.T) {
	assert.True(t, IsBelowThreshold(0, nil))
	assert.True(t, IsBelowThreshold(10, ptr(10)))
	assert.False(t, IsBelowThreshold(11, ptr(10)))
	assert.False(t, IsBelowThreshold(3, nil))
}
