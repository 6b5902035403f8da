package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyReferences(t *testing.T) {
	references := NewEmptyReferences()

	assert.NotNil(t, references.Counties)
	assert.Empty(t, references.Counties)

	jsonData, err := json.Marshal(references)
	require.NoError(t, err)
	assert.JSONEq(t, `{"counties":[]}`, string(jsonData),
		"empty references should encode as an empty array, not null")
}

func TestNewCountyReference(t *testing.T) {
	reference := NewCountyReference("Bungoma", 6)

	assert.Equal(t, "Bungoma", reference.Name)
	assert.Equal(t, 6, reference.SubCountyCount)

	jsonData, err := json.Marshal(reference)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bungoma","subCountyCount":6}`, string(jsonData))
}
