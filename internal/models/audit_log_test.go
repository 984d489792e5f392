package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditMetadata_RoundTripThroughDriver(t *testing.T) {
	m := AuditMetadata{"month": "2024-01"}

	v, err := m.Value()
	require.NoError(t, err)

	var scanned AuditMetadata
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, m, scanned)

	empty, err := AuditMetadata{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	assert.Error(t, scanned.Scan(12))
}
