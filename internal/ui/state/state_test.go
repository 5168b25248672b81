package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codesearch/internal/domain"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	assert.Equal(t, domain.NoProject, s.ActiveProject)
	assert.Equal(t, []string{domain.NoProject}, s.Registry)
	assert.Empty(t, s.Rows)
	assert.Empty(t, s.Query)
	assert.Empty(t, s.Target)
	assert.False(t, s.DialogOpen)
	assert.False(t, s.Loading)
	assert.False(t, s.AlertVisible)
}

func TestSetRegistryNormalizes(t *testing.T) {
	s := NewSession()
	s.SetRegistry([]string{"proj1", "None", "proj2", "proj1"})
	assert.Equal(t, []string{"None", "proj1", "proj2"}, s.Registry)
	assert.Equal(t, []string{"proj1", "proj2"}, s.Projects())

	s.SetRegistry(nil)
	assert.Equal(t, []string{"None"}, s.Registry)
	assert.Nil(t, s.Projects())
}

func TestAlertTokens(t *testing.T) {
	s := NewSession()
	first := s.ShowAlert("Input not specified")
	second := s.ShowAlert("Input not specified")

	assert.False(t, s.ExpireAlert(first), "stale timer must not clear a newer alert")
	assert.True(t, s.AlertVisible)
	assert.True(t, s.ExpireAlert(second))
	assert.False(t, s.AlertVisible)
	assert.False(t, s.ExpireAlert(second))
}

func TestSetRowsResetsSelection(t *testing.T) {
	s := NewSession()
	s.SetRows([]domain.Row{{ID: 0}, {ID: 1}})
	s.SelectedRow = 1
	s.ExpandedRow = 1

	row, ok := s.SelectedRowData()
	require.True(t, ok)
	assert.Equal(t, 1, row.ID)

	s.SetRows(nil)
	assert.NotNil(t, s.Rows)
	assert.Empty(t, s.Rows)
	assert.Equal(t, -1, s.ExpandedRow)
	_, ok = s.SelectedRowData()
	assert.False(t, ok)
}
