package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProjects(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"keeps order", []string{"b", "a"}, []string{"b", "a"}},
		{"drops duplicates", []string{"a", "b", "a"}, []string{"a", "b"}},
		{"drops sentinel", []string{NoProject, "a", NoProject}, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProjects(tt.ids))
		})
	}
}
