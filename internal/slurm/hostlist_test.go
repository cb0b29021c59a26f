package slurm

import (
	"reflect"
	"testing"
)

func TestExpandHostlist(t *testing.T) {
	tests := []struct {
		name     string
		list     string
		expected []string
	}{
		{
			name:     "single host",
			list:     "login1",
			expected: []string{"login1"},
		},
		{
			name:     "plain list",
			list:     "node1,node2",
			expected: []string{"node1", "node2"},
		},
		{
			name:     "simple range",
			list:     "node[1-3]",
			expected: []string{"node1", "node2", "node3"},
		},
		{
			name:     "zero padded range",
			list:     "nid[00120-00122]",
			expected: []string{"nid00120", "nid00121", "nid00122"},
		},
		{
			name:     "range and singles",
			list:     "a[1-2,5]",
			expected: []string{"a1", "a2", "a5"},
		},
		{
			name:     "mixed expressions and hosts",
			list:     "gpu[01-02],login1",
			expected: []string{"gpu01", "gpu02", "login1"},
		},
		{
			name:     "suffix after brackets",
			list:     "rack[1-2]-n0",
			expected: []string{"rack1-n0", "rack2-n0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandHostlist(tt.list)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestExpandHostlist_Malformed(t *testing.T) {
	tests := []struct {
		name string
		list string
	}{
		{name: "unclosed bracket", list: "node[1-3"},
		{name: "non numeric range", list: "node[a-b]"},
		{name: "inverted range", list: "node[5-2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExpandHostlist(tt.list); err == nil {
				t.Errorf("expected error for %q", tt.list)
			}
		})
	}
}
