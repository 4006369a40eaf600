package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-d", "portal.db", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "portal.db"},
		},
		{
			name:    "combined with equals",
			args:    []string{"--database=portal.db", "--other=1"},
			allowed: []string{"--database"},
			want:    []string{"--database=portal.db"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-s", "-d", "portal.db"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-d", "portal.db"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"portal", "-c", "cfg.json"}
		assert.Equal(t, "cfg.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"portal", "-config", "other.json"}
		assert.Equal(t, "other.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"portal"}
		assert.Equal(t, "", JsonConfigFlags())
	})
}
