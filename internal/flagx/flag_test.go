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
			name:    "separate value",
			args:    []string{"-d", "vault.db", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "vault.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-d=vault.db"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-d", "vault.db"},
			allowed: []string{"-v", "-d"},
			want:    []string{"-v", "-d", "vault.db"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"lockbox", "-c", "conf.json", "-d", "vault.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"lockbox", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"lockbox", "-d", "vault.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
