package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyName(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     string
	}{
		{
			"QuotedValue",
			"NAME=\"Ubuntu\"\nPRETTY_NAME=\"Ubuntu 24.04.1 LTS\"\nID=ubuntu\n",
			"Ubuntu 24.04.1 LTS",
		},
		{
			"UnquotedValue",
			"PRETTY_NAME=Alpine\n",
			"Alpine",
		},
		{
			"CommentsIgnored",
			"# PRETTY_NAME=\"commented out\"\nPRETTY_NAME=\"Arch Linux\"\n",
			"Arch Linux",
		},
		{
			"FieldAbsent",
			"NAME=\"Something\"\nID=something\n",
			"Unknown Linux",
		},
		{
			"EmptyDocument",
			"",
			"Unknown Linux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prettyName(strings.NewReader(tt.document)))
		})
	}
}

func TestDetectFamily(t *testing.T) {
	assert.Equal(t, FamilyLinux, detect("linux").Family)
	assert.Equal(t, FamilyDarwin, detect("darwin").Family)

	for _, goos := range []string{"windows", "freebsd", "plan9"} {
		assert.Equal(t, FamilyUnsupported, detect(goos).Family, goos)
	}
}
