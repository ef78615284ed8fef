package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "local", "-x", "ignored", "-d", "gaadi.db"}
	got := FilterArgs(args, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", "local", "-d", "gaadi.db"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=zzz"}
	got := FilterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "remote"}
	got := FilterArgs(args, []string{"-v"})
	assert.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Empty(t, got)
}
