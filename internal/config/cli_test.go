package config_test

import (
	"testing"

	"github.com/Alia5/i3ctransfer/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	type testCase struct {
		name     string
		args     []string
		env      string
		expected string
	}

	cases := []testCase{
		{name: "none", args: []string{"-d", "/dev/i3c-0"}, expected: ""},
		{name: "separate value", args: []string{"--config", "bus.yaml", "-r", "1"}, expected: "bus.yaml"},
		{name: "equals form", args: []string{"-r", "1", "--config=bus.toml"}, expected: "bus.toml"},
		{name: "dangling flag", args: []string{"--config"}, expected: ""},
		{name: "env fallback", args: []string{"-r", "1"}, env: "/etc/bus.json", expected: "/etc/bus.json"},
		{name: "flag wins over env", args: []string{"--config", "a.json"}, env: "b.json", expected: "a.json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("I3CTRANSFER_CONFIG", tc.env)
			assert.Equal(t, tc.expected, config.FindUserConfig(tc.args))
		})
	}
}
