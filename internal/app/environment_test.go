package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustGetEnvAsStrings(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "single", value: "auth0", expected: []string{"auth0"}},
		{name: "trims", value: "auth0, gateway ", expected: []string{"auth0", "gateway"}},
		{name: "empty", value: "", expected: []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_LIST", tc.value)
			assert.Equal(t, tc.expected, MustGetEnvAsStrings(context.Background(), "TEST_LIST"))
		})
	}
}

func TestMustGetEnv_PanicsOnBadValues(t *testing.T) {
	ctx := context.Background()
	t.Setenv("TEST_INT", "twelve")
	t.Setenv("TEST_DURATION", "soon")

	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TEST_DEFINITELY_UNSET") })
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "TEST_INT") })
	assert.Panics(t, func() { MustGetEnvAsDuration(ctx, "TEST_DURATION") })
}

func TestMustGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(context.Background(), "TEST_DURATION"))
}
