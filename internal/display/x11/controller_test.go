package x11

import (
	"testing"

	xproto "github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalWindow(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected xproto.Window
		wantErr  bool
	}{
		{name: "decimal", value: "62914566", expected: 62914566},
		{name: "hex", value: "0x3c00006", expected: 0x3c00006},
		{name: "unset", value: "", wantErr: true},
		{name: "garbage", value: "term", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WINDOWID", tt.value)

			win, err := terminalWindow()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, win)
		})
	}
}

func TestProvider_IsAvailable(t *testing.T) {
	p := NewProvider()

	t.Setenv("DISPLAY", ":0")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("WINDOWID", "1234")
	assert.True(t, p.IsAvailable())

	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	assert.False(t, p.IsAvailable())

	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("WINDOWID", "")
	assert.False(t, p.IsAvailable())

	t.Setenv("DISPLAY", "")
	t.Setenv("WINDOWID", "1234")
	assert.False(t, p.IsAvailable())
}

func TestProvider_GetStrategy(t *testing.T) {
	t.Setenv("DISPLAY", ":1")
	t.Setenv("WINDOWID", "42")

	strategy, err := NewProvider().GetStrategy()
	require.NoError(t, err)

	focuser, ok := strategy.(*Focuser)
	require.True(t, ok)
	assert.Equal(t, Name, focuser.Name())
	assert.Equal(t, ":1", focuser.display)
	assert.Equal(t, xproto.Window(42), focuser.window)
	assert.Equal(t, Name, NewProvider().GetFocusInfo().Name)
}
