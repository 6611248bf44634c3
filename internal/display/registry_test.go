package display

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	name  string
	calls int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Focus(context.Context) error {
	f.calls++
	return nil
}

type fakeProvider struct {
	name      string
	available bool
	err       error
	strategy  *fakeStrategy
}

func (p *fakeProvider) GetStrategy() (FocusStrategy, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.strategy, nil
}

func (p *fakeProvider) GetFocusInfo() FocusInfo { return FocusInfo{Name: p.name} }

func (p *fakeProvider) IsAvailable() bool { return p.available }

func newFakeProvider(name string, available bool) *fakeProvider {
	return &fakeProvider{name: name, available: available, strategy: &fakeStrategy{name: name}}
}

func withCleanRegistry(t *testing.T) {
	t.Helper()
	saved := GetAllProviders()
	ClearProviders()
	t.Cleanup(func() {
		ClearProviders()
		for _, p := range saved {
			Register(p)
		}
	})
}

func TestNoopFocus(t *testing.T) {
	var s FocusStrategy = NoopFocus{}

	assert.Equal(t, StrategyNone, s.Name())
	assert.NoError(t, s.Focus(context.Background()))
}

func TestDetectFocus_NoProviders(t *testing.T) {
	withCleanRegistry(t)

	assert.Equal(t, NoopFocus{}, DetectFocus())
}

func TestDetectFocus_FirstAvailableWins(t *testing.T) {
	withCleanRegistry(t)

	Register(newFakeProvider("x11", false))
	Register(&fakeProvider{name: "broken", available: true, err: errors.New("no window")})
	Register(newFakeProvider("native", true))
	Register(newFakeProvider("other", true))

	assert.Equal(t, "native", DetectFocus().Name())
}

func TestResolve(t *testing.T) {
	withCleanRegistry(t)
	Register(newFakeProvider("x11", true))
	Register(newFakeProvider("native", false))

	tests := []struct {
		name     string
		expected string
		wantErr  string
	}{
		{name: "", expected: StrategyNone},
		{name: StrategyNone, expected: StrategyNone},
		{name: StrategyAuto, expected: "x11"},
		{name: "x11", expected: "x11"},
		{name: "native", wantErr: "not available"},
		{name: "wayland", wantErr: "unknown focus strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := Resolve(tt.name)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strategy.Name())
		})
	}
}

func TestGetProvider(t *testing.T) {
	withCleanRegistry(t)
	p := newFakeProvider("x11", true)
	Register(p)

	assert.Equal(t, p, GetProvider("x11"))
	assert.Nil(t, GetProvider("missing"))
	assert.Len(t, GetAllProviders(), 1)
}
