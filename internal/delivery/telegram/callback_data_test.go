package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackBuildersRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantAction string
		wantParams []string
	}{
		{name: "generate menu", data: buildGenerateMenuCallback(), wantAction: actionGenerate, wantParams: []string{generateMenu}},
		{name: "category", data: buildGenerateCategoryCallback(9), wantAction: actionGenerate, wantParams: []string{generateCategory, "9"}},
		{name: "amount", data: buildGenerateAmountCallback(0, 10), wantAction: actionGenerate, wantParams: []string{generateAmount, "0", "10"}},
		{name: "reveal card", data: buildCardCallback("3-lx1k2-a", true), wantAction: actionCard, wantParams: []string{cardShow, "3-lx1k2-a"}},
		{name: "hide card", data: buildCardCallback("3-lx1k2-a", false), wantAction: actionCard, wantParams: []string{cardHide, "3-lx1k2-a"}},
		{name: "clear", data: buildClearCallback(), wantAction: actionClear, wantParams: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := decodeCallback(tt.data)

			assert.Equal(t, tt.wantAction, cd.Action)
			assert.Equal(t, tt.wantParams, cd.Params)
			assert.Equal(t, tt.data, cd.Raw)
			assert.Equal(t, tt.data, cd.encode())
			assert.LessOrEqual(t, len(tt.data), 64, "telegram limits callback data to 64 bytes")
		})
	}
}

func TestCallbackParams(t *testing.T) {
	cd := decodeCallback("gen:amt:9:x")

	assert.Equal(t, "amt", cd.param(0))
	assert.Equal(t, "", cd.param(5))
	assert.Equal(t, "", cd.param(-1))

	n, ok := cd.intParam(1)
	assert.True(t, ok)
	assert.Equal(t, 9, n)

	_, ok = cd.intParam(2)
	assert.False(t, ok)

	_, ok = cd.intParam(3)
	assert.False(t, ok)
}
