package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing"
	"saltsizer/internal/sizing/feeder"
	"saltsizer/internal/sizing/pump"
	"saltsizer/internal/sizing/tank"
)

func TestFeederRows_DisplayRounding(t *testing.T) {
	res, err := feeder.Compute(domain.DefaultFeederInput())
	require.NoError(t, err)

	rows := feederRows(res)
	require.Len(t, rows, 3)
	assert.Equal(t, "16.9 rpm", rows[0].value)
	assert.Equal(t, "5.23 m3/h", rows[1].value)
	assert.Equal(t, "0.00515 m3", rows[2].value)
}

func TestPumpRows_DisplayRounding(t *testing.T) {
	res, err := pump.Compute(domain.DefaultPumpInput())
	require.NoError(t, err)

	rows := pumpRows(res)
	require.Len(t, rows, 4)
	assert.Equal(t, "0.105 m3/s", rows[0].value)
	assert.Equal(t, "5000 Pa", rows[1].value)
	assert.Equal(t, "526 W", rows[2].value)
	assert.Equal(t, "1053 W", rows[3].value)
}

func TestTankRows_DisplayRounding(t *testing.T) {
	res, err := tank.Compute(domain.DefaultTankInput())
	require.NoError(t, err)

	rows := tankRows(res)
	require.Len(t, rows, 7)
	assert.Equal(t, "1.053 m3", rows[0].value)
	assert.Equal(t, "0.73 m", rows[1].value)
	assert.Equal(t, "1.75 m", rows[2].value)
	assert.Equal(t, "2.81 m", rows[3].value)
	assert.Equal(t, "3000 W", rows[4].value)
	assert.Equal(t, "0.0254 m", rows[5].value)
	assert.Equal(t, "0.00635 m", rows[6].value)
}

func TestTankRows_NoWallStackUpRows(t *testing.T) {
	in := domain.DefaultTankInput()
	in.IncludeWallThickness = false
	res, err := tank.Compute(in)
	require.NoError(t, err)

	assert.Len(t, tankRows(res), 5)
}

func TestRender_JSONKeepsFullPrecision(t *testing.T) {
	res, err := pump.Compute(domain.DefaultPumpInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, jsonFormat, res, pumpRows(res)))

	var back domain.PumpResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, res, back)
}

func TestRender_YAMLDropsAbsentSections(t *testing.T) {
	tankIn := domain.DefaultTankInput()
	rep, err := sizing.ComputeCase(domain.PlantCase{Tank: &tankIn})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, yamlFormat, rep, plantRows(rep)))

	assert.Contains(t, buf.String(), "tank:")
	assert.NotContains(t, buf.String(), "feeder:")
	assert.NotContains(t, buf.String(), "pump:")
}

func TestRender_TableLaysOutSections(t *testing.T) {
	rep, err := sizing.ComputeCase(domain.DefaultPlantCase())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, tableFormat, rep, plantRows(rep)))

	out := buf.String()
	for _, want := range []string{
		"SCREW FEEDER", "ANNULAR PUMP", "STORAGE TANK",
		"16.9 rpm", "1053 W", "2.81 m",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	err := render(io.Discard, "csv", struct{}{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format must be one of")
}
