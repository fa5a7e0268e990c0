package config

import (
	"strings"
	"testing"

	"github.com/amrforest/forest/balance"
	"github.com/stretchr/testify/require"
)

func TestLoadValidConfig(t *testing.T) {
	doc := `
dim: 2
data_size: 16
default_selector: face
brick:
  nx: 4
  ny: 2
  nz: 1
  periodic: [true, false, false]
`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Dim)
	require.Equal(t, 16, cfg.DataSize)

	sel, err := cfg.Selector()
	require.NoError(t, err)
	require.Equal(t, balance.Face, sel)

	conn, err := cfg.Connectivity()
	require.NoError(t, err)
	require.Equal(t, int32(8), conn.NumTrees())
}

func TestLoadDefaultsSelectorToSpaceMax(t *testing.T) {
	doc := "dim: 2\ndata_size: 4\n"
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	sel, err := cfg.Selector()
	require.NoError(t, err)
	require.Equal(t, balance.MaxSelector(cfg.Space()), sel)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	doc := "dim: 2\ndata_size: 4\nbogus_field: 1\n"
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadRejectsInvalidDim(t *testing.T) {
	doc := "dim: 5\ndata_size: 4\n"
	_, err := Load(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrInvalidDim)
}

func TestLoadCornerSelectorResolvesToSpaceMax(t *testing.T) {
	doc2D := "dim: 2\ndata_size: 4\ndefault_selector: corner\n"
	cfg2D, err := Load(strings.NewReader(doc2D))
	require.NoError(t, err)
	sel2D, err := cfg2D.Selector()
	require.NoError(t, err)
	require.Equal(t, balance.MaxSelector(cfg2D.Space()), sel2D)

	doc3D := "dim: 3\ndata_size: 4\ndefault_selector: corner\n"
	cfg3D, err := Load(strings.NewReader(doc3D))
	require.NoError(t, err)
	sel3D, err := cfg3D.Selector()
	require.NoError(t, err)
	require.Equal(t, balance.Corner, sel3D)
}

func TestConnectivityRequiresBrickSection(t *testing.T) {
	doc := "dim: 2\ndata_size: 4\n"
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	_, err = cfg.Connectivity()
	require.ErrorIs(t, err, ErrMissingBrick)
}
