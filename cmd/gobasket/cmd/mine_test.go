package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gobasket/internal/ingest"
	"github.com/dbsmedya/gobasket/internal/mining"
)

func TestMineCommandStructure(t *testing.T) {
	assert.Equal(t, "mine", mineCmd.Use)
	assert.NotEmpty(t, mineCmd.Short)
	assert.Contains(t, mineCmd.Long, "Example:")
	assert.NotNil(t, mineCmd.RunE)

	flags := mineCmd.Flags()
	for name, shorthand := range map[string]string{"workers": "w", "strategy": "s", "output": "o"} {
		flag := flags.Lookup(name)
		if assert.NotNil(t, flag, "flag %s", name) {
			assert.Equal(t, shorthand, flag.Shorthand)
		}
	}
}

const expectedItemsets = "itemset,support\n" +
	"\"(bread, milk)\",0.6000\n" +
	"\"(eggs, milk)\",0.4000\n"

func TestRunMine(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		workers  int
	}{
		{name: "configured parallel", strategy: "", workers: 0},
		{name: "serial override", strategy: "serial", workers: 0},
		{name: "more workers than records", strategy: "parallel", workers: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newTestWorkspace(t)
			mineStrategy, mineWorkers = tt.strategy, tt.workers
			out := captureOutput(t, mineCmd)

			require.NoError(t, runMine(mineCmd, nil))

			content, err := os.ReadFile(ws.itemsets)
			require.NoError(t, err)
			assert.Equal(t, expectedItemsets, string(content))

			assert.Contains(t, out.String(), "Records: 5")
			assert.Contains(t, out.String(), "Candidate pairs: 5")
			assert.Contains(t, out.String(), "Frequent itemsets (support >= 0.4): 2")
		})
	}
}

func TestRunMine_Overrides(t *testing.T) {
	ws := newTestWorkspace(t)
	setMinSupportFlag(t, "0.6")
	mineOutput = filepath.Join(ws.dir, "custom", "pairs.csv")
	captureOutput(t, mineCmd)

	require.NoError(t, runMine(mineCmd, nil))

	content, err := os.ReadFile(mineOutput)
	require.NoError(t, err)
	assert.Equal(t, "itemset,support\n\"(bread, milk)\",0.6000\n", string(content))

	_, err = os.Stat(ws.itemsets)
	assert.True(t, os.IsNotExist(err), "configured output is replaced by --output")
}

func TestRunMine_ZeroMinSupport(t *testing.T) {
	ws := newTestWorkspace(t)
	setMinSupportFlag(t, "0")
	out := captureOutput(t, mineCmd)

	require.NoError(t, runMine(mineCmd, nil))

	content, err := os.ReadFile(ws.itemsets)
	require.NoError(t, err)
	assert.Equal(t, "itemset,support\n"+
		"\"(bread, milk)\",0.6000\n"+
		"\"(eggs, milk)\",0.4000\n"+
		"\"(bread, eggs)\",0.2000\n"+
		"\"(bread, jam)\",0.2000\n"+
		"\"(jam, milk)\",0.2000\n", string(content))
	assert.Contains(t, out.String(), "Frequent itemsets (support >= 0): 5")
}

func TestRunMine_Errors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		ws := newTestWorkspace(t)
		sourcePath = filepath.Join(ws.dir, "absent.csv")
		captureOutput(t, mineCmd)

		err := runMine(mineCmd, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ingest.ErrMissingDataSource))
	})

	t.Run("schema violation", func(t *testing.T) {
		ws := newTestWorkspace(t)
		require.NoError(t, os.WriteFile(ws.dataSource, []byte("customer,sku\n1,a\n"), 0644))
		captureOutput(t, mineCmd)

		err := runMine(mineCmd, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ingest.ErrSchemaViolation))
	})

	t.Run("no records", func(t *testing.T) {
		ws := newTestWorkspace(t)
		require.NoError(t, os.WriteFile(ws.dataSource, []byte("client_id,product\n"), 0644))
		captureOutput(t, mineCmd)

		err := runMine(mineCmd, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, mining.ErrDivisionUndefined))
	})

	t.Run("invalid workers", func(t *testing.T) {
		newTestWorkspace(t)
		mineWorkers = -3
		captureOutput(t, mineCmd)

		err := runMine(mineCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mining.workers")
	})

	t.Run("missing explicit config", func(t *testing.T) {
		ws := newTestWorkspace(t)
		cfgFile = filepath.Join(ws.dir, "nope.yaml")

		err := runMine(mineCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}
