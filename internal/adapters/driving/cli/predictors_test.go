package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictorsCmd_Table(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := execute(t, "", "predictors")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Regexp(t, `lithology\s+logistic\s+classifier\s+DEPTH,GR`, out)
	assert.Regexp(t, `rhob\s+linear\s+regressor\s+DEPTH,GR`, out)
}

func TestPredictorsCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := execute(t, "", "predictors", "--json")
	require.NoError(t, err)

	var rows []predictorRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)

	byName := map[string]predictorRow{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	assert.Equal(t, []string{"regressor"}, byName["rhob"].Roles)
	assert.Equal(t, []string{"classifier"}, byName["lithology"].Roles)
	assert.Equal(t, []string{"DEPTH", "GR"}, byName["rhob"].Features)
}

func TestPredictorsCmd_NoCatalog(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	predictorCatalog = nil
	_, _, err := execute(t, "", "predictors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "x", orDash("x"))
}
