package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportIncludesEveryTable(t *testing.T) {
	f := newFixture(t)
	f.donation(t, "Asha", 100, time.Now())

	b := f.svc.Exporter.Export(f.ctx)
	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var doc map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, table := range []string{"users", "matrimonial_profiles", "events", "jobs", "blood_donors", "donations", "post_holders", "approved_members"} {
		assert.Contains(t, doc, table)
	}
	assert.Len(t, doc["users"], 1)
	assert.Len(t, doc["donations"], 1)
	assert.Empty(t, doc["jobs"])
}

func TestExportOmitsUnreadableTables(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.st.DB.Exec("DROP TABLE jobs").Error)

	b := f.svc.Exporter.Export(f.ctx)
	assert.Nil(t, b.Jobs)
	assert.NotNil(t, b.Users)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"jobs"`)
}
