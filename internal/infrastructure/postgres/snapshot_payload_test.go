package postgres

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

func sampleSummary() entities.MonthlySummary {
	return entities.MonthlySummary{
		ProjectSummary: []entities.ProjectTypeGroup{
			{Type: "Internal", Projects: []entities.ProjectHours{{Name: "Alpha", TotalHours: 5, CoreHours: 2, NonCoreHours: 3}}},
		},
		IndividualSummary: []entities.IndividualSummary{
			{User: entities.SummaryUser{ID: "u1", Username: "alice", Email: "alice@example.com",
				Classification: entities.ClassificationCore, DisplayName: "Alice", TeamName: "Platform"}, TotalHours: 2},
		},
	}
}

func TestSnapshotPayload_StoredKeys(t *testing.T) {
	data, err := json.Marshal(toSnapshotPayload(sampleSummary()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"projectSummary": [{"type": "Internal", "projects": [{"name": "Alpha", "totalHours": 5, "coreHours": 2, "nonCoreHours": 3}]}],
		"individualSummary": [{"userId": "u1", "username": "alice", "email": "alice@example.com", "classification": "Core",
			"displayName": "Alice", "teamName": "Platform", "totalHours": 2}]
	}`, string(data))
}

func TestSnapshotPayload_ReadsStoredDocument(t *testing.T) {
	stored := `{"projectSummary":[{"type":"Internal","projects":[{"name":"Alpha","totalHours":5,"coreHours":2,"nonCoreHours":3}]}],
		"individualSummary":[{"userId":"u1","username":"alice","email":"alice@example.com","classification":"Core",
		"displayName":"Alice","teamName":"Platform","totalHours":2}]}`

	var p snapshotPayload
	require.NoError(t, json.Unmarshal([]byte(stored), &p))

	assert.Equal(t, sampleSummary(), p.summary())
}

func TestSnapshotPayload_EmptySummary(t *testing.T) {
	data, err := json.Marshal(toSnapshotPayload(entities.MonthlySummary{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"projectSummary":[],"individualSummary":[]}`, string(data))
}
