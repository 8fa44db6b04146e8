package sz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/szfake"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

func newTestEngine(t *testing.T) (*Engine, *szfake.Library) {
	t.Helper()
	env, fake := newTestEnv(t)
	eng, err := env.Engine()
	require.NoError(t, err)
	return eng, fake
}

func entityIDFromInfo(t *testing.T, info string) EntityID {
	t.Helper()
	var doc struct {
		AffectedEntities []struct {
			EntityID int64 `json:"ENTITY_ID"`
		} `json:"AFFECTED_ENTITIES"`
	}
	require.NoError(t, json.Unmarshal([]byte(info), &doc))
	require.NotEmpty(t, doc.AffectedEntities)
	return EntityID(doc.AffectedEntities[0].EntityID)
}

func TestAddRecordPlainAndWithInfo(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	resp, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, AddRecordDefaultFlags)
	require.NoError(t, err)
	assert.Empty(t, resp)

	resp, err = eng.AddRecord(ctx, "TEST", "2", `{"NAME_FULL":"Bob Jones"}`, WithInfo)
	require.NoError(t, err)
	var info struct {
		DataSource       string `json:"DATA_SOURCE"`
		RecordID         string `json:"RECORD_ID"`
		AffectedEntities []struct {
			EntityID int64 `json:"ENTITY_ID"`
		} `json:"AFFECTED_ENTITIES"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp), &info))
	assert.Equal(t, "TEST", info.DataSource)
	assert.Equal(t, "2", info.RecordID)
	require.Len(t, info.AffectedEntities, 1)
	assert.NotZero(t, info.AffectedEntities[0].EntityID)
}

func TestAddRecordUnknownDataSource(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.AddRecord(context.Background(), "NOPE", "1", `{}`, NoFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsBadInput(err))
	assert.True(t, szerror.IsCategory(err, szerror.UnknownDataSource))

	var szErr *szerror.Error
	require.ErrorAs(t, err, &szErr)
	assert.Equal(t, int64(27), szErr.Code)
	assert.Equal(t, szerror.ComponentEngine, szErr.Component)
}

func TestDeleteRecordFeedsRedoQueue(t *testing.T) {
	eng, fake := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, NoFlags)
	require.NoError(t, err)

	resp, err := eng.DeleteRecord(ctx, "TEST", "1", WithInfo)
	require.NoError(t, err)
	assert.Contains(t, resp, "AFFECTED_ENTITIES")

	n, err := eng.CountRedoRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, fake.RedoCount())

	// Deleting an absent record succeeds and affects nothing.
	resp, err = eng.DeleteRecord(ctx, "TEST", "1", NoFlags)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestRedoDrain(t *testing.T) {
	eng, fake := newTestEngine(t)
	ctx := context.Background()

	fake.EnqueueRedo(`{"DSRC_ACTION":"X","DATA_SOURCE":"TEST","RECORD_ID":"9"}`)

	record, err := eng.GetRedoRecord(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, record)

	resp, err := eng.ProcessRedoRecord(ctx, record, WithInfo)
	require.NoError(t, err)
	assert.Contains(t, resp, "AFFECTED_ENTITIES")

	resp, err = eng.ProcessRedoRecord(ctx, record, NoFlags)
	require.NoError(t, err)
	assert.Empty(t, resp)

	// An empty queue yields an empty string, not an error.
	record, err = eng.GetRedoRecord(ctx)
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestReevaluate(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	info, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, WithInfo)
	require.NoError(t, err)
	id := entityIDFromInfo(t, info)

	resp, err := eng.ReevaluateRecord(ctx, "TEST", "1", NoFlags)
	require.NoError(t, err)
	assert.Empty(t, resp)

	resp, err = eng.ReevaluateRecord(ctx, "TEST", "1", WithInfo)
	require.NoError(t, err)
	assert.Contains(t, resp, "AFFECTED_ENTITIES")

	resp, err = eng.ReevaluateEntity(ctx, id, NoFlags)
	require.NoError(t, err)
	assert.Empty(t, resp)

	resp, err = eng.ReevaluateEntity(ctx, id, WithInfo)
	require.NoError(t, err)
	assert.Contains(t, resp, "AFFECTED_ENTITIES")

	_, err = eng.ReevaluateEntity(ctx, 424242, NoFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsNotFound(err))
}

func TestGetEntityAndRecord(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	info, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, WithInfo)
	require.NoError(t, err)
	entityID := entityIDFromInfo(t, info)

	resp, err := eng.GetEntityByEntityID(ctx, entityID, EntityDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "RESOLVED_ENTITY")

	resp, err = eng.GetEntityByRecordID(ctx, "TEST", "1", EntityDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, `"ENTITY_ID"`)

	resp, err = eng.GetRecord(ctx, "TEST", "1", RecordDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, `"JSON_DATA"`)

	_, err = eng.GetEntityByEntityID(ctx, 424242, EntityDefaultFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsNotFound(err))

	_, err = eng.GetRecord(ctx, "TEST", "missing", RecordDefaultFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsNotFound(err))
}

func TestSearchByAttributes(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, NoFlags)
	require.NoError(t, err)

	resp, err := eng.SearchByAttributes(ctx, `{"NAME_FULL":"Ann Smith"}`, "", SearchByAttributesDefaultFlags)
	require.NoError(t, err)

	var result struct {
		ResolvedEntities []json.RawMessage `json:"RESOLVED_ENTITIES"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp), &result))
	assert.Len(t, result.ResolvedEntities, 1)

	resp, err = eng.SearchByAttributes(ctx, `{"NAME_FULL":"Nobody Here"}`, "", SearchByAttributesDefaultFlags)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(resp), &result))
	assert.Empty(t, result.ResolvedEntities)

	_, err = eng.SearchByAttributes(ctx, `{not json`, "", SearchByAttributesDefaultFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsBadInput(err))
}

func TestGetVirtualEntityRequiresRecordKeys(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.GetVirtualEntityByRecordID(ctx, nil, VirtualEntityDefaultFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsCategory(err, szerror.Configuration))

	_, err = eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, NoFlags)
	require.NoError(t, err)
	_, err = eng.AddRecord(ctx, "TEST", "2", `{"NAME_FULL":"A Smith"}`, NoFlags)
	require.NoError(t, err)

	resp, err := eng.GetVirtualEntityByRecordID(ctx, []RecordKey{
		{DataSource: "TEST", RecordID: "1"},
		{DataSource: "TEST", RecordID: "2"},
	}, VirtualEntityDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "RESOLVED_ENTITY")
}

func TestRelationshipQueries(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	info1, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, WithInfo)
	require.NoError(t, err)
	info2, err := eng.AddRecord(ctx, "TEST", "2", `{"NAME_FULL":"Bob Jones"}`, WithInfo)
	require.NoError(t, err)
	id1, id2 := entityIDFromInfo(t, info1), entityIDFromInfo(t, info2)

	resp, err := eng.WhyEntities(ctx, id1, id2, WhyEntitiesDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "WHY_RESULTS")

	resp, err = eng.WhyRecords(ctx, "TEST", "1", "TEST", "2", WhyRecordsDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "WHY_RESULTS")

	resp, err = eng.WhyRecordInEntity(ctx, "TEST", "1", WhyRecordInEntityDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "WHY_RESULTS")

	resp, err = eng.WhySearch(ctx, `{"NAME_FULL":"Ann"}`, id1, "", WhySearchDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "WHY_RESULTS")

	resp, err = eng.HowEntityByEntityID(ctx, id1, HowEntityDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "HOW_RESULTS")

	resp, err = eng.FindPathByEntityID(ctx, id1, id2, 3, FindPathDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "ENTITY_PATHS")

	resp, err = eng.FindNetworkByEntityID(ctx, []EntityID{id1, id2}, 2, 1, 10, FindNetworkDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "ENTITIES")

	resp, err = eng.FindInterestingEntitiesByEntityID(ctx, id1, FindInterestingEntitiesDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "INTERESTING_ENTITIES")

	resp, err = eng.FindInterestingEntitiesByRecordID(ctx, "TEST", "1", FindInterestingEntitiesDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, resp, "INTERESTING_ENTITIES")

	_, err = eng.FindPathByEntityID(ctx, id1, 424242, 3, FindPathDefaultFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsNotFound(err))
}

func TestPrimeStatsAndPreview(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.PrimeEngine(ctx))

	stats, err := eng.Stats(ctx)
	require.NoError(t, err)
	assert.Contains(t, stats, "workload")

	preview, err := eng.GetRecordPreview(ctx, `{"NAME_FULL":"Ann Smith"}`, RecordPreviewDefaultFlags)
	require.NoError(t, err)
	assert.Contains(t, preview, "FEATURES")

	_, err = eng.GetRecordPreview(ctx, `{not json`, RecordPreviewDefaultFlags)
	require.Error(t, err)
	assert.True(t, szerror.IsBadInput(err))
}

func TestExportJSONDrain(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, NoFlags)
	require.NoError(t, err)
	_, err = eng.AddRecord(ctx, "TEST", "2", `{"NAME_FULL":"Bob Jones"}`, NoFlags)
	require.NoError(t, err)

	report, err := eng.ExportJSONEntityReport(ctx, ExportDefaultFlags)
	require.NoError(t, err)
	defer report.Close()

	var lines []string
	for {
		line, err := report.FetchNext(ctx)
		require.NoError(t, err)
		if line == "" {
			break
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "line %q", line)
	}

	require.NoError(t, report.Close())

	_, err = report.FetchNext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExportClosed)
	assert.True(t, szerror.IsBadInput(err))
}

func TestExportCSVHeaderFirst(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.AddRecord(ctx, "TEST", "1", `{"NAME_FULL":"Ann Smith"}`, NoFlags)
	require.NoError(t, err)

	report, err := eng.ExportCSVEntityReport(ctx, "*", ExportDefaultFlags)
	require.NoError(t, err)
	defer report.Close()

	header, err := report.FetchNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED_ENTITY_ID,DATA_SOURCE,RECORD_ID\n", header)
}

// TestExportReportAfterEnvironmentDestroy exercises a report handle that
// outlives its environment. Component handles hold no reference, so the
// destroy proceeds; the report then fails fetches and closes cleanly
// without touching the torn-down library.
func TestExportReportAfterEnvironmentDestroy(t *testing.T) {
	env, _ := newTestEnv(t)
	eng, err := env.Engine()
	require.NoError(t, err)
	ctx := context.Background()

	report, err := eng.ExportJSONEntityReport(ctx, ExportDefaultFlags)
	require.NoError(t, err)

	require.NoError(t, env.Destroy())

	_, err = report.FetchNext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.True(t, szerror.IsCategory(err, szerror.EnvironmentDestroyed))

	require.NoError(t, report.Close())
}

func TestEngineFailsAfterDestroy(t *testing.T) {
	env, _ := newTestEnv(t)
	eng, err := env.Engine()
	require.NoError(t, err)

	require.NoError(t, env.Destroy())

	_, err = eng.Stats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.True(t, szerror.IsCategory(err, szerror.EnvironmentDestroyed))
}
