package sz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The bit layout is fixed by the native interface. A transposed bit does
// not fail loudly; it silently changes what the engine returns.
func TestFlagBitLayout(t *testing.T) {
	cases := []struct {
		name string
		flag Flags
		bit  uint
	}{
		{"ExportIncludeMultiRecordEntities", ExportIncludeMultiRecordEntities, 0},
		{"ExportIncludePossiblySame", ExportIncludePossiblySame, 1},
		{"ExportIncludePossiblyRelated", ExportIncludePossiblyRelated, 2},
		{"ExportIncludeNameOnly", ExportIncludeNameOnly, 3},
		{"ExportIncludeDisclosed", ExportIncludeDisclosed, 4},
		{"ExportIncludeSingleRecordEntities", ExportIncludeSingleRecordEntities, 5},
		{"EntityIncludePossiblySameRelations", EntityIncludePossiblySameRelations, 6},
		{"EntityIncludePossiblyRelatedRelations", EntityIncludePossiblyRelatedRelations, 7},
		{"EntityIncludeNameOnlyRelations", EntityIncludeNameOnlyRelations, 8},
		{"EntityIncludeDisclosedRelations", EntityIncludeDisclosedRelations, 9},
		{"EntityIncludeAllFeatures", EntityIncludeAllFeatures, 10},
		{"EntityIncludeRepresentativeFeatures", EntityIncludeRepresentativeFeatures, 11},
		{"EntityIncludeEntityName", EntityIncludeEntityName, 12},
		{"EntityIncludeRecordSummary", EntityIncludeRecordSummary, 13},
		{"EntityIncludeRecordData", EntityIncludeRecordData, 14},
		{"EntityIncludeRecordMatchingInfo", EntityIncludeRecordMatchingInfo, 15},
		{"EntityIncludeRecordJSONData", EntityIncludeRecordJSONData, 16},
		{"EntityIncludeRecordFeatures", EntityIncludeRecordFeatures, 18},
		{"EntityIncludeRelatedEntityName", EntityIncludeRelatedEntityName, 19},
		{"EntityIncludeRelatedMatchingInfo", EntityIncludeRelatedMatchingInfo, 20},
		{"EntityIncludeRelatedRecordSummary", EntityIncludeRelatedRecordSummary, 21},
		{"EntityIncludeRelatedRecordData", EntityIncludeRelatedRecordData, 22},
		{"EntityIncludeInternalFeatures", EntityIncludeInternalFeatures, 23},
		{"EntityIncludeFeatureStats", EntityIncludeFeatureStats, 24},
		{"FindPathStrictAvoid", FindPathStrictAvoid, 25},
		{"IncludeFeatureScores", IncludeFeatureScores, 26},
		{"SearchIncludeStats", SearchIncludeStats, 27},
		{"EntityIncludeRecordTypes", EntityIncludeRecordTypes, 28},
		{"EntityIncludeRelatedRecordTypes", EntityIncludeRelatedRecordTypes, 29},
		{"FindPathIncludeMatchingInfo", FindPathIncludeMatchingInfo, 30},
		{"EntityIncludeRecordUnmappedData", EntityIncludeRecordUnmappedData, 31},
		{"SearchIncludeAllCandidates", SearchIncludeAllCandidates, 32},
		{"FindNetworkIncludeMatchingInfo", FindNetworkIncludeMatchingInfo, 33},
		{"IncludeMatchKeyDetails", IncludeMatchKeyDetails, 34},
		{"EntityIncludeRecordFeatureDetails", EntityIncludeRecordFeatureDetails, 35},
		{"EntityIncludeRecordFeatureStats", EntityIncludeRecordFeatureStats, 36},
		{"SearchIncludeRequest", SearchIncludeRequest, 37},
		{"SearchIncludeRequestDetails", SearchIncludeRequestDetails, 38},
		{"EntityIncludeRecordDates", EntityIncludeRecordDates, 39},
		{"WithInfo", WithInfo, 62},
	}
	for _, tc := range cases {
		assert.Equal(t, Flags(1)<<tc.bit, tc.flag, tc.name)
	}
}

func TestSearchClassAliases(t *testing.T) {
	assert.Equal(t, ExportIncludeMultiRecordEntities, SearchIncludeResolved)
	assert.Equal(t, ExportIncludePossiblySame, SearchIncludePossiblySame)
	assert.Equal(t, ExportIncludePossiblyRelated, SearchIncludePossiblyRelated)
	assert.Equal(t, ExportIncludeNameOnly, SearchIncludeNameOnly)
}

func TestCompositeMasks(t *testing.T) {
	assert.Equal(t, Flags(0x21), ExportIncludeAllEntities)
	assert.Equal(t, Flags(0x1e), ExportIncludeAllHavingRelationships)
	assert.Equal(t, Flags(0x3c0), EntityIncludeAllRelations)
	assert.Equal(t, Flags(0xf), SearchIncludeAllEntities)
	assert.Equal(t, Flags(0x9880850000), RecordAllFlags)
	assert.Equal(t, Flags(0x1880850000), RecordPreviewAllFlags)
	assert.Equal(t, Flags(0xf800), EntityCoreFlags)
}

func TestOperationDefaults(t *testing.T) {
	assert.Equal(t, Flags(0), NoFlags)

	assert.Equal(t, Flags(0x10000), RecordDefaultFlags)
	assert.Equal(t, Flags(0x800000000), RecordPreviewDefaultFlags)
	assert.Equal(t, Flags(0x38fbc0), EntityDefaultFlags)
	assert.Equal(t, Flags(0x1083c0), EntityBriefDefaultFlags)
	assert.Equal(t, Flags(0x38fbe1), ExportDefaultFlags)
	assert.Equal(t, Flags(0x40003000), FindPathDefaultFlags)
	assert.Equal(t, Flags(0x200003000), FindNetworkDefaultFlags)

	assert.Equal(t, Flags(0xc00380f), SearchByAttributesAll)
	assert.Equal(t, Flags(0xc003803), SearchByAttributesStrong)
	assert.Equal(t, Flags(0x800000f), SearchByAttributesMinimalAll)
	assert.Equal(t, Flags(0x8000003), SearchByAttributesMinimalStrong)
	assert.Equal(t, SearchByAttributesAll, SearchByAttributesDefaultFlags)

	assert.Equal(t, Flags(0x4000000), WhyEntitiesDefaultFlags)
	assert.Equal(t, Flags(0x4000000), WhyRecordsDefaultFlags)
	assert.Equal(t, Flags(0x4000000), WhyRecordInEntityDefaultFlags)
	assert.Equal(t, Flags(0x400c000000), WhySearchDefaultFlags)
	assert.Equal(t, Flags(0x4000000), HowEntityDefaultFlags)
	assert.Equal(t, Flags(0x404000000), HowAllFlags)

	assert.Equal(t, EntityCoreFlags, VirtualEntityDefaultFlags)
	assert.Equal(t, Flags(0x989185fc00), VirtualEntityAllFlags)

	for _, def := range []Flags{
		AddRecordDefaultFlags,
		DeleteRecordDefaultFlags,
		ReevaluateRecordDefaultFlags,
		ReevaluateEntityDefaultFlags,
		RedoDefaultFlags,
		FindInterestingEntitiesDefaultFlags,
		FindInterestingEntitiesAllFlags,
	} {
		assert.Equal(t, NoFlags, def)
	}
	for _, withInfo := range []Flags{
		AddRecordAllFlags,
		DeleteRecordAllFlags,
		ReevaluateRecordAllFlags,
		ReevaluateEntityAllFlags,
		RedoAllFlags,
	} {
		assert.Equal(t, WithInfo, withInfo)
	}
}
