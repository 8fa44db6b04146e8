package sz

// Flags controls the level of detail in engine responses. Values combine
// with bitwise OR. Every operation documents its matching default
// constant; pass NoFlags to request the minimal response.
type Flags uint64

// Individual detail bits. The bit layout is fixed by the native
// interface.
const (
	// Export scope: which resolution classes an export report includes.
	ExportIncludeMultiRecordEntities  Flags = 1 << 0
	ExportIncludePossiblySame         Flags = 1 << 1
	ExportIncludePossiblyRelated      Flags = 1 << 2
	ExportIncludeNameOnly             Flags = 1 << 3
	ExportIncludeDisclosed            Flags = 1 << 4
	ExportIncludeSingleRecordEntities Flags = 1 << 5

	// Relationship classes to include with an entity.
	EntityIncludePossiblySameRelations    Flags = 1 << 6
	EntityIncludePossiblyRelatedRelations Flags = 1 << 7
	EntityIncludeNameOnlyRelations        Flags = 1 << 8
	EntityIncludeDisclosedRelations       Flags = 1 << 9

	// Feature detail.
	EntityIncludeAllFeatures            Flags = 1 << 10
	EntityIncludeRepresentativeFeatures Flags = 1 << 11

	// Entity and record detail. Bit 17 is reserved.
	EntityIncludeEntityName         Flags = 1 << 12
	EntityIncludeRecordSummary      Flags = 1 << 13
	EntityIncludeRecordData         Flags = 1 << 14
	EntityIncludeRecordMatchingInfo Flags = 1 << 15
	EntityIncludeRecordJSONData     Flags = 1 << 16
	EntityIncludeRecordFeatures     Flags = 1 << 18

	// Related-entity detail.
	EntityIncludeRelatedEntityName    Flags = 1 << 19
	EntityIncludeRelatedMatchingInfo  Flags = 1 << 20
	EntityIncludeRelatedRecordSummary Flags = 1 << 21
	EntityIncludeRelatedRecordData    Flags = 1 << 22

	// Internal feature detail.
	EntityIncludeInternalFeatures Flags = 1 << 23
	EntityIncludeFeatureStats     Flags = 1 << 24

	// Find-path behavior.
	FindPathStrictAvoid         Flags = 1 << 25
	FindPathIncludeMatchingInfo Flags = 1 << 30

	// Match scoring and search statistics.
	IncludeFeatureScores Flags = 1 << 26
	SearchIncludeStats   Flags = 1 << 27

	// Record types.
	EntityIncludeRecordTypes        Flags = 1 << 28
	EntityIncludeRelatedRecordTypes Flags = 1 << 29

	// Extended record detail.
	EntityIncludeRecordUnmappedData   Flags = 1 << 31
	EntityIncludeRecordFeatureDetails Flags = 1 << 35
	EntityIncludeRecordFeatureStats   Flags = 1 << 36
	EntityIncludeRecordDates          Flags = 1 << 39

	// Search and network matching detail.
	SearchIncludeAllCandidates     Flags = 1 << 32
	FindNetworkIncludeMatchingInfo Flags = 1 << 33
	IncludeMatchKeyDetails         Flags = 1 << 34
	SearchIncludeRequest           Flags = 1 << 37
	SearchIncludeRequestDetails    Flags = 1 << 38

	// WithInfo requests an affected-entity document from modifying
	// operations.
	WithInfo Flags = 1 << 62
)

// Search results are classified with the same bits as export scope; these
// aliases carry the names used in search responses.
const (
	SearchIncludeResolved        = ExportIncludeMultiRecordEntities
	SearchIncludePossiblySame    = ExportIncludePossiblySame
	SearchIncludePossiblyRelated = ExportIncludePossiblyRelated
	SearchIncludeNameOnly        = ExportIncludeNameOnly
)

// Composite masks.
const (
	ExportIncludeAllEntities = ExportIncludeMultiRecordEntities | ExportIncludeSingleRecordEntities

	ExportIncludeAllHavingRelationships = ExportIncludePossiblySame |
		ExportIncludePossiblyRelated |
		ExportIncludeNameOnly |
		ExportIncludeDisclosed

	EntityIncludeAllRelations = EntityIncludePossiblySameRelations |
		EntityIncludePossiblyRelatedRelations |
		EntityIncludeNameOnlyRelations |
		EntityIncludeDisclosedRelations

	SearchIncludeAllEntities = SearchIncludeResolved |
		SearchIncludePossiblySame |
		SearchIncludePossiblyRelated |
		SearchIncludeNameOnly

	RecordAllFlags = EntityIncludeInternalFeatures |
		EntityIncludeRecordFeatures |
		EntityIncludeRecordFeatureDetails |
		EntityIncludeRecordFeatureStats |
		EntityIncludeRecordDates |
		EntityIncludeRecordJSONData |
		EntityIncludeRecordUnmappedData

	RecordPreviewAllFlags = EntityIncludeInternalFeatures |
		EntityIncludeRecordFeatures |
		EntityIncludeRecordFeatureDetails |
		EntityIncludeRecordFeatureStats |
		EntityIncludeRecordJSONData |
		EntityIncludeRecordUnmappedData

	// EntityCoreFlags is the detail shared by the entity-returning
	// defaults.
	EntityCoreFlags = EntityIncludeRepresentativeFeatures |
		EntityIncludeEntityName |
		EntityIncludeRecordSummary |
		EntityIncludeRecordData |
		EntityIncludeRecordMatchingInfo
)

// NoFlags requests the minimal response for any operation.
const NoFlags Flags = 0

// Per-operation defaults.
const (
	RecordDefaultFlags        = EntityIncludeRecordJSONData
	RecordPreviewDefaultFlags = EntityIncludeRecordFeatureDetails

	EntityDefaultFlags = EntityCoreFlags |
		EntityIncludeAllRelations |
		EntityIncludeRelatedEntityName |
		EntityIncludeRelatedRecordSummary |
		EntityIncludeRelatedMatchingInfo

	EntityBriefDefaultFlags = EntityIncludeAllRelations |
		EntityIncludeRecordMatchingInfo |
		EntityIncludeRelatedMatchingInfo

	ExportDefaultFlags = ExportIncludeAllEntities | EntityDefaultFlags

	FindPathDefaultFlags = FindPathIncludeMatchingInfo |
		EntityIncludeEntityName |
		EntityIncludeRecordSummary

	FindNetworkDefaultFlags = FindNetworkIncludeMatchingInfo |
		EntityIncludeEntityName |
		EntityIncludeRecordSummary

	SearchByAttributesAll = SearchIncludeAllEntities |
		SearchIncludeStats |
		EntityIncludeRepresentativeFeatures |
		EntityIncludeEntityName |
		EntityIncludeRecordSummary |
		IncludeFeatureScores

	SearchByAttributesStrong = SearchIncludeResolved |
		SearchIncludePossiblySame |
		SearchIncludeStats |
		EntityIncludeRepresentativeFeatures |
		EntityIncludeEntityName |
		EntityIncludeRecordSummary |
		IncludeFeatureScores

	SearchByAttributesMinimalAll    = SearchIncludeAllEntities | SearchIncludeStats
	SearchByAttributesMinimalStrong = SearchIncludeResolved | SearchIncludePossiblySame | SearchIncludeStats
	SearchByAttributesDefaultFlags  = SearchByAttributesAll

	WhyEntitiesDefaultFlags       = IncludeFeatureScores
	WhyRecordsDefaultFlags        = IncludeFeatureScores
	WhyRecordInEntityDefaultFlags = IncludeFeatureScores

	WhySearchDefaultFlags = IncludeFeatureScores |
		SearchIncludeRequestDetails |
		SearchIncludeStats

	HowEntityDefaultFlags = IncludeFeatureScores
	HowAllFlags           = IncludeMatchKeyDetails | IncludeFeatureScores

	VirtualEntityDefaultFlags = EntityCoreFlags

	VirtualEntityAllFlags = EntityIncludeAllFeatures |
		EntityIncludeRepresentativeFeatures |
		EntityIncludeEntityName |
		EntityIncludeRecordSummary |
		EntityIncludeRecordTypes |
		EntityIncludeRecordData |
		EntityIncludeRecordMatchingInfo |
		EntityIncludeRecordDates |
		EntityIncludeRecordJSONData |
		EntityIncludeRecordUnmappedData |
		EntityIncludeRecordFeatures |
		EntityIncludeRecordFeatureDetails |
		EntityIncludeRecordFeatureStats |
		EntityIncludeInternalFeatures |
		EntityIncludeFeatureStats

	AddRecordDefaultFlags               = NoFlags
	AddRecordAllFlags                   = WithInfo
	DeleteRecordDefaultFlags            = NoFlags
	DeleteRecordAllFlags                = WithInfo
	ReevaluateRecordDefaultFlags        = NoFlags
	ReevaluateRecordAllFlags            = WithInfo
	ReevaluateEntityDefaultFlags        = NoFlags
	ReevaluateEntityAllFlags            = WithInfo
	RedoDefaultFlags                    = NoFlags
	RedoAllFlags                        = WithInfo
	FindInterestingEntitiesDefaultFlags = NoFlags
	FindInterestingEntitiesAllFlags     = NoFlags
)
