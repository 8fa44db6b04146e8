package szfake

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

type entityRecord struct {
	DataSource string `json:"DATA_SOURCE"`
	RecordID   string `json:"RECORD_ID"`
}

type resolvedEntity struct {
	EntityID   int64          `json:"ENTITY_ID"`
	EntityName string         `json:"ENTITY_NAME,omitempty"`
	Records    []entityRecord `json:"RECORDS"`
}

type entityResponse struct {
	ResolvedEntity resolvedEntity `json:"RESOLVED_ENTITY"`
}

type affectedEntity struct {
	EntityID int64 `json:"ENTITY_ID"`
}

type withInfoResponse struct {
	DataSource       string           `json:"DATA_SOURCE,omitempty"`
	RecordID         string           `json:"RECORD_ID,omitempty"`
	AffectedEntities []affectedEntity `json:"AFFECTED_ENTITIES"`
}

func (l *Library) EngineInit(moduleName, settings string, verbose bool) int64 {
	l.mu.Lock()
	delay := l.initDelay
	l.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if code, failed := l.injectedLocked(szerror.ComponentEngine); failed {
		return code
	}
	if settings == "" || !json.Valid([]byte(settings)) {
		return l.failLocked(szerror.ComponentEngine, 14, "Invalid datastore configuration")
	}
	l.inits[szerror.ComponentEngine]++
	l.engineInited = true
	l.moduleName = moduleName
	l.settings = settings
	l.verbose = verbose
	l.applyConfigLocked(l.defaultConfigID)
	return 0
}

func (l *Library) EngineInitWithConfigID(moduleName, settings string, configID int64, verbose bool) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, failed := l.injectedLocked(szerror.ComponentEngine); failed {
		return code
	}
	if settings == "" || !json.Valid([]byte(settings)) {
		return l.failLocked(szerror.ComponentEngine, 14, "Invalid datastore configuration")
	}
	if _, ok := l.configs[configID]; !ok {
		return l.failLocked(szerror.ComponentEngine, 7344, fmt.Sprintf("Configuration not found in the registry: %d", configID))
	}
	l.inits[szerror.ComponentEngine]++
	l.engineInited = true
	l.moduleName = moduleName
	l.settings = settings
	l.verbose = verbose
	l.applyConfigLocked(configID)
	return 0
}

func (l *Library) EngineReinit(configID int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	if _, ok := l.configs[configID]; !ok {
		return l.failLocked(szerror.ComponentEngine, 7344, fmt.Sprintf("Configuration not found in the registry: %d", configID))
	}
	l.applyConfigLocked(configID)
	return 0
}

func (l *Library) EngineDestroy() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroys[szerror.ComponentEngine]++
	l.destroyOrder = append(l.destroyOrder, szerror.ComponentEngine)
	l.engineInited = false
	return 0
}

func (l *Library) EngineGetActiveConfigID() ffi.LongResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.LongResult{ReturnCode: code}
	}
	return ffi.LongResult{Response: l.activeConfigID}
}

func (l *Library) EnginePrimeEngine() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	return 0
}

func (l *Library) EngineStats() ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	stats := struct {
		Workload struct {
			APIVersion    string `json:"apiVersion"`
			LoadedRecords int    `json:"loadedRecords"`
		} `json:"workload"`
	}{}
	stats.Workload.APIVersion = "4.0.0"
	stats.Workload.LoadedRecords = len(l.records)
	return ffi.PointerResult{Response: l.allocLocked(encode(stats))}
}

func (l *Library) EngineAddRecord(dataSourceCode, recordID, recordDefinition string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	_, code := l.addRecordLocked(dataSourceCode, recordID, recordDefinition)
	return code
}

func (l *Library) EngineAddRecordWithInfo(dataSourceCode, recordID, recordDefinition string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	entityID, code := l.addRecordLocked(dataSourceCode, recordID, recordDefinition)
	if code != 0 {
		return ffi.PointerResult{ReturnCode: code}
	}
	info := withInfoResponse{
		DataSource:       dataSourceCode,
		RecordID:         recordID,
		AffectedEntities: []affectedEntity{{EntityID: entityID}},
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(info))}
}

func (l *Library) EngineDeleteRecord(dataSourceCode, recordID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	_, code := l.deleteRecordLocked(dataSourceCode, recordID)
	return code
}

func (l *Library) EngineDeleteRecordWithInfo(dataSourceCode, recordID string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	affected, code := l.deleteRecordLocked(dataSourceCode, recordID)
	if code != 0 {
		return ffi.PointerResult{ReturnCode: code}
	}
	info := withInfoResponse{
		DataSource:       dataSourceCode,
		RecordID:         recordID,
		AffectedEntities: affected,
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(info))}
}

func (l *Library) EngineReevaluateRecord(dataSourceCode, recordID string, flags uint64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	if _, ok := l.records[recordKey{dataSourceCode, recordID}]; !ok {
		return l.failLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode, recordID))
	}
	return 0
}

func (l *Library) EngineReevaluateRecordWithInfo(dataSourceCode, recordID string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	rec, ok := l.records[recordKey{dataSourceCode, recordID}]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode, recordID))
	}
	info := withInfoResponse{
		DataSource:       dataSourceCode,
		RecordID:         recordID,
		AffectedEntities: []affectedEntity{{EntityID: rec.entityID}},
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(info))}
}

func (l *Library) EngineReevaluateEntity(entityID int64, flags uint64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	if _, ok := l.entities[entityID]; !ok {
		return l.failLocked(szerror.ComponentEngine, 37, unknownEntityMessage(entityID))
	}
	return 0
}

func (l *Library) EngineReevaluateEntityWithInfo(entityID int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if _, ok := l.entities[entityID]; !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(entityID))
	}
	info := withInfoResponse{AffectedEntities: []affectedEntity{{EntityID: entityID}}}
	return ffi.PointerResult{Response: l.allocLocked(encode(info))}
}

func (l *Library) EngineGetEntityByEntityID(entityID int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	keys, ok := l.entities[entityID]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(entityID))
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(l.entityResponseLocked(entityID, keys)))}
}

func (l *Library) EngineGetEntityByRecordID(dataSourceCode, recordID string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	rec, ok := l.records[recordKey{dataSourceCode, recordID}]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode, recordID))
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(l.entityResponseLocked(rec.entityID, l.entities[rec.entityID])))}
}

func (l *Library) EngineGetRecord(dataSourceCode, recordID string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	rec, ok := l.records[recordKey{dataSourceCode, recordID}]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode, recordID))
	}
	resp := struct {
		DataSource string          `json:"DATA_SOURCE"`
		RecordID   string          `json:"RECORD_ID"`
		JSONData   json.RawMessage `json:"JSON_DATA"`
	}{
		DataSource: dataSourceCode,
		RecordID:   recordID,
		JSONData:   json.RawMessage(rec.definition),
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineGetRecordPreview(recordDefinition string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if !json.Valid([]byte(recordDefinition)) {
		return l.failPtrLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	preview := struct {
		Features []any `json:"FEATURES"`
	}{Features: []any{}}
	return ffi.PointerResult{Response: l.allocLocked(encode(preview))}
}

func (l *Library) EngineSearchByAttributes(attributes, searchProfile string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	var decoded any
	if err := json.Unmarshal([]byte(attributes), &decoded); err != nil {
		return l.failPtrLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	leaves := leafStrings(decoded, nil)

	type match struct {
		Entity entityResponse `json:"ENTITY"`
	}
	resp := struct {
		ResolvedEntities []match `json:"RESOLVED_ENTITIES"`
	}{ResolvedEntities: []match{}}

	for _, entityID := range l.sortedEntityIDsLocked() {
		if l.entityMatchesLocked(entityID, leaves) {
			resp.ResolvedEntities = append(resp.ResolvedEntities, match{
				Entity: l.entityResponseLocked(entityID, l.entities[entityID]),
			})
		}
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineWhySearch(attributes string, entityID int64, searchProfile string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if !json.Valid([]byte(attributes)) {
		return l.failPtrLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	if _, ok := l.entities[entityID]; !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(entityID))
	}
	resp := struct {
		WhyResults []affectedEntity `json:"WHY_RESULTS"`
	}{WhyResults: []affectedEntity{{EntityID: entityID}}}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineWhyEntities(entityID1, entityID2 int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	for _, id := range []int64{entityID1, entityID2} {
		if _, ok := l.entities[id]; !ok {
			return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(id))
		}
	}
	resp := struct {
		WhyResults []struct {
			EntityID  int64 `json:"ENTITY_ID"`
			EntityID2 int64 `json:"ENTITY_ID_2"`
		} `json:"WHY_RESULTS"`
	}{}
	resp.WhyResults = append(resp.WhyResults, struct {
		EntityID  int64 `json:"ENTITY_ID"`
		EntityID2 int64 `json:"ENTITY_ID_2"`
	}{EntityID: entityID1, EntityID2: entityID2})
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineWhyRecords(dataSourceCode1, recordID1, dataSourceCode2, recordID2 string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	rec1, ok := l.records[recordKey{dataSourceCode1, recordID1}]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode1, recordID1))
	}
	rec2, ok := l.records[recordKey{dataSourceCode2, recordID2}]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode2, recordID2))
	}
	resp := struct {
		WhyResults []struct {
			EntityID  int64 `json:"ENTITY_ID"`
			EntityID2 int64 `json:"ENTITY_ID_2"`
		} `json:"WHY_RESULTS"`
	}{}
	resp.WhyResults = append(resp.WhyResults, struct {
		EntityID  int64 `json:"ENTITY_ID"`
		EntityID2 int64 `json:"ENTITY_ID_2"`
	}{EntityID: rec1.entityID, EntityID2: rec2.entityID})
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineWhyRecordInEntity(dataSourceCode, recordID string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	rec, ok := l.records[recordKey{dataSourceCode, recordID}]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode, recordID))
	}
	resp := struct {
		WhyResults []affectedEntity `json:"WHY_RESULTS"`
	}{WhyResults: []affectedEntity{{EntityID: rec.entityID}}}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineHowEntityByEntityID(entityID int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if _, ok := l.entities[entityID]; !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(entityID))
	}
	resp := struct {
		HowResults struct {
			ResolutionSteps []any `json:"RESOLUTION_STEPS"`
			FinalState      struct {
				VirtualEntities []any `json:"VIRTUAL_ENTITIES"`
			} `json:"FINAL_STATE"`
		} `json:"HOW_RESULTS"`
	}{}
	resp.HowResults.ResolutionSteps = []any{}
	resp.HowResults.FinalState.VirtualEntities = []any{}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineGetVirtualEntityByRecordID(recordList string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	var doc struct {
		Records []entityRecord `json:"RECORDS"`
	}
	if err := json.Unmarshal([]byte(recordList), &doc); err != nil {
		return l.failPtrLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	if len(doc.Records) == 0 {
		return l.failPtrLocked(szerror.ComponentEngine, 3, "Invalid or missing input value: RECORDS")
	}
	virtual := resolvedEntity{Records: []entityRecord{}}
	for _, key := range doc.Records {
		rec, ok := l.records[recordKey{key.DataSource, key.RecordID}]
		if !ok {
			return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(key.DataSource, key.RecordID))
		}
		if virtual.EntityID == 0 {
			virtual.EntityID = rec.entityID
		}
		virtual.Records = append(virtual.Records, key)
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(entityResponse{ResolvedEntity: virtual}))}
}

func (l *Library) EngineFindPathByEntityID(startEntityID, endEntityID, maxDegrees int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	for _, id := range []int64{startEntityID, endEntityID} {
		if _, ok := l.entities[id]; !ok {
			return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(id))
		}
	}
	resp := struct {
		EntityPaths []struct {
			StartEntityID int64   `json:"START_ENTITY_ID"`
			EndEntityID   int64   `json:"END_ENTITY_ID"`
			Entities      []int64 `json:"ENTITIES"`
		} `json:"ENTITY_PATHS"`
	}{}
	resp.EntityPaths = append(resp.EntityPaths, struct {
		StartEntityID int64   `json:"START_ENTITY_ID"`
		EndEntityID   int64   `json:"END_ENTITY_ID"`
		Entities      []int64 `json:"ENTITIES"`
	}{StartEntityID: startEntityID, EndEntityID: endEntityID, Entities: []int64{startEntityID, endEntityID}})
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineFindNetworkByEntityID(entityList string, maxDegrees, buildOutDegrees, maxEntities int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	var doc struct {
		Entities []affectedEntity `json:"ENTITIES"`
	}
	if err := json.Unmarshal([]byte(entityList), &doc); err != nil {
		return l.failPtrLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	resp := struct {
		EntityPaths []any            `json:"ENTITY_PATHS"`
		Entities    []entityResponse `json:"ENTITIES"`
	}{EntityPaths: []any{}, Entities: []entityResponse{}}
	for _, e := range doc.Entities {
		keys, ok := l.entities[e.EntityID]
		if !ok {
			return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(e.EntityID))
		}
		resp.Entities = append(resp.Entities, l.entityResponseLocked(e.EntityID, keys))
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) EngineFindInterestingEntitiesByEntityID(entityID int64, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if _, ok := l.entities[entityID]; !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 37, unknownEntityMessage(entityID))
	}
	return ffi.PointerResult{Response: l.allocLocked(interestingEntitiesResponse())}
}

func (l *Library) EngineFindInterestingEntitiesByRecordID(dataSourceCode, recordID string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if _, ok := l.records[recordKey{dataSourceCode, recordID}]; !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 33, unknownRecordMessage(dataSourceCode, recordID))
	}
	return ffi.PointerResult{Response: l.allocLocked(interestingEntitiesResponse())}
}

func (l *Library) EngineExportJSONEntityReport(flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	var lines []string
	for _, entityID := range l.sortedEntityIDsLocked() {
		lines = append(lines, encode(l.entityResponseLocked(entityID, l.entities[entityID])))
	}
	h := l.handlePtrLocked()
	l.exports[h] = &exportCursor{lines: lines}
	return ffi.PointerResult{Response: h}
}

func (l *Library) EngineExportCSVEntityReport(csvColumnList string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	lines := []string{"RESOLVED_ENTITY_ID,DATA_SOURCE,RECORD_ID"}
	for _, entityID := range l.sortedEntityIDsLocked() {
		for _, key := range l.entities[entityID] {
			lines = append(lines, fmt.Sprintf("%d,%s,%s", entityID, key.dataSource, key.recordID))
		}
	}
	h := l.handlePtrLocked()
	l.exports[h] = &exportCursor{lines: lines}
	return ffi.PointerResult{Response: h}
}

func (l *Library) EngineFetchNext(exportHandle ffi.Ptr) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	cursor, ok := l.exports[exportHandle]
	if !ok {
		return l.failPtrLocked(szerror.ComponentEngine, 3, "Invalid export handle")
	}
	if cursor.pos >= len(cursor.lines) {
		return ffi.PointerResult{}
	}
	line := cursor.lines[cursor.pos]
	cursor.pos++
	return ffi.PointerResult{Response: l.allocLocked(line + "\n")}
}

func (l *Library) EngineCloseExportReport(exportHandle ffi.Ptr) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	if _, ok := l.exports[exportHandle]; !ok {
		return l.failLocked(szerror.ComponentEngine, 3, "Invalid export handle")
	}
	delete(l.exports, exportHandle)
	return 0
}

func (l *Library) EngineCountRedoRecords() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	return int64(len(l.redo))
}

func (l *Library) EngineGetRedoRecord() ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if len(l.redo) == 0 {
		return ffi.PointerResult{}
	}
	record := l.redo[0]
	l.redo = l.redo[1:]
	return ffi.PointerResult{Response: l.allocLocked(record)}
}

func (l *Library) EngineProcessRedoRecord(redoRecord string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return code
	}
	if !json.Valid([]byte(redoRecord)) {
		return l.failLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	return 0
}

func (l *Library) EngineProcessRedoRecordWithInfo(redoRecord string, flags uint64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.engineReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if !json.Valid([]byte(redoRecord)) {
		return l.failPtrLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	info := withInfoResponse{AffectedEntities: []affectedEntity{}}
	return ffi.PointerResult{Response: l.allocLocked(encode(info))}
}

// engineReadyLocked reports an injected failure or missing engine
// initialization.
func (l *Library) engineReadyLocked() (int64, bool) {
	if code, failed := l.injectedLocked(szerror.ComponentEngine); failed {
		return code, false
	}
	if !l.engineInited {
		return l.failLocked(szerror.ComponentEngine, 48, "Engine not initialized"), false
	}
	return 0, true
}

// applyConfigLocked activates the data sources of a registered
// configuration.
func (l *Library) applyConfigLocked(configID int64) {
	l.activeConfigID = configID
	l.activeSources = make(map[string]bool)
	cfg, ok := l.configs[configID]
	if !ok {
		return
	}
	sources, ok := parseSources(cfg.definition)
	if !ok {
		return
	}
	for _, code := range sources {
		l.activeSources[code] = true
	}
}

func (l *Library) addRecordLocked(dataSourceCode, recordID, recordDefinition string) (int64, int64) {
	if !json.Valid([]byte(recordDefinition)) {
		return 0, l.failLocked(szerror.ComponentEngine, 7, "Malformed JSON document")
	}
	if !l.activeSources[dataSourceCode] {
		return 0, l.failLocked(szerror.ComponentEngine, 27, fmt.Sprintf("Unknown DATA_SOURCE value '%s'", dataSourceCode))
	}
	key := recordKey{dataSourceCode, recordID}
	if rec, ok := l.records[key]; ok {
		rec.definition = recordDefinition
		return rec.entityID, 0
	}
	entityID := l.nextEntityID
	l.nextEntityID++
	l.records[key] = &fakeRecord{definition: recordDefinition, entityID: entityID}
	l.entities[entityID] = append(l.entities[entityID], key)
	return entityID, 0
}

func (l *Library) deleteRecordLocked(dataSourceCode, recordID string) ([]affectedEntity, int64) {
	if !l.activeSources[dataSourceCode] {
		return nil, l.failLocked(szerror.ComponentEngine, 27, fmt.Sprintf("Unknown DATA_SOURCE value '%s'", dataSourceCode))
	}
	key := recordKey{dataSourceCode, recordID}
	rec, ok := l.records[key]
	if !ok {
		// Deleting an absent record is a no-op, as with the real engine.
		return []affectedEntity{}, 0
	}
	delete(l.records, key)
	keys := l.entities[rec.entityID]
	remaining := keys[:0]
	for _, k := range keys {
		if k != key {
			remaining = append(remaining, k)
		}
	}
	if len(remaining) == 0 {
		delete(l.entities, rec.entityID)
	} else {
		l.entities[rec.entityID] = remaining
	}
	l.redo = append(l.redo, encode(map[string]string{
		"REASON":      "deferred delete processing",
		"DATA_SOURCE": dataSourceCode,
		"RECORD_ID":   recordID,
		"DSRC_ACTION": "X",
	}))
	return []affectedEntity{{EntityID: rec.entityID}}, 0
}

func (l *Library) entityResponseLocked(entityID int64, keys []recordKey) entityResponse {
	resp := entityResponse{ResolvedEntity: resolvedEntity{
		EntityID:   entityID,
		EntityName: l.entityNameLocked(keys),
		Records:    []entityRecord{},
	}}
	for _, key := range keys {
		resp.ResolvedEntity.Records = append(resp.ResolvedEntity.Records, entityRecord{
			DataSource: key.dataSource,
			RecordID:   key.recordID,
		})
	}
	return resp
}

// entityNameLocked picks a display name from the first member record
// that carries one, standing in for best-name selection.
func (l *Library) entityNameLocked(keys []recordKey) string {
	for _, key := range keys {
		rec := l.records[key]
		if rec == nil {
			continue
		}
		var doc map[string]any
		if json.Unmarshal([]byte(rec.definition), &doc) != nil {
			continue
		}
		for _, field := range []string{"PRIMARY_NAME_FULL", "NAME_FULL", "NAME_ORG"} {
			if name, ok := doc[field].(string); ok && name != "" {
				return name
			}
		}
	}
	return ""
}

func (l *Library) sortedEntityIDsLocked() []int64 {
	ids := make([]int64, 0, len(l.entities))
	for id := range l.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (l *Library) entityMatchesLocked(entityID int64, leaves []string) bool {
	for _, key := range l.entities[entityID] {
		rec := l.records[key]
		if rec == nil {
			continue
		}
		for _, leaf := range leaves {
			if leaf != "" && strings.Contains(rec.definition, leaf) {
				return true
			}
		}
	}
	return false
}

func unknownRecordMessage(dataSourceCode, recordID string) string {
	return fmt.Sprintf("Unknown record: dsrc[%s], record[%s]", dataSourceCode, recordID)
}

func unknownEntityMessage(entityID int64) string {
	return fmt.Sprintf("Unknown resolved entity value '%d'", entityID)
}

func interestingEntitiesResponse() string {
	resp := struct {
		InterestingEntities struct {
			Entities []any `json:"ENTITIES"`
		} `json:"INTERESTING_ENTITIES"`
	}{}
	resp.InterestingEntities.Entities = []any{}
	return encode(resp)
}
