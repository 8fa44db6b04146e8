package sz

import (
	"context"
	"encoding/json"
	"runtime"
	"sync/atomic"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// Engine performs entity resolution against the repository: loading
// records, searching, and interrogating how entities resolved. Obtain
// one from Environment.Engine. An Engine is safe for concurrent use.
type Engine struct {
	core *envCore
}

func (e *Engine) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.core.destroyed.Load() {
		return szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return nil
}

// PrimeEngine preloads engine caches. Priming is optional; without it
// the first resolution calls absorb the warm-up cost instead.
func (e *Engine) PrimeEngine(ctx context.Context) error {
	if err := e.ready(ctx); err != nil {
		return err
	}
	return ffi.Check(szerror.ComponentEngine, ffi.Native().EnginePrimeEngine())
}

// Stats reports workload statistics for this process.
func (e *Engine) Stats(ctx context.Context) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine, ffi.Native().EngineStats())
}

// AddRecord loads a record and resolves it against the entities already
// in the repository. The record definition is a JSON document whose
// attributes follow the active configuration. Loading an existing
// (dataSourceCode, recordID) pair replaces the previous definition. The
// response is empty unless flags contains WithInfo.
func (e *Engine) AddRecord(ctx context.Context, dataSourceCode, recordID, recordDefinition string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	if flags&WithInfo != 0 {
		return ffi.String(szerror.ComponentEngine,
			ffi.Native().EngineAddRecordWithInfo(dataSourceCode, recordID, recordDefinition, uint64(flags)))
	}
	return "", ffi.Check(szerror.ComponentEngine,
		ffi.Native().EngineAddRecord(dataSourceCode, recordID, recordDefinition))
}

// DeleteRecord removes a record and re-resolves the entity it
// contributed to. Deleting an absent record succeeds. The response is
// empty unless flags contains WithInfo.
func (e *Engine) DeleteRecord(ctx context.Context, dataSourceCode, recordID string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	if flags&WithInfo != 0 {
		return ffi.String(szerror.ComponentEngine,
			ffi.Native().EngineDeleteRecordWithInfo(dataSourceCode, recordID, uint64(flags)))
	}
	return "", ffi.Check(szerror.ComponentEngine,
		ffi.Native().EngineDeleteRecord(dataSourceCode, recordID))
}

// ReevaluateRecord reruns resolution for one record, picking up
// configuration changes made since it was loaded. The response is empty
// unless flags contains WithInfo.
func (e *Engine) ReevaluateRecord(ctx context.Context, dataSourceCode, recordID string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	if flags&WithInfo != 0 {
		return ffi.String(szerror.ComponentEngine,
			ffi.Native().EngineReevaluateRecordWithInfo(dataSourceCode, recordID, uint64(flags)))
	}
	return "", ffi.Check(szerror.ComponentEngine,
		ffi.Native().EngineReevaluateRecord(dataSourceCode, recordID, uint64(flags)))
}

// ReevaluateEntity reruns resolution for every record of an entity. The
// response is empty unless flags contains WithInfo.
func (e *Engine) ReevaluateEntity(ctx context.Context, entityID EntityID, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	if flags&WithInfo != 0 {
		return ffi.String(szerror.ComponentEngine,
			ffi.Native().EngineReevaluateEntityWithInfo(int64(entityID), uint64(flags)))
	}
	return "", ffi.Check(szerror.ComponentEngine,
		ffi.Native().EngineReevaluateEntity(int64(entityID), uint64(flags)))
}

// GetEntityByEntityID returns the resolved entity with the given ID.
func (e *Engine) GetEntityByEntityID(ctx context.Context, entityID EntityID, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineGetEntityByEntityID(int64(entityID), uint64(flags)))
}

// GetEntityByRecordID returns the resolved entity a record belongs to.
func (e *Engine) GetEntityByRecordID(ctx context.Context, dataSourceCode, recordID string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineGetEntityByRecordID(dataSourceCode, recordID, uint64(flags)))
}

// GetRecord returns a single record as loaded.
func (e *Engine) GetRecord(ctx context.Context, dataSourceCode, recordID string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineGetRecord(dataSourceCode, recordID, uint64(flags)))
}

// GetRecordPreview describes the features the engine would extract from
// a record definition, without loading it.
func (e *Engine) GetRecordPreview(ctx context.Context, recordDefinition string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineGetRecordPreview(recordDefinition, uint64(flags)))
}

// SearchByAttributes finds entities matching a JSON attribute document.
// An empty searchProfile selects the default profile.
func (e *Engine) SearchByAttributes(ctx context.Context, attributes, searchProfile string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineSearchByAttributes(attributes, searchProfile, uint64(flags)))
}

// WhySearch explains how search attributes scored against one entity. An
// empty searchProfile selects the default profile.
func (e *Engine) WhySearch(ctx context.Context, attributes string, entityID EntityID, searchProfile string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineWhySearch(attributes, int64(entityID), searchProfile, uint64(flags)))
}

// WhyEntities explains the relationship between two entities.
func (e *Engine) WhyEntities(ctx context.Context, entityID1, entityID2 EntityID, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineWhyEntities(int64(entityID1), int64(entityID2), uint64(flags)))
}

// WhyRecords explains how two records relate.
func (e *Engine) WhyRecords(ctx context.Context, dataSourceCode1, recordID1, dataSourceCode2, recordID2 string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineWhyRecords(dataSourceCode1, recordID1, dataSourceCode2, recordID2, uint64(flags)))
}

// WhyRecordInEntity explains why a record resolved into its entity.
func (e *Engine) WhyRecordInEntity(ctx context.Context, dataSourceCode, recordID string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineWhyRecordInEntity(dataSourceCode, recordID, uint64(flags)))
}

// HowEntityByEntityID reconstructs the resolution steps that formed an
// entity.
func (e *Engine) HowEntityByEntityID(ctx context.Context, entityID EntityID, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineHowEntityByEntityID(int64(entityID), uint64(flags)))
}

// GetVirtualEntityByRecordID builds the entity the given records would
// form on their own, without persisting anything. At least one record
// key is required.
func (e *Engine) GetVirtualEntityByRecordID(ctx context.Context, recordKeys []RecordKey, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	if len(recordKeys) == 0 {
		return "", szerror.New(szerror.Configuration, "no record keys provided")
	}
	type recordRef struct {
		DataSource string `json:"DATA_SOURCE"`
		RecordID   string `json:"RECORD_ID"`
	}
	refs := make([]recordRef, len(recordKeys))
	for i, k := range recordKeys {
		refs[i] = recordRef{DataSource: k.DataSource, RecordID: k.RecordID}
	}
	list, err := json.Marshal(struct {
		Records []recordRef `json:"RECORDS"`
	}{Records: refs})
	if err != nil {
		return "", szerror.Wrap(szerror.BadInput, "record list not serializable", err)
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineGetVirtualEntityByRecordID(string(list), uint64(flags)))
}

// FindPathByEntityID finds a relationship path between two entities, up
// to maxDegrees of separation.
func (e *Engine) FindPathByEntityID(ctx context.Context, startEntityID, endEntityID EntityID, maxDegrees int64, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineFindPathByEntityID(int64(startEntityID), int64(endEntityID), maxDegrees, uint64(flags)))
}

// FindNetworkByEntityID builds the relationship network around a set of
// entities. maxDegrees bounds paths between the named entities,
// buildOutDegrees bounds expansion around them, and maxEntities caps the
// result size.
func (e *Engine) FindNetworkByEntityID(ctx context.Context, entityIDs []EntityID, maxDegrees, buildOutDegrees, maxEntities int64, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	type entityRef struct {
		EntityID EntityID `json:"ENTITY_ID"`
	}
	refs := make([]entityRef, len(entityIDs))
	for i, id := range entityIDs {
		refs[i] = entityRef{EntityID: id}
	}
	list, err := json.Marshal(struct {
		Entities []entityRef `json:"ENTITIES"`
	}{Entities: refs})
	if err != nil {
		return "", szerror.Wrap(szerror.BadInput, "entity list not serializable", err)
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineFindNetworkByEntityID(string(list), maxDegrees, buildOutDegrees, maxEntities, uint64(flags)))
}

// FindInterestingEntitiesByEntityID surfaces entities flagged as
// interesting around the given entity. Requires an engine configured
// with interesting-entity detection.
func (e *Engine) FindInterestingEntitiesByEntityID(ctx context.Context, entityID EntityID, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineFindInterestingEntitiesByEntityID(int64(entityID), uint64(flags)))
}

// FindInterestingEntitiesByRecordID surfaces entities flagged as
// interesting around the entity a record belongs to.
func (e *Engine) FindInterestingEntitiesByRecordID(ctx context.Context, dataSourceCode, recordID string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine,
		ffi.Native().EngineFindInterestingEntitiesByRecordID(dataSourceCode, recordID, uint64(flags)))
}

// CountRedoRecords reports how many redo records are waiting to be
// processed.
func (e *Engine) CountRedoRecords(ctx context.Context) (int64, error) {
	if err := e.ready(ctx); err != nil {
		return 0, err
	}
	return ffi.Count(szerror.ComponentEngine, ffi.Native().EngineCountRedoRecords())
}

// GetRedoRecord takes the next redo record off the queue, or returns an
// empty string when the queue is empty. Pass the record to
// ProcessRedoRecord to apply it.
func (e *Engine) GetRedoRecord(ctx context.Context) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentEngine, ffi.Native().EngineGetRedoRecord())
}

// ProcessRedoRecord applies a redo record previously returned by
// GetRedoRecord. The response is empty unless flags contains WithInfo.
func (e *Engine) ProcessRedoRecord(ctx context.Context, redoRecord string, flags Flags) (string, error) {
	if err := e.ready(ctx); err != nil {
		return "", err
	}
	if flags&WithInfo != 0 {
		return ffi.String(szerror.ComponentEngine,
			ffi.Native().EngineProcessRedoRecordWithInfo(redoRecord, uint64(flags)))
	}
	return "", ffi.Check(szerror.ComponentEngine,
		ffi.Native().EngineProcessRedoRecord(redoRecord))
}

// ExportReport iterates an entity report started by
// ExportJSONEntityReport or ExportCSVEntityReport. A report holds native
// resources until Close.
type ExportReport struct {
	core   *envCore
	handle ffi.Ptr
	closed atomic.Bool
}

// ExportJSONEntityReport starts an export of the entities selected by
// flags, one JSON document per FetchNext call. Exports scan the whole
// repository; they are a batch tool, not a query mechanism.
func (e *Engine) ExportJSONEntityReport(ctx context.Context, flags Flags) (*ExportReport, error) {
	if err := e.ready(ctx); err != nil {
		return nil, err
	}
	h, err := ffi.Handle(szerror.ComponentEngine,
		ffi.Native().EngineExportJSONEntityReport(uint64(flags)))
	if err != nil {
		return nil, err
	}
	return newExportReport(e.core, h), nil
}

// ExportCSVEntityReport starts a CSV export. csvColumnList names the
// columns to include, "*" meaning all; FetchNext returns the header line
// first.
func (e *Engine) ExportCSVEntityReport(ctx context.Context, csvColumnList string, flags Flags) (*ExportReport, error) {
	if err := e.ready(ctx); err != nil {
		return nil, err
	}
	h, err := ffi.Handle(szerror.ComponentEngine,
		ffi.Native().EngineExportCSVEntityReport(csvColumnList, uint64(flags)))
	if err != nil {
		return nil, err
	}
	return newExportReport(e.core, h), nil
}

func newExportReport(core *envCore, handle ffi.Ptr) *ExportReport {
	r := &ExportReport{core: core, handle: handle}
	runtime.SetFinalizer(r, func(r *ExportReport) { _ = r.Close() })
	return r
}

// FetchNext returns the next line of the report, or an empty string once
// the report is exhausted.
func (r *ExportReport) FetchNext(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.closed.Load() {
		return "", szerror.Wrap(szerror.BadInput, "export report is closed", ErrExportClosed)
	}
	if r.core.destroyed.Load() {
		return "", szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return ffi.String(szerror.ComponentEngine, ffi.Native().EngineFetchNext(r.handle))
}

// Close releases the native report. Closing twice, or after the
// environment is destroyed, is a no-op.
func (r *ExportReport) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	runtime.SetFinalizer(r, nil)
	if r.core.destroyed.Load() {
		return nil
	}
	return ffi.Check(szerror.ComponentEngine, ffi.Native().EngineCloseExportReport(r.handle))
}
