package ffi

import (
	"errors"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("sz/internal/ffi: native bindings not built")

// Ptr is an opaque native address. The zero value is the native NULL.
// Buffers returned in a PointerResult are owned by the caller and must be
// released through Free exactly once; export-report and configuration
// handles are never freed this way, they have dedicated close calls.
type Ptr uintptr

// PointerResult mirrors the native helper struct carrying a buffer or
// handle plus a return code.
type PointerResult struct {
	Response   Ptr
	ReturnCode int64
}

// LongResult mirrors the native helper struct carrying an integer plus a
// return code.
type LongResult struct {
	Response   int64
	ReturnCode int64
}

// Lib is the native library surface the SDK calls through. The cgo
// backend forwards to the installed Senzing library, the stub backend
// reports ErrNotBuilt, and tests install an in-memory fake via Swap.
type Lib interface {
	// Available reports whether native calls can be made in this build.
	Available() error

	// Memory and exception management.
	ReadCString(p Ptr) []byte
	Free(p Ptr)
	LastException(comp szerror.Component, buf []byte) int64
	LastExceptionCode(comp szerror.Component) int64
	ClearLastException(comp szerror.Component)

	// Engine module (Sz_*).
	EngineInit(moduleName, settings string, verbose bool) int64
	EngineInitWithConfigID(moduleName, settings string, configID int64, verbose bool) int64
	EngineReinit(configID int64) int64
	EngineDestroy() int64
	EngineGetActiveConfigID() LongResult
	EnginePrimeEngine() int64
	EngineStats() PointerResult
	EngineAddRecord(dataSourceCode, recordID, recordDefinition string) int64
	EngineAddRecordWithInfo(dataSourceCode, recordID, recordDefinition string, flags uint64) PointerResult
	EngineDeleteRecord(dataSourceCode, recordID string) int64
	EngineDeleteRecordWithInfo(dataSourceCode, recordID string, flags uint64) PointerResult
	EngineReevaluateRecord(dataSourceCode, recordID string, flags uint64) int64
	EngineReevaluateRecordWithInfo(dataSourceCode, recordID string, flags uint64) PointerResult
	EngineReevaluateEntity(entityID int64, flags uint64) int64
	EngineReevaluateEntityWithInfo(entityID int64, flags uint64) PointerResult
	EngineGetEntityByEntityID(entityID int64, flags uint64) PointerResult
	EngineGetEntityByRecordID(dataSourceCode, recordID string, flags uint64) PointerResult
	EngineGetRecord(dataSourceCode, recordID string, flags uint64) PointerResult
	EngineGetRecordPreview(recordDefinition string, flags uint64) PointerResult
	EngineSearchByAttributes(attributes, searchProfile string, flags uint64) PointerResult
	EngineWhySearch(attributes string, entityID int64, searchProfile string, flags uint64) PointerResult
	EngineWhyEntities(entityID1, entityID2 int64, flags uint64) PointerResult
	EngineWhyRecords(dataSourceCode1, recordID1, dataSourceCode2, recordID2 string, flags uint64) PointerResult
	EngineWhyRecordInEntity(dataSourceCode, recordID string, flags uint64) PointerResult
	EngineHowEntityByEntityID(entityID int64, flags uint64) PointerResult
	EngineGetVirtualEntityByRecordID(recordList string, flags uint64) PointerResult
	EngineFindPathByEntityID(startEntityID, endEntityID, maxDegrees int64, flags uint64) PointerResult
	EngineFindNetworkByEntityID(entityList string, maxDegrees, buildOutDegrees, maxEntities int64, flags uint64) PointerResult
	EngineFindInterestingEntitiesByEntityID(entityID int64, flags uint64) PointerResult
	EngineFindInterestingEntitiesByRecordID(dataSourceCode, recordID string, flags uint64) PointerResult
	EngineExportJSONEntityReport(flags uint64) PointerResult
	EngineExportCSVEntityReport(csvColumnList string, flags uint64) PointerResult
	EngineFetchNext(exportHandle Ptr) PointerResult
	EngineCloseExportReport(exportHandle Ptr) int64
	EngineCountRedoRecords() int64
	EngineGetRedoRecord() PointerResult
	EngineProcessRedoRecord(redoRecord string) int64
	EngineProcessRedoRecordWithInfo(redoRecord string, flags uint64) PointerResult

	// Config module (SzConfig_*).
	ConfigInit(moduleName, settings string, verbose bool) int64
	ConfigDestroy() int64
	ConfigCreate() PointerResult
	ConfigLoad(configDefinition string) PointerResult
	ConfigExport(configHandle Ptr) PointerResult
	ConfigClose(configHandle Ptr) int64
	ConfigRegisterDataSource(configHandle Ptr, input string) PointerResult
	ConfigUnregisterDataSource(configHandle Ptr, input string) int64
	ConfigGetDataSourceRegistry(configHandle Ptr) PointerResult

	// Config manager module (SzConfigMgr_*).
	ConfigMgrInit(moduleName, settings string, verbose bool) int64
	ConfigMgrDestroy() int64
	ConfigMgrRegisterConfig(configDefinition, configComment string) LongResult
	ConfigMgrGetConfig(configID int64) PointerResult
	ConfigMgrGetConfigRegistry() PointerResult
	ConfigMgrGetDefaultConfigID() LongResult
	ConfigMgrSetDefaultConfigID(configID int64) int64
	ConfigMgrReplaceDefaultConfigID(currentConfigID, newConfigID int64) int64

	// Diagnostic module (SzDiagnostic_*). Initialization rides EngineInit;
	// only teardown is separate.
	DiagnosticDestroy() int64
	DiagnosticCheckRepositoryPerformance(secondsToRun int64) PointerResult
	DiagnosticGetRepositoryInfo() PointerResult
	DiagnosticGetFeature(featureID int64) PointerResult
	DiagnosticPurgeRepository() int64

	// Product module (SzProduct_*). Version and license buffers are owned
	// by the library and must not be freed.
	ProductInit(moduleName, settings string, verbose bool) int64
	ProductDestroy() int64
	ProductGetVersion() Ptr
	ProductGetLicense() Ptr
}

// Native returns the library surface selected at build time, or the one
// installed by Swap.
func Native() Lib { return lib }

// Swap installs a replacement library surface and returns a restore
// function. It is not safe to call while native calls are in flight;
// tests swap during setup only.
func Swap(l Lib) (restore func()) {
	prev := lib
	lib = l
	return func() { lib = prev }
}

// Available reports whether the native library can be called in this
// build. The stub backend returns ErrNotBuilt.
func Available() error { return lib.Available() }
