//go:build !cgo || windows

package ffi

import "github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"

// Stub implementations for non-CGO builds or Windows. These allow the
// package to compile; Available reports ErrNotBuilt and callers are
// expected to fail fast before reaching any other method.

var lib Lib = stubLib{}

const stubMessage = "native library not built"

type stubLib struct{}

func (stubLib) Available() error { return ErrNotBuilt }

func (stubLib) ReadCString(Ptr) []byte { return nil }

func (stubLib) Free(Ptr) {}

func (stubLib) LastException(_ szerror.Component, buf []byte) int64 {
	n := copy(buf, stubMessage)
	if n < len(buf) {
		buf[n] = 0
	}
	return int64(n)
}

func (stubLib) LastExceptionCode(szerror.Component) int64 { return 0 }

func (stubLib) ClearLastException(szerror.Component) {}

func (stubLib) EngineInit(string, string, bool) int64 { return -1 }

func (stubLib) EngineInitWithConfigID(string, string, int64, bool) int64 { return -1 }

func (stubLib) EngineReinit(int64) int64 { return -1 }

func (stubLib) EngineDestroy() int64 { return -1 }

func (stubLib) EngineGetActiveConfigID() LongResult { return LongResult{ReturnCode: -1} }

func (stubLib) EnginePrimeEngine() int64 { return -1 }

func (stubLib) EngineStats() PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) EngineAddRecord(string, string, string) int64 { return -1 }

func (stubLib) EngineAddRecordWithInfo(string, string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineDeleteRecord(string, string) int64 { return -1 }

func (stubLib) EngineDeleteRecordWithInfo(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineReevaluateRecord(string, string, uint64) int64 { return -1 }

func (stubLib) EngineReevaluateRecordWithInfo(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineReevaluateEntity(int64, uint64) int64 { return -1 }

func (stubLib) EngineReevaluateEntityWithInfo(int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineGetEntityByEntityID(int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineGetEntityByRecordID(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineGetRecord(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineGetRecordPreview(string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineSearchByAttributes(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineWhySearch(string, int64, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineWhyEntities(int64, int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineWhyRecords(string, string, string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineWhyRecordInEntity(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineHowEntityByEntityID(int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineGetVirtualEntityByRecordID(string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineFindPathByEntityID(int64, int64, int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineFindNetworkByEntityID(string, int64, int64, int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineFindInterestingEntitiesByEntityID(int64, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineFindInterestingEntitiesByRecordID(string, string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineExportJSONEntityReport(uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineExportCSVEntityReport(string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) EngineFetchNext(Ptr) PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) EngineCloseExportReport(Ptr) int64 { return -1 }

func (stubLib) EngineCountRedoRecords() int64 { return -1 }

func (stubLib) EngineGetRedoRecord() PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) EngineProcessRedoRecord(string) int64 { return -1 }

func (stubLib) EngineProcessRedoRecordWithInfo(string, uint64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) ConfigInit(string, string, bool) int64 { return -1 }

func (stubLib) ConfigDestroy() int64 { return -1 }

func (stubLib) ConfigCreate() PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) ConfigLoad(string) PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) ConfigExport(Ptr) PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) ConfigClose(Ptr) int64 { return -1 }

func (stubLib) ConfigRegisterDataSource(Ptr, string) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) ConfigUnregisterDataSource(Ptr, string) int64 { return -1 }

func (stubLib) ConfigGetDataSourceRegistry(Ptr) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) ConfigMgrInit(string, string, bool) int64 { return -1 }

func (stubLib) ConfigMgrDestroy() int64 { return -1 }

func (stubLib) ConfigMgrRegisterConfig(string, string) LongResult {
	return LongResult{ReturnCode: -1}
}

func (stubLib) ConfigMgrGetConfig(int64) PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) ConfigMgrGetConfigRegistry() PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) ConfigMgrGetDefaultConfigID() LongResult { return LongResult{ReturnCode: -1} }

func (stubLib) ConfigMgrSetDefaultConfigID(int64) int64 { return -1 }

func (stubLib) ConfigMgrReplaceDefaultConfigID(int64, int64) int64 { return -1 }

func (stubLib) DiagnosticDestroy() int64 { return -1 }

func (stubLib) DiagnosticCheckRepositoryPerformance(int64) PointerResult {
	return PointerResult{ReturnCode: -1}
}

func (stubLib) DiagnosticGetRepositoryInfo() PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) DiagnosticGetFeature(int64) PointerResult { return PointerResult{ReturnCode: -1} }

func (stubLib) DiagnosticPurgeRepository() int64 { return -1 }

func (stubLib) ProductInit(string, string, bool) int64 { return -1 }

func (stubLib) ProductDestroy() int64 { return -1 }

func (stubLib) ProductGetVersion() Ptr { return 0 }

func (stubLib) ProductGetLicense() Ptr { return 0 }
