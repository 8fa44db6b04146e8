//go:build cgo && !windows

package ffi

/*
#cgo CFLAGS: -I/opt/senzing/er/sdk/c
#cgo LDFLAGS: -L/opt/senzing/er/lib -lSz -Wl,-rpath,/opt/senzing/er/lib
#include <stdlib.h>
#include <string.h>

typedef struct {
	char*     response;
	long long returnCode;
} SzPointerResult;

typedef struct {
	long long response;
	long long returnCode;
} SzLongResult;

extern void Sz_free(void* ptr);

extern long long Sz_init(const char* moduleName, const char* iniParams, long long verboseLogging);
extern long long Sz_initWithConfigID(const char* moduleName, const char* iniParams, long long initConfigID, long long verboseLogging);
extern long long Sz_reinit(long long initConfigID);
extern long long Sz_destroy();
extern SzLongResult Sz_getActiveConfigID_helper();
extern long long Sz_primeEngine();
extern SzPointerResult Sz_stats_helper();
extern long long Sz_addRecord(const char* dataSourceCode, const char* recordID, const char* jsonData);
extern SzPointerResult Sz_addRecordWithInfo_helper(const char* dataSourceCode, const char* recordID, const char* jsonData, long long flags);
extern long long Sz_deleteRecord(const char* dataSourceCode, const char* recordID);
extern SzPointerResult Sz_deleteRecordWithInfo_helper(const char* dataSourceCode, const char* recordID, long long flags);
extern long long Sz_reevaluateRecord(const char* dataSourceCode, const char* recordID, long long flags);
extern SzPointerResult Sz_reevaluateRecordWithInfo_helper(const char* dataSourceCode, const char* recordID, long long flags);
extern long long Sz_reevaluateEntity(long long entityID, long long flags);
extern SzPointerResult Sz_reevaluateEntityWithInfo_helper(long long entityID, long long flags);
extern SzPointerResult Sz_getEntityByEntityID_helper(long long entityID, long long flags);
extern SzPointerResult Sz_getEntityByRecordID_helper(const char* dataSourceCode, const char* recordID, long long flags);
extern SzPointerResult Sz_getRecord_helper(const char* dataSourceCode, const char* recordID, long long flags);
extern SzPointerResult Sz_getRecordPreview_helper(const char* jsonData, long long flags);
extern SzPointerResult Sz_searchByAttributes_helper(const char* jsonData, const char* searchProfile, long long flags);
extern SzPointerResult Sz_whySearch_helper(const char* jsonData, long long entityID, const char* searchProfile, long long flags);
extern SzPointerResult Sz_whyEntities_helper(long long entityID1, long long entityID2, long long flags);
extern SzPointerResult Sz_whyRecords_helper(const char* dataSourceCode1, const char* recordID1, const char* dataSourceCode2, const char* recordID2, long long flags);
extern SzPointerResult Sz_whyRecordInEntity_helper(const char* dataSourceCode, const char* recordID, long long flags);
extern SzPointerResult Sz_howEntityByEntityID_helper(long long entityID, long long flags);
extern SzPointerResult Sz_getVirtualEntityByRecordID_helper(const char* recordList, long long flags);
extern SzPointerResult Sz_findPathByEntityID_helper(long long startEntityID, long long endEntityID, long long maxDegrees, long long flags);
extern SzPointerResult Sz_findNetworkByEntityID_helper(const char* entityList, long long maxDegrees, long long buildOutDegrees, long long maxEntities, long long flags);
extern SzPointerResult Sz_findInterestingEntitiesByEntityID_helper(long long entityID, long long flags);
extern SzPointerResult Sz_findInterestingEntitiesByRecordID_helper(const char* dataSourceCode, const char* recordID, long long flags);
extern SzPointerResult Sz_exportJSONEntityReport_helper(long long flags);
extern SzPointerResult Sz_exportCSVEntityReport_helper(const char* csvColumnList, long long flags);
extern SzPointerResult Sz_fetchNext_helper(void* exportHandle);
extern long long Sz_closeExportReport_helper(void* exportHandle);
extern long long Sz_countRedoRecords();
extern SzPointerResult Sz_getRedoRecord_helper();
extern long long Sz_processRedoRecord(const char* redoRecord);
extern SzPointerResult Sz_processRedoRecordWithInfo_helper(const char* redoRecord, long long flags);
extern long long Sz_getLastException(char* buffer, size_t bufSize);
extern long long Sz_getLastExceptionCode();
extern void Sz_clearLastException();

extern long long SzConfig_init(const char* moduleName, const char* iniParams, long long verboseLogging);
extern long long SzConfig_destroy();
extern SzPointerResult SzConfig_create_helper();
extern SzPointerResult SzConfig_load_helper(const char* jsonConfig);
extern SzPointerResult SzConfig_export_helper(void* configHandle);
extern long long SzConfig_close_helper(void* configHandle);
extern SzPointerResult SzConfig_registerDataSource_helper(void* configHandle, const char* inputJson);
extern long long SzConfig_unregisterDataSource_helper(void* configHandle, const char* inputJson);
extern SzPointerResult SzConfig_getDataSourceRegistry_helper(void* configHandle);
extern long long SzConfig_getLastException(char* buffer, size_t bufSize);
extern long long SzConfig_getLastExceptionCode();
extern void SzConfig_clearLastException();

extern long long SzConfigMgr_init(const char* moduleName, const char* iniParams, long long verboseLogging);
extern long long SzConfigMgr_destroy();
extern SzLongResult SzConfigMgr_registerConfig_helper(const char* configDefinition, const char* configComment);
extern SzPointerResult SzConfigMgr_getConfig_helper(long long configID);
extern SzPointerResult SzConfigMgr_getConfigRegistry_helper();
extern SzLongResult SzConfigMgr_getDefaultConfigID_helper();
extern long long SzConfigMgr_setDefaultConfigID(long long configID);
extern long long SzConfigMgr_replaceDefaultConfigID(long long currentConfigID, long long newConfigID);
extern long long SzConfigMgr_getLastException(char* buffer, size_t bufSize);
extern long long SzConfigMgr_getLastExceptionCode();
extern void SzConfigMgr_clearLastException();

extern long long SzDiagnostic_destroy();
extern SzPointerResult SzDiagnostic_checkRepositoryPerformance_helper(long long secondsToRun);
extern SzPointerResult SzDiagnostic_getRepositoryInfo_helper();
extern SzPointerResult SzDiagnostic_getFeature_helper(long long featureID);
extern long long SzDiagnostic_purgeRepository();
extern long long SzDiagnostic_getLastException(char* buffer, size_t bufSize);
extern long long SzDiagnostic_getLastExceptionCode();
extern void SzDiagnostic_clearLastException();

extern long long SzProduct_init(const char* moduleName, const char* iniParams, long long verboseLogging);
extern long long SzProduct_destroy();
extern char* SzProduct_getVersion();
extern char* SzProduct_getLicense();
extern long long SzProduct_getLastException(char* buffer, size_t bufSize);
extern long long SzProduct_getLastExceptionCode();
extern void SzProduct_clearLastException();
*/
import "C"

import (
	"unsafe"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

var lib Lib = cgoLib{}

type cgoLib struct{}

func (cgoLib) Available() error { return nil }

func cBool(v bool) C.longlong {
	if v {
		return 1
	}
	return 0
}

func goPointerResult(res C.SzPointerResult) PointerResult {
	return PointerResult{
		Response:   Ptr(unsafe.Pointer(res.response)),
		ReturnCode: int64(res.returnCode),
	}
}

func goLongResult(res C.SzLongResult) LongResult {
	return LongResult{
		Response:   int64(res.response),
		ReturnCode: int64(res.returnCode),
	}
}

func (cgoLib) ReadCString(p Ptr) []byte {
	cp := (*C.char)(unsafe.Pointer(p))
	n := C.strlen(cp)
	return C.GoBytes(unsafe.Pointer(cp), C.int(n))
}

func (cgoLib) Free(p Ptr) {
	C.Sz_free(unsafe.Pointer(p))
}

func (cgoLib) LastException(comp szerror.Component, buf []byte) int64 {
	if len(buf) == 0 {
		return -1
	}
	cbuf := (*C.char)(unsafe.Pointer(&buf[0]))
	size := C.size_t(len(buf))
	switch comp {
	case szerror.ComponentConfig:
		return int64(C.SzConfig_getLastException(cbuf, size))
	case szerror.ComponentConfigManager:
		return int64(C.SzConfigMgr_getLastException(cbuf, size))
	case szerror.ComponentDiagnostic:
		return int64(C.SzDiagnostic_getLastException(cbuf, size))
	case szerror.ComponentProduct:
		return int64(C.SzProduct_getLastException(cbuf, size))
	default:
		return int64(C.Sz_getLastException(cbuf, size))
	}
}

func (cgoLib) LastExceptionCode(comp szerror.Component) int64 {
	switch comp {
	case szerror.ComponentConfig:
		return int64(C.SzConfig_getLastExceptionCode())
	case szerror.ComponentConfigManager:
		return int64(C.SzConfigMgr_getLastExceptionCode())
	case szerror.ComponentDiagnostic:
		return int64(C.SzDiagnostic_getLastExceptionCode())
	case szerror.ComponentProduct:
		return int64(C.SzProduct_getLastExceptionCode())
	default:
		return int64(C.Sz_getLastExceptionCode())
	}
}

func (cgoLib) ClearLastException(comp szerror.Component) {
	switch comp {
	case szerror.ComponentConfig:
		C.SzConfig_clearLastException()
	case szerror.ComponentConfigManager:
		C.SzConfigMgr_clearLastException()
	case szerror.ComponentDiagnostic:
		C.SzDiagnostic_clearLastException()
	case szerror.ComponentProduct:
		C.SzProduct_clearLastException()
	default:
		C.Sz_clearLastException()
	}
}

func (cgoLib) EngineInit(moduleName, settings string, verbose bool) int64 {
	cName := C.CString(moduleName)
	defer C.free(unsafe.Pointer(cName))
	cSettings := C.CString(settings)
	defer C.free(unsafe.Pointer(cSettings))
	return int64(C.Sz_init(cName, cSettings, cBool(verbose)))
}

func (cgoLib) EngineInitWithConfigID(moduleName, settings string, configID int64, verbose bool) int64 {
	cName := C.CString(moduleName)
	defer C.free(unsafe.Pointer(cName))
	cSettings := C.CString(settings)
	defer C.free(unsafe.Pointer(cSettings))
	return int64(C.Sz_initWithConfigID(cName, cSettings, C.longlong(configID), cBool(verbose)))
}

func (cgoLib) EngineReinit(configID int64) int64 {
	return int64(C.Sz_reinit(C.longlong(configID)))
}

func (cgoLib) EngineDestroy() int64 {
	return int64(C.Sz_destroy())
}

func (cgoLib) EngineGetActiveConfigID() LongResult {
	return goLongResult(C.Sz_getActiveConfigID_helper())
}

func (cgoLib) EnginePrimeEngine() int64 {
	return int64(C.Sz_primeEngine())
}

func (cgoLib) EngineStats() PointerResult {
	return goPointerResult(C.Sz_stats_helper())
}

func (cgoLib) EngineAddRecord(dataSourceCode, recordID, recordDefinition string) int64 {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	cDef := C.CString(recordDefinition)
	defer C.free(unsafe.Pointer(cDef))
	return int64(C.Sz_addRecord(cDsrc, cID, cDef))
}

func (cgoLib) EngineAddRecordWithInfo(dataSourceCode, recordID, recordDefinition string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	cDef := C.CString(recordDefinition)
	defer C.free(unsafe.Pointer(cDef))
	return goPointerResult(C.Sz_addRecordWithInfo_helper(cDsrc, cID, cDef, C.longlong(flags)))
}

func (cgoLib) EngineDeleteRecord(dataSourceCode, recordID string) int64 {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return int64(C.Sz_deleteRecord(cDsrc, cID))
}

func (cgoLib) EngineDeleteRecordWithInfo(dataSourceCode, recordID string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return goPointerResult(C.Sz_deleteRecordWithInfo_helper(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineReevaluateRecord(dataSourceCode, recordID string, flags uint64) int64 {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return int64(C.Sz_reevaluateRecord(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineReevaluateRecordWithInfo(dataSourceCode, recordID string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return goPointerResult(C.Sz_reevaluateRecordWithInfo_helper(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineReevaluateEntity(entityID int64, flags uint64) int64 {
	return int64(C.Sz_reevaluateEntity(C.longlong(entityID), C.longlong(flags)))
}

func (cgoLib) EngineReevaluateEntityWithInfo(entityID int64, flags uint64) PointerResult {
	return goPointerResult(C.Sz_reevaluateEntityWithInfo_helper(C.longlong(entityID), C.longlong(flags)))
}

func (cgoLib) EngineGetEntityByEntityID(entityID int64, flags uint64) PointerResult {
	return goPointerResult(C.Sz_getEntityByEntityID_helper(C.longlong(entityID), C.longlong(flags)))
}

func (cgoLib) EngineGetEntityByRecordID(dataSourceCode, recordID string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return goPointerResult(C.Sz_getEntityByRecordID_helper(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineGetRecord(dataSourceCode, recordID string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return goPointerResult(C.Sz_getRecord_helper(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineGetRecordPreview(recordDefinition string, flags uint64) PointerResult {
	cDef := C.CString(recordDefinition)
	defer C.free(unsafe.Pointer(cDef))
	return goPointerResult(C.Sz_getRecordPreview_helper(cDef, C.longlong(flags)))
}

func (cgoLib) EngineSearchByAttributes(attributes, searchProfile string, flags uint64) PointerResult {
	cAttrs := C.CString(attributes)
	defer C.free(unsafe.Pointer(cAttrs))
	cProfile := C.CString(searchProfile)
	defer C.free(unsafe.Pointer(cProfile))
	return goPointerResult(C.Sz_searchByAttributes_helper(cAttrs, cProfile, C.longlong(flags)))
}

func (cgoLib) EngineWhySearch(attributes string, entityID int64, searchProfile string, flags uint64) PointerResult {
	cAttrs := C.CString(attributes)
	defer C.free(unsafe.Pointer(cAttrs))
	cProfile := C.CString(searchProfile)
	defer C.free(unsafe.Pointer(cProfile))
	return goPointerResult(C.Sz_whySearch_helper(cAttrs, C.longlong(entityID), cProfile, C.longlong(flags)))
}

func (cgoLib) EngineWhyEntities(entityID1, entityID2 int64, flags uint64) PointerResult {
	return goPointerResult(C.Sz_whyEntities_helper(C.longlong(entityID1), C.longlong(entityID2), C.longlong(flags)))
}

func (cgoLib) EngineWhyRecords(dataSourceCode1, recordID1, dataSourceCode2, recordID2 string, flags uint64) PointerResult {
	cDsrc1 := C.CString(dataSourceCode1)
	defer C.free(unsafe.Pointer(cDsrc1))
	cID1 := C.CString(recordID1)
	defer C.free(unsafe.Pointer(cID1))
	cDsrc2 := C.CString(dataSourceCode2)
	defer C.free(unsafe.Pointer(cDsrc2))
	cID2 := C.CString(recordID2)
	defer C.free(unsafe.Pointer(cID2))
	return goPointerResult(C.Sz_whyRecords_helper(cDsrc1, cID1, cDsrc2, cID2, C.longlong(flags)))
}

func (cgoLib) EngineWhyRecordInEntity(dataSourceCode, recordID string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return goPointerResult(C.Sz_whyRecordInEntity_helper(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineHowEntityByEntityID(entityID int64, flags uint64) PointerResult {
	return goPointerResult(C.Sz_howEntityByEntityID_helper(C.longlong(entityID), C.longlong(flags)))
}

func (cgoLib) EngineGetVirtualEntityByRecordID(recordList string, flags uint64) PointerResult {
	cList := C.CString(recordList)
	defer C.free(unsafe.Pointer(cList))
	return goPointerResult(C.Sz_getVirtualEntityByRecordID_helper(cList, C.longlong(flags)))
}

func (cgoLib) EngineFindPathByEntityID(startEntityID, endEntityID, maxDegrees int64, flags uint64) PointerResult {
	return goPointerResult(C.Sz_findPathByEntityID_helper(
		C.longlong(startEntityID), C.longlong(endEntityID), C.longlong(maxDegrees), C.longlong(flags)))
}

func (cgoLib) EngineFindNetworkByEntityID(entityList string, maxDegrees, buildOutDegrees, maxEntities int64, flags uint64) PointerResult {
	cList := C.CString(entityList)
	defer C.free(unsafe.Pointer(cList))
	return goPointerResult(C.Sz_findNetworkByEntityID_helper(
		cList, C.longlong(maxDegrees), C.longlong(buildOutDegrees), C.longlong(maxEntities), C.longlong(flags)))
}

func (cgoLib) EngineFindInterestingEntitiesByEntityID(entityID int64, flags uint64) PointerResult {
	return goPointerResult(C.Sz_findInterestingEntitiesByEntityID_helper(C.longlong(entityID), C.longlong(flags)))
}

func (cgoLib) EngineFindInterestingEntitiesByRecordID(dataSourceCode, recordID string, flags uint64) PointerResult {
	cDsrc := C.CString(dataSourceCode)
	defer C.free(unsafe.Pointer(cDsrc))
	cID := C.CString(recordID)
	defer C.free(unsafe.Pointer(cID))
	return goPointerResult(C.Sz_findInterestingEntitiesByRecordID_helper(cDsrc, cID, C.longlong(flags)))
}

func (cgoLib) EngineExportJSONEntityReport(flags uint64) PointerResult {
	return goPointerResult(C.Sz_exportJSONEntityReport_helper(C.longlong(flags)))
}

func (cgoLib) EngineExportCSVEntityReport(csvColumnList string, flags uint64) PointerResult {
	cCols := C.CString(csvColumnList)
	defer C.free(unsafe.Pointer(cCols))
	return goPointerResult(C.Sz_exportCSVEntityReport_helper(cCols, C.longlong(flags)))
}

func (cgoLib) EngineFetchNext(exportHandle Ptr) PointerResult {
	return goPointerResult(C.Sz_fetchNext_helper(unsafe.Pointer(exportHandle)))
}

func (cgoLib) EngineCloseExportReport(exportHandle Ptr) int64 {
	return int64(C.Sz_closeExportReport_helper(unsafe.Pointer(exportHandle)))
}

func (cgoLib) EngineCountRedoRecords() int64 {
	return int64(C.Sz_countRedoRecords())
}

func (cgoLib) EngineGetRedoRecord() PointerResult {
	return goPointerResult(C.Sz_getRedoRecord_helper())
}

func (cgoLib) EngineProcessRedoRecord(redoRecord string) int64 {
	cRec := C.CString(redoRecord)
	defer C.free(unsafe.Pointer(cRec))
	return int64(C.Sz_processRedoRecord(cRec))
}

func (cgoLib) EngineProcessRedoRecordWithInfo(redoRecord string, flags uint64) PointerResult {
	cRec := C.CString(redoRecord)
	defer C.free(unsafe.Pointer(cRec))
	return goPointerResult(C.Sz_processRedoRecordWithInfo_helper(cRec, C.longlong(flags)))
}

func (cgoLib) ConfigInit(moduleName, settings string, verbose bool) int64 {
	cName := C.CString(moduleName)
	defer C.free(unsafe.Pointer(cName))
	cSettings := C.CString(settings)
	defer C.free(unsafe.Pointer(cSettings))
	return int64(C.SzConfig_init(cName, cSettings, cBool(verbose)))
}

func (cgoLib) ConfigDestroy() int64 {
	return int64(C.SzConfig_destroy())
}

func (cgoLib) ConfigCreate() PointerResult {
	return goPointerResult(C.SzConfig_create_helper())
}

func (cgoLib) ConfigLoad(configDefinition string) PointerResult {
	cDef := C.CString(configDefinition)
	defer C.free(unsafe.Pointer(cDef))
	return goPointerResult(C.SzConfig_load_helper(cDef))
}

func (cgoLib) ConfigExport(configHandle Ptr) PointerResult {
	return goPointerResult(C.SzConfig_export_helper(unsafe.Pointer(configHandle)))
}

func (cgoLib) ConfigClose(configHandle Ptr) int64 {
	return int64(C.SzConfig_close_helper(unsafe.Pointer(configHandle)))
}

func (cgoLib) ConfigRegisterDataSource(configHandle Ptr, input string) PointerResult {
	cInput := C.CString(input)
	defer C.free(unsafe.Pointer(cInput))
	return goPointerResult(C.SzConfig_registerDataSource_helper(unsafe.Pointer(configHandle), cInput))
}

func (cgoLib) ConfigUnregisterDataSource(configHandle Ptr, input string) int64 {
	cInput := C.CString(input)
	defer C.free(unsafe.Pointer(cInput))
	return int64(C.SzConfig_unregisterDataSource_helper(unsafe.Pointer(configHandle), cInput))
}

func (cgoLib) ConfigGetDataSourceRegistry(configHandle Ptr) PointerResult {
	return goPointerResult(C.SzConfig_getDataSourceRegistry_helper(unsafe.Pointer(configHandle)))
}

func (cgoLib) ConfigMgrInit(moduleName, settings string, verbose bool) int64 {
	cName := C.CString(moduleName)
	defer C.free(unsafe.Pointer(cName))
	cSettings := C.CString(settings)
	defer C.free(unsafe.Pointer(cSettings))
	return int64(C.SzConfigMgr_init(cName, cSettings, cBool(verbose)))
}

func (cgoLib) ConfigMgrDestroy() int64 {
	return int64(C.SzConfigMgr_destroy())
}

func (cgoLib) ConfigMgrRegisterConfig(configDefinition, configComment string) LongResult {
	cDef := C.CString(configDefinition)
	defer C.free(unsafe.Pointer(cDef))
	cComment := C.CString(configComment)
	defer C.free(unsafe.Pointer(cComment))
	return goLongResult(C.SzConfigMgr_registerConfig_helper(cDef, cComment))
}

func (cgoLib) ConfigMgrGetConfig(configID int64) PointerResult {
	return goPointerResult(C.SzConfigMgr_getConfig_helper(C.longlong(configID)))
}

func (cgoLib) ConfigMgrGetConfigRegistry() PointerResult {
	return goPointerResult(C.SzConfigMgr_getConfigRegistry_helper())
}

func (cgoLib) ConfigMgrGetDefaultConfigID() LongResult {
	return goLongResult(C.SzConfigMgr_getDefaultConfigID_helper())
}

func (cgoLib) ConfigMgrSetDefaultConfigID(configID int64) int64 {
	return int64(C.SzConfigMgr_setDefaultConfigID(C.longlong(configID)))
}

func (cgoLib) ConfigMgrReplaceDefaultConfigID(currentConfigID, newConfigID int64) int64 {
	return int64(C.SzConfigMgr_replaceDefaultConfigID(C.longlong(currentConfigID), C.longlong(newConfigID)))
}

func (cgoLib) DiagnosticDestroy() int64 {
	return int64(C.SzDiagnostic_destroy())
}

func (cgoLib) DiagnosticCheckRepositoryPerformance(secondsToRun int64) PointerResult {
	return goPointerResult(C.SzDiagnostic_checkRepositoryPerformance_helper(C.longlong(secondsToRun)))
}

func (cgoLib) DiagnosticGetRepositoryInfo() PointerResult {
	return goPointerResult(C.SzDiagnostic_getRepositoryInfo_helper())
}

func (cgoLib) DiagnosticGetFeature(featureID int64) PointerResult {
	return goPointerResult(C.SzDiagnostic_getFeature_helper(C.longlong(featureID)))
}

func (cgoLib) DiagnosticPurgeRepository() int64 {
	return int64(C.SzDiagnostic_purgeRepository())
}

func (cgoLib) ProductInit(moduleName, settings string, verbose bool) int64 {
	cName := C.CString(moduleName)
	defer C.free(unsafe.Pointer(cName))
	cSettings := C.CString(settings)
	defer C.free(unsafe.Pointer(cSettings))
	return int64(C.SzProduct_init(cName, cSettings, cBool(verbose)))
}

func (cgoLib) ProductDestroy() int64 {
	return int64(C.SzProduct_destroy())
}

func (cgoLib) ProductGetVersion() Ptr {
	return Ptr(unsafe.Pointer(C.SzProduct_getVersion()))
}

func (cgoLib) ProductGetLicense() Ptr {
	return Ptr(unsafe.Pointer(C.SzProduct_getLicense()))
}
